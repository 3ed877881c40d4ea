package usecase

import (
	"context"
	"fmt"

	"homecare-booking/internal/data/repository"
	"homecare-booking/internal/dto/response"

	"go.uber.org/zap"
)

type CaregiverService interface {
	GetAvailableCaregivers(ctx context.Context) ([]response.CaregiverResponse, error)
}

type caregiverService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCaregiverService(repo *repository.Repository, log *zap.Logger) CaregiverService {
	return &caregiverService{
		repo: repo,
		log:  log.With(zap.String("service", "caregiver")),
	}
}

func (s *caregiverService) GetAvailableCaregivers(ctx context.Context) ([]response.CaregiverResponse, error) {
	caregivers, err := s.repo.Caregiver.FindAvailable(ctx)
	if err != nil {
		s.log.Error("Failed to get available caregivers", zap.Error(err))
		return nil, fmt.Errorf("get available caregivers: %w", err)
	}

	out := make([]response.CaregiverResponse, len(caregivers))
	for i, caregiver := range caregivers {
		out[i] = response.CaregiverToResponse(caregiver)
	}

	s.log.Info("Available caregivers retrieved", zap.Int("count", len(out)))
	return out, nil
}
