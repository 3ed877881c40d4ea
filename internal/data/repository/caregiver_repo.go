package repository

import (
	"context"
	"errors"
	"fmt"

	"homecare-booking/internal/data/entity"
	"homecare-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CaregiverRepository is a read-only view of the caregiver directory.
type CaregiverRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Caregiver, error)
	FindAvailable(ctx context.Context) ([]*entity.Caregiver, error)
}

type caregiverRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewCaregiverRepository(db database.Querier, log *zap.Logger) CaregiverRepository {
	return &caregiverRepository{
		db:  db,
		log: log.With(zap.String("repository", "caregiver")),
	}
}

func (r *caregiverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Caregiver, error) {
	query := `
		SELECT caregiver_id, user_id, name, phone, email, COALESCE(available, TRUE), created_at
		FROM caregivers
		WHERE caregiver_id = $1
	`

	var caregiver entity.Caregiver
	err := r.db.QueryRow(ctx, query, id).Scan(
		&caregiver.ID,
		&caregiver.UserID,
		&caregiver.Name,
		&caregiver.Phone,
		&caregiver.Email,
		&caregiver.IsAvailable,
		&caregiver.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find caregiver by ID",
			zap.Error(err),
			zap.String("caregiver_id", id.String()),
		)
		return nil, fmt.Errorf("find caregiver by ID %s: %w", id.String(), err)
	}

	return &caregiver, nil
}

func (r *caregiverRepository) FindAvailable(ctx context.Context) ([]*entity.Caregiver, error) {
	query := `
		SELECT caregiver_id, user_id, name, phone, email, COALESCE(available, TRUE), created_at
		FROM caregivers
		WHERE COALESCE(available, TRUE)
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find available caregivers", zap.Error(err))
		return nil, fmt.Errorf("find available caregivers: %w", err)
	}
	defer rows.Close()

	caregivers := make([]*entity.Caregiver, 0)
	for rows.Next() {
		var caregiver entity.Caregiver
		err := rows.Scan(
			&caregiver.ID,
			&caregiver.UserID,
			&caregiver.Name,
			&caregiver.Phone,
			&caregiver.Email,
			&caregiver.IsAvailable,
			&caregiver.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan caregiver row", zap.Error(err))
			return nil, fmt.Errorf("scan caregiver row: %w", err)
		}
		caregivers = append(caregivers, &caregiver)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find available caregivers: %w", err)
	}

	return caregivers, nil
}
