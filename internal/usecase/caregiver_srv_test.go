package usecase

import (
	"context"
	"testing"

	"homecare-booking/internal/data/entity"
	"homecare-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetAvailableCaregivers(t *testing.T) {
	caregivers := &memCaregiverRepo{caregivers: make(map[uuid.UUID]*entity.Caregiver)}
	for _, c := range []*entity.Caregiver{
		{ID: uuid.New(), Name: "Zoe", IsAvailable: true},
		{ID: uuid.New(), Name: "Amir", IsAvailable: true},
		{ID: uuid.New(), Name: "Off Duty", IsAvailable: false},
	} {
		caregivers.caregivers[c.ID] = c
	}
	svc := NewCaregiverService(&repository.Repository{Caregiver: caregivers}, zap.NewNop())

	list, err := svc.GetAvailableCaregivers(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "Amir", list[0].Name)
	assert.Equal(t, "Zoe", list[1].Name)
}
