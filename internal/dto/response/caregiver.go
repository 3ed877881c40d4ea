package response

import (
	"homecare-booking/internal/data/entity"
)

type CaregiverResponse struct {
	CaregiverID string  `json:"caregiverId"`
	Name        string  `json:"name"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}

func CaregiverToResponse(caregiver *entity.Caregiver) CaregiverResponse {
	return CaregiverResponse{
		CaregiverID: caregiver.ID.String(),
		Name:        caregiver.Name,
		Phone:       caregiver.Phone,
		Email:       caregiver.Email,
		IsAvailable: caregiver.IsAvailable,
	}
}
