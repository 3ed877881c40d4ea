package wire

import (
	"homecare-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Directory reads only; caregiver profile management lives elsewhere.
func wireCaregiver(r chi.Router, caregiverHandler *adaptor.CaregiverHandler) {
	r.Get("/caregivers/available", caregiverHandler.GetAvailable)
}
