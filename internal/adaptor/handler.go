package adaptor

import (
	"homecare-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking   *BookingHandler
	Analytics *AnalyticsHandler
	Caregiver *CaregiverHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:   NewBookingHandler(service.Booking, service.Assignment, log),
		Analytics: NewAnalyticsHandler(service.Analytics, log),
		Caregiver: NewCaregiverHandler(service.Caregiver, log),
	}
}
