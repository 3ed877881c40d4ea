package adaptor

import (
	"net/http"

	"homecare-booking/internal/usecase"
	"homecare-booking/pkg/utils"

	"go.uber.org/zap"
)

type CaregiverHandler struct {
	service usecase.CaregiverService
	log     *zap.Logger
}

func NewCaregiverHandler(service usecase.CaregiverService, log *zap.Logger) *CaregiverHandler {
	return &CaregiverHandler{
		service: service,
		log:     log.With(zap.String("handler", "caregiver")),
	}
}

// GetAvailable handles GET /api/caregivers/available
func (h *CaregiverHandler) GetAvailable(w http.ResponseWriter, r *http.Request) {
	caregivers, err := h.service.GetAvailableCaregivers(r.Context())
	if err != nil {
		h.log.Error("Failed to get available caregivers", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, caregivers)
}
