package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"homecare-booking/internal/dto/request"
	"homecare-booking/internal/usecase"
	"homecare-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service    usecase.BookingService
	assignment usecase.AssignmentService
	log        *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, assignment usecase.AssignmentService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:    service,
		assignment: assignment,
		log:        log.With(zap.String("handler", "booking")),
	}
}

// ==================== QUERIES ====================

// GetBookings handles GET /api/bookings
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetBookings(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetBookingByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// GetBookingsByUser handles GET /api/bookings/user/{userId}
func (h *BookingHandler) GetBookingsByUser(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetBookingsByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		h.handleServiceError(w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetBookingsByCaregiver handles GET /api/bookings/caregiver/{caregiverId}
func (h *BookingHandler) GetBookingsByCaregiver(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetBookingsByCaregiver(r.Context(), chi.URLParam(r, "caregiverId"))
	if err != nil {
		h.handleServiceError(w, err, "get caregiver bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetUnassignedBookings handles GET /api/bookings/unassigned
func (h *BookingHandler) GetUnassignedBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.assignment.GetUnassignedBookings(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get unassigned bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetBookingsByStatus handles GET /api/bookings/status/{status}
func (h *BookingHandler) GetBookingsByStatus(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetBookingsByStatus(r.Context(), chi.URLParam(r, "status"))
	if err != nil {
		h.handleServiceError(w, err, "get bookings by status")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetBookingsByPaymentStatus handles GET /api/bookings/payment-status/{paymentStatus}
func (h *BookingHandler) GetBookingsByPaymentStatus(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetBookingsByPaymentStatus(r.Context(), chi.URLParam(r, "paymentStatus"))
	if err != nil {
		h.handleServiceError(w, err, "get bookings by payment status")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetBookingsByCaregiverStatus handles GET /api/bookings/caregiver-status/{caregiverStatus}
func (h *BookingHandler) GetBookingsByCaregiverStatus(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetBookingsByCaregiverStatus(r.Context(), chi.URLParam(r, "caregiverStatus"))
	if err != nil {
		h.handleServiceError(w, err, "get bookings by caregiver status")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// ==================== LIFECYCLE ====================

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, booking)
}

// UpdateBooking handles PUT /api/bookings/{id}
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.UpdateBooking(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.handleServiceError(w, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// UpdateStatus handles PATCH|POST /api/bookings/{id}/status?status=S
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("status"))
	if err != nil {
		h.handleServiceError(w, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// UpdatePaymentStatus handles PATCH|POST /api/bookings/{id}/payment-status?paymentStatus=S
func (h *BookingHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.UpdatePaymentStatus(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("paymentStatus"))
	if err != nil {
		h.handleServiceError(w, err, "update payment status")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// UpdateCaregiverStatus handles PATCH /api/bookings/{id}/caregiver-status?caregiverStatus=S
func (h *BookingHandler) UpdateCaregiverStatus(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.UpdateCaregiverStatus(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("caregiverStatus"))
	if err != nil {
		h.handleServiceError(w, err, "update caregiver status")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// AssignCaregiver handles PATCH|POST /api/bookings/{id}/assign-caregiver?caregiverId=N
func (h *BookingHandler) AssignCaregiver(w http.ResponseWriter, r *http.Request) {
	booking, err := h.assignment.AssignCaregiver(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("caregiverId"))
	if err != nil {
		h.handleServiceError(w, err, "assign caregiver")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// ClockIn handles PATCH|POST /api/bookings/{id}/clock-in?location=L
func (h *BookingHandler) ClockIn(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.ClockIn(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("location"))
	if err != nil {
		h.handleServiceError(w, err, "clock in")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// ClockOut handles PATCH|POST /api/bookings/{id}/clock-out?location=L
func (h *BookingHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.ClockOut(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("location"))
	if err != nil {
		h.handleServiceError(w, err, "clock out")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// DeleteBooking handles DELETE /api/bookings/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	deleted, err := h.service.DeleteBooking(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "delete booking")
		return
	}
	if !deleted {
		utils.ResponseNotFound(w, "booking "+bookingID+" not found")
		return
	}

	utils.ResponseNoContent(w)
}

// handleServiceError maps domain errors to status codes; anything else is a 500.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var vErr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &vErr):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", vErr.Fields)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
