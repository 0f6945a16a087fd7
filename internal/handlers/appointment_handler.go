package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/jmkbeauty/salon-booking/internal/domain/booking"
	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/httpresp"
	"github.com/jmkbeauty/salon-booking/internal/metrics"
	"github.com/jmkbeauty/salon-booking/internal/models"
	ucappointment "github.com/jmkbeauty/salon-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	createUC *ucappointment.CreateAppointment
	statusUC *ucappointment.UpdateAppointmentStatus
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucappointment.CreateAppointment,
	statusUC *ucappointment.UpdateAppointmentStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:       db,
		createUC: createUC,
		statusUC: statusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
	Time    string `json:"time" binding:"required"` // HH:MM
	Message string `json:"message"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	var settings models.SalonSettings
	_ = h.db.First(&settings).Error

	date, err := parseDateInSalon(&settings, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	a, err := h.createUC.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Date:    date,
		Time:    req.Time,
		Message: req.Message,
	})
	if err != nil {
		if ve, ok := httperr.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Validation failed",
				"errors":  ve.Errors,
			})
			return
		}
		if httperr.IsBusiness(err, "time_slot_taken") {
			httperr.Conflict(c, "time_slot_taken",
				"This time slot is already booked. Please choose another time.")
			return
		}
		httperr.Internal(c, "appointment_failed", "Could not create appointment.")
		return
	}

	metrics.IncAppointmentCreated()
	c.JSON(http.StatusCreated, a)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	q := h.db.Order("date DESC, time DESC")

	if dateStr := c.Query("date"); dateStr != "" {
		var settings models.SalonSettings
		_ = h.db.First(&settings).Error

		date, err := parseDateInSalon(&settings, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		q = q.Where("date = ?", date)
	}

	var appointments []models.Appointment
	if err := q.Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	a, err := h.statusUC.Execute(c.Request.Context(), id, domain.Status(req.Status))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Appointment cannot change to that status.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Unknown appointment status.")
		default:
			httperr.Internal(c, "appointment_failed", "Could not update appointment.")
		}
		return
	}

	c.JSON(http.StatusOK, a)
}
