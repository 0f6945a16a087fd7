package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/jmkbeauty/salon-booking/internal/domain/booking"
	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/metrics"
	"github.com/jmkbeauty/salon-booking/internal/models"
	ucbooking "github.com/jmkbeauty/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db *gorm.DB

	availabilityUC *ucbooking.GetAvailableSlots
	createUC       *ucbooking.CreateBooking
	updateUC       *ucbooking.UpdateBooking
	cancelUC       *ucbooking.CancelBooking
	statusUC       *ucbooking.ChangeBookingStatus
	predictionsUC  *ucbooking.GetPredictions
	stylistsUC     *ucbooking.MatchStylists
}

func NewBookingHandler(
	db *gorm.DB,
	availabilityUC *ucbooking.GetAvailableSlots,
	createUC *ucbooking.CreateBooking,
	updateUC *ucbooking.UpdateBooking,
	cancelUC *ucbooking.CancelBooking,
	statusUC *ucbooking.ChangeBookingStatus,
	predictionsUC *ucbooking.GetPredictions,
	stylistsUC *ucbooking.MatchStylists,
) *BookingHandler {
	return &BookingHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
		updateUC:       updateUC,
		cancelUC:       cancelUC,
		statusUC:       statusUC,
		predictionsUC:  predictionsUC,
		stylistsUC:     stylistsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`

	ServiceID uint  `json:"service_id" binding:"required"`
	StylistID *uint `json:"stylist_id"`

	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	DurationMin int    `json:"duration_min"`

	Notes    string `json:"notes"`
	Priority string `json:"priority"`
}

type UpdateBookingRequest struct {
	Date          *string `json:"date"`
	Time          *string `json:"time"`
	DurationMin   *int    `json:"duration_min"`
	StylistID     *uint   `json:"stylist_id"`
	ClearStylist  bool    `json:"clear_stylist"`
	Notes         *string `json:"notes"`
	Priority      *string `json:"priority"`
	ActualWaitMin *int    `json:"actual_wait_min"`
}

type CancelBookingRequest struct {
	Reason          string `json:"reason"`
	RefundRequested bool   `json:"refund_requested"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) GetAvailability(c *gin.Context) {
	serviceID, ok := parseUintParam(c, "serviceId")
	if !ok {
		return
	}

	settings := h.settings()
	date, err := parseDateInSalon(settings, c.Param("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	var stylistID *uint
	if raw := c.Query("stylist_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist.")
			return
		}
		v := uint(id)
		stylistID = &v
	}

	res, err := h.availabilityUC.Execute(c.Request.Context(), ucbooking.AvailabilityInput{
		Date:      date,
		ServiceID: serviceID,
		StylistID: stylistID,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// PREDICTIONS
// ======================================================

func (h *BookingHandler) GetPredictions(c *gin.Context) {
	serviceID, ok := parseUintParam(c, "serviceId")
	if !ok {
		return
	}

	settings := h.settings()
	now := nowInSalon(settings)

	from := now.AddDate(0, -3, 0)
	to := now
	if raw := c.Query("startDate"); raw != "" {
		parsed, err := parseDateInSalon(settings, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "startDate must be YYYY-MM-DD.")
			return
		}
		from = parsed
	}
	if raw := c.Query("endDate"); raw != "" {
		parsed, err := parseDateInSalon(settings, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "endDate must be YYYY-MM-DD.")
			return
		}
		to = parsed
	}

	res, err := h.predictionsUC.Execute(c.Request.Context(), ucbooking.PredictionsInput{
		ServiceID: serviceID,
		From:      from,
		To:        to,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// STYLIST MATCHING
// ======================================================

func (h *BookingHandler) GetStylists(c *gin.Context) {
	serviceID, ok := parseUintParam(c, "serviceId")
	if !ok {
		return
	}

	settings := h.settings()
	date := nowInSalon(settings)
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDateInSalon(settings, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
			return
		}
		date = parsed
	}

	res, err := h.stylistsUC.Execute(c.Request.Context(), serviceID, date)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// CREATE / UPDATE / CANCEL / STATUS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	settings := h.settings()
	date, err := parseDateInSalon(settings, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		ServiceID:     req.ServiceID,
		StylistID:     req.StylistID,
		Date:          date,
		Time:          req.Time,
		DurationMin:   req.DurationMin,
		Notes:         req.Notes,
		Priority:      req.Priority,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	metrics.IncBookingCreated()
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	in := ucbooking.UpdateBookingInput{
		BookingID:     id,
		Time:          req.Time,
		DurationMin:   req.DurationMin,
		StylistID:     req.StylistID,
		ClearStylist:  req.ClearStylist,
		Notes:         req.Notes,
		Priority:      req.Priority,
		ActualWaitMin: req.ActualWaitMin,
	}

	if req.Date != nil {
		date, err := parseDateInSalon(h.settings(), *req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		in.Date = &date
	}

	b, err := h.updateUC.Execute(c.Request.Context(), in)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.cancelUC.Execute(c.Request.Context(), ucbooking.CancelBookingInput{
		BookingID:       id,
		Reason:          req.Reason,
		RefundRequested: req.RefundRequested,
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking cancelled successfully",
		"booking": b,
	})
}

func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	b, err := h.statusUC.Execute(c.Request.Context(), id, domain.Status(req.Status))
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	var bookings []models.Booking
	if err := h.db.
		Preload("Service").
		Preload("Stylist").
		Order("date DESC, time DESC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var b models.Booking
	if err := h.db.
		Preload("Service").
		Preload("Stylist").
		First(&b, id).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) ListByCustomer(c *gin.Context) {
	email := c.Param("email")

	var bookings []models.Booking
	if err := h.db.
		Preload("Service").
		Preload("Stylist").
		Where("customer_email = ?", email).
		Order("date DESC, time DESC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ======================================================
// HELPERS
// ======================================================

func (h *BookingHandler) settings() *models.SalonSettings {
	var s models.SalonSettings
	if err := h.db.First(&s).Error; err != nil {
		return nil
	}
	return &s
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Invalid "+name+".")
		return 0, false
	}
	return uint(raw), true
}

// mapError translates the engine's error categories: validation (400),
// conflict (409, with the competing bookings), not-found (404).
func (h *BookingHandler) mapError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  ve.Errors,
		})
		return
	}

	if ce, ok := domain.AsConflict(err); ok {
		metrics.IncBookingConflict()
		c.JSON(http.StatusConflict, gin.H{
			"message":   "Booking conflicts detected",
			"conflicts": ce.Conflicts,
		})
		return
	}

	switch {
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found", "Service not found.")
	case httperr.IsBusiness(err, "stylist_not_found"):
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Booking cannot change to that status.")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "Unknown booking status.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM.")
	default:
		httperr.Internal(c, "booking_failed", "Could not process booking.")
	}
}
