package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// Overview aggregates the dashboard numbers: booking totals per
// status, today's schedule, completed revenue and the cancellation
// rate over all time.
func (h *AdminHandler) Overview(c *gin.Context) {
	var settings models.SalonSettings
	_ = h.db.First(&settings).Error

	now := nowInSalon(&settings)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var total int64
	if err := h.db.Model(&models.Booking{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "overview_failed", "Could not compute overview.")
		return
	}

	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	if err := h.db.Model(&models.Booking{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		httperr.Internal(c, "overview_failed", "Could not compute overview.")
		return
	}

	byStatus := gin.H{}
	var cancelled int64
	for _, row := range rows {
		byStatus[row.Status] = row.Count
		if row.Status == "cancelled" {
			cancelled = row.Count
		}
	}

	var todayCount int64
	if err := h.db.Model(&models.Booking{}).
		Where("date = ?", today).
		Where("status IN ?", []string{"pending", "confirmed"}).
		Count(&todayCount).Error; err != nil {
		httperr.Internal(c, "overview_failed", "Could not compute overview.")
		return
	}

	var revenue float64
	if err := h.db.Model(&models.Booking{}).
		Where("status = ?", "completed").
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue).Error; err != nil {
		httperr.Internal(c, "overview_failed", "Could not compute overview.")
		return
	}

	cancellationRate := 0.0
	if total > 0 {
		cancellationRate = float64(cancelled) / float64(total)
	}

	c.JSON(http.StatusOK, gin.H{
		"total_bookings":    total,
		"by_status":         byStatus,
		"today":             todayCount,
		"completed_revenue": revenue,
		"cancellation_rate": cancellationRate,
	})
}
