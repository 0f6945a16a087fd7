package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jmkbeauty/salon-booking/internal/domain/schedule"
	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/models"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

type UpdateSettingsRequest struct {
	SalonName         *string `json:"salon_name"`
	BusinessStart     *string `json:"business_start"`
	BusinessEnd       *string `json:"business_end"`
	SlotStepMinutes   *int    `json:"slot_step_minutes"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
	Timezone          *string `json:"timezone"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	var settings models.SalonSettings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.Internal(c, "settings_unavailable", "Salon settings are not configured.")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var settings models.SalonSettings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.Internal(c, "settings_unavailable", "Salon settings are not configured.")
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid settings payload.")
		return
	}

	if req.SalonName != nil {
		settings.Name = *req.SalonName
	}

	if req.BusinessStart != nil {
		if _, err := schedule.ParseClock(*req.BusinessStart); err != nil {
			httperr.BadRequest(c, "invalid_time", "business_start must be HH:MM.")
			return
		}
		settings.BusinessStart = *req.BusinessStart
	}

	if req.BusinessEnd != nil {
		if _, err := schedule.ParseClock(*req.BusinessEnd); err != nil {
			httperr.BadRequest(c, "invalid_time", "business_end must be HH:MM.")
			return
		}
		settings.BusinessEnd = *req.BusinessEnd
	}

	if req.SlotStepMinutes != nil {
		if *req.SlotStepMinutes <= 0 || *req.SlotStepMinutes > 240 {
			httperr.BadRequest(c, "invalid_step", "slot_step_minutes must be between 1 and 240.")
			return
		}
		settings.SlotStepMinutes = *req.SlotStepMinutes
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_advance", "min_advance_minutes cannot be negative.")
			return
		}
		settings.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			httperr.BadRequest(c, "invalid_timezone", "Unknown IANA timezone.")
			return
		}
		settings.Timezone = *req.Timezone
	}

	if err := h.db.Save(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Could not update settings.")
		return
	}

	c.JSON(http.StatusOK, settings)
}
