package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jmkbeauty/salon-booking/internal/domain/schedule"
	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/httpresp"
	"github.com/jmkbeauty/salon-booking/internal/models"
)

type StylistHandler struct {
	db *gorm.DB
}

func NewStylistHandler(db *gorm.DB) *StylistHandler {
	return &StylistHandler{db: db}
}

type StylistRequest struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone"`
	Specialties     string  `json:"specialties"`
	ExperienceYears int     `json:"experience_years"`
	Rating          float64 `json:"rating"`
	Bio             string  `json:"bio"`
	IsAvailable     *bool   `json:"is_available"`
	IsActive        *bool   `json:"is_active"`
}

type WorkingDayRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

func (h *StylistHandler) List(c *gin.Context) {
	var stylists []models.Stylist
	if err := h.db.
		Preload("WorkingHours").
		Order("rating DESC, experience_years DESC").
		Find(&stylists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_stylists", "Could not list stylists.")
		return
	}

	httpresp.List(c, stylists)
}

func (h *StylistHandler) Create(c *gin.Context) {
	var req StylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid stylist payload.")
		return
	}

	st := models.Stylist{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Specialties:     req.Specialties,
		ExperienceYears: req.ExperienceYears,
		Rating:          req.Rating,
		Bio:             req.Bio,
		IsAvailable:     true,
		IsActive:        true,
	}
	if req.IsAvailable != nil {
		st.IsAvailable = *req.IsAvailable
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}

	if err := h.db.Create(&st).Error; err != nil {
		httperr.Internal(c, "failed_to_create_stylist", "Could not create stylist.")
		return
	}

	c.JSON(http.StatusCreated, st)
}

// UpdateWorkingHours replaces the stylist's weekly schedule in one
// shot; each day's window must parse as HH:MM when active.
func (h *StylistHandler) UpdateWorkingHours(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var st models.Stylist
	if err := h.db.First(&st, id).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	var req []WorkingDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid working hours payload.")
		return
	}

	for _, day := range req {
		if !day.Active {
			continue
		}
		if _, err := schedule.ParseClock(day.StartTime); err != nil {
			httperr.BadRequest(c, "invalid_time", "start_time must be HH:MM.")
			return
		}
		if _, err := schedule.ParseClock(day.EndTime); err != nil {
			httperr.BadRequest(c, "invalid_time", "end_time must be HH:MM.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("stylist_id = ?", st.ID).
			Delete(&models.StylistWorkingHours{}).Error; err != nil {
			return err
		}

		for _, day := range req {
			wh := models.StylistWorkingHours{
				StylistID: st.ID,
				Weekday:   day.Weekday,
				StartTime: day.StartTime,
				EndTime:   day.EndTime,
				Active:    day.Active,
			}
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_working_hours", "Could not update working hours.")
		return
	}

	var out []models.StylistWorkingHours
	h.db.Where("stylist_id = ?", st.ID).Order("weekday ASC").Find(&out)

	c.JSON(http.StatusOK, out)
}
