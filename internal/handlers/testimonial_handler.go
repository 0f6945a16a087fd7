package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jmkbeauty/salon-booking/internal/httperr"
	"github.com/jmkbeauty/salon-booking/internal/httpresp"
	"github.com/jmkbeauty/salon-booking/internal/models"
)

type TestimonialHandler struct {
	db *gorm.DB
}

func NewTestimonialHandler(db *gorm.DB) *TestimonialHandler {
	return &TestimonialHandler{db: db}
}

type CreateTestimonialRequest struct {
	AuthorName  string `json:"author_name" binding:"required"`
	AuthorEmail string `json:"author_email"`
	Text        string `json:"text" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
}

// ListApproved is the public feed; only approved entries show up.
func (h *TestimonialHandler) ListApproved(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := h.db.
		Where("approved = true").
		Order("created_at DESC").
		Find(&testimonials).Error; err != nil {
		httperr.Internal(c, "failed_to_list_testimonials", "Could not list testimonials.")
		return
	}

	httpresp.List(c, testimonials)
}

func (h *TestimonialHandler) ListAll(c *gin.Context) {
	q := h.db.Order("created_at DESC")

	if approved := c.Query("approved"); approved != "" {
		q = q.Where("approved = ?", approved == "true")
	}

	var testimonials []models.Testimonial
	if err := q.Find(&testimonials).Error; err != nil {
		httperr.Internal(c, "failed_to_list_testimonials", "Could not list testimonials.")
		return
	}

	httpresp.List(c, testimonials)
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid testimonial payload.")
		return
	}

	t := models.Testimonial{
		AuthorName:  strings.TrimSpace(req.AuthorName),
		AuthorEmail: strings.ToLower(strings.TrimSpace(req.AuthorEmail)),
		Text:        strings.TrimSpace(req.Text),
		Rating:      req.Rating,
		Approved:    false,
	}

	if err := h.db.Create(&t).Error; err != nil {
		httperr.Internal(c, "failed_to_create_testimonial", "Could not submit testimonial.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Thank you for your feedback! It will appear after review.",
		"testimonial": t,
	})
}

func (h *TestimonialHandler) Approve(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var t models.Testimonial
	if err := h.db.First(&t, id).Error; err != nil {
		httperr.NotFound(c, "testimonial_not_found", "Testimonial not found.")
		return
	}

	t.Approved = true
	if err := h.db.Save(&t).Error; err != nil {
		httperr.Internal(c, "failed_to_approve_testimonial", "Could not approve testimonial.")
		return
	}

	c.JSON(http.StatusOK, t)
}
