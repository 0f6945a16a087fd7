package models

import (
	"strings"
	"time"
)

type Stylist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	// Comma-separated service categories, e.g. "hair-cutting,hair-coloring".
	Specialties string `gorm:"size:255" json:"specialties"`

	ExperienceYears int     `gorm:"default:0" json:"experience_years"`
	Rating          float64 `gorm:"default:4.5" json:"rating"`
	Bio             string  `gorm:"size:500" json:"bio"`

	IsAvailable bool `gorm:"default:true;index" json:"is_available"`
	IsActive    bool `gorm:"default:true" json:"is_active"`

	WorkingHours []StylistWorkingHours `gorm:"foreignKey:StylistID" json:"working_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Stylist) HasSpecialty(category string) bool {
	for _, sp := range strings.Split(s.Specialties, ",") {
		if strings.EqualFold(strings.TrimSpace(sp), category) {
			return true
		}
	}
	return false
}

type StylistWorkingHours struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StylistID uint `gorm:"index:idx_stylist_weekday,unique" json:"stylist_id"`

	Weekday int `gorm:"index:idx_stylist_weekday,unique" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
