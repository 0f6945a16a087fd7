package models

import "time"

// SalonSettings is a single-row table holding the business-wide
// scheduling configuration.
type SalonSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Timezone string `gorm:"size:50" json:"timezone"`

	BusinessStart   string `gorm:"size:5;default:'09:00'" json:"business_start"`
	BusinessEnd     string `gorm:"size:5;default:'20:00'" json:"business_end"`
	SlotStepMinutes int    `gorm:"default:30" json:"slot_step_minutes"`

	MinAdvanceMinutes int `gorm:"default:60" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
