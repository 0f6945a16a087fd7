package models

import "time"

// Appointment is the lightweight walk-in request path: no stylist
// assignment, service kept as free text from the contact form.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;not null" json:"email"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	Service string `gorm:"size:100;not null" json:"service"`

	Date time.Time `gorm:"not null;index:idx_appointments_date_time" json:"date"`
	Time string    `gorm:"size:5;not null;index:idx_appointments_date_time" json:"time"`

	Message string `gorm:"size:500" json:"message"`
	Status  string `gorm:"size:20;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
