package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100;not null;index:idx_bookings_email_date" json:"customer_email"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StylistID *uint    `gorm:"index:idx_bookings_stylist_date" json:"stylist_id"`
	Stylist   *Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist,omitempty"`

	Date        time.Time `gorm:"not null;index:idx_bookings_stylist_date;index:idx_bookings_email_date,sort:desc;index:idx_bookings_date_time" json:"date"`
	Time        string    `gorm:"size:5;not null;index:idx_bookings_date_time" json:"time"`
	DurationMin int       `gorm:"not null" json:"duration_min"`

	Status   string `gorm:"size:20;default:'pending';index" json:"status"`
	Priority string `gorm:"size:10;default:'medium'" json:"priority"`

	TotalPrice float64 `gorm:"not null" json:"total_price"`
	Notes      string  `gorm:"size:255" json:"notes"`

	PredictedWaitMin int  `gorm:"default:0" json:"predicted_wait_min"`
	ActualWaitMin    *int `json:"actual_wait_min"`

	CancellationReason string     `gorm:"size:255" json:"cancellation_reason"`
	RefundRequested    bool       `gorm:"default:false" json:"refund_requested"`
	CancelledAt        *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
