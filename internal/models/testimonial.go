package models

import "time"

type Testimonial struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AuthorName  string `gorm:"size:100;not null" json:"author_name"`
	AuthorEmail string `gorm:"size:100" json:"author_email"`

	Text   string `gorm:"size:1000;not null" json:"text"`
	Rating int    `gorm:"not null" json:"rating"`

	Approved bool `gorm:"default:false;index" json:"approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
