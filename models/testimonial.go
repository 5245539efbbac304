package models

import "time"

type Testimonial struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Title     string    `json:"title"` // e.g. "Interior Designer"
	Message   string    `gorm:"not null" json:"message"`
	Picture   string    `json:"picture"`
	Published bool      `gorm:"default:false" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
