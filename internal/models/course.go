package models

import "time"

type Course struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Tasks     []Task     `gorm:"foreignKey:CourseID" json:"tasks,omitempty"`
	Events    []Event    `gorm:"foreignKey:CourseID" json:"events,omitempty"`
	Resources []Resource `gorm:"foreignKey:CourseID" json:"resources,omitempty"`
}

func (c Course) OwnerID() uint64 { return c.UserID }
