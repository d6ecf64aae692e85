package models

import "time"

type Event struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	UserID    uint64     `gorm:"not null;index" json:"user_id"`
	Title     string     `gorm:"not null" json:"title"`
	Start     time.Time  `gorm:"not null;index" json:"start"`
	End       *time.Time `json:"end"`
	Notes     string     `gorm:"type:text" json:"notes"`
	CourseID  *uint64    `gorm:"index" json:"course_id"`
	TaskID    *uint64    `gorm:"index" json:"task_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relations
	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Task   *Task   `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}

func (e Event) OwnerID() uint64 { return e.UserID }
