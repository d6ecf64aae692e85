package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	UserID    uint64     `gorm:"not null;index" json:"user_id"`
	CourseID  uint64     `gorm:"not null;index" json:"course_id"`
	Title     string     `gorm:"not null" json:"title"`
	Details   string     `gorm:"type:text" json:"details"`
	Status    TaskStatus `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	DueDate   *time.Time `json:"due_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relations
	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (t Task) OwnerID() uint64 { return t.UserID }
