package models

import "time"

type Resource struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	UserID     uint64    `gorm:"not null;index" json:"user_id"`
	CourseID   uint64    `gorm:"not null;index" json:"course_id"`
	FileName   string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FilePath   string    `gorm:"type:varchar(512);not null" json:"file_path"`
	FileType   string    `gorm:"type:varchar(100)" json:"file_type"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	// Relations
	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (r Resource) OwnerID() uint64 { return r.UserID }
