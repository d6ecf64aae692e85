package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Owned-collection lookups always filter on user_id
		{"courses", "idx_courses_user_id", "user_id"},
		{"tasks", "idx_tasks_user_id", "user_id"},
		{"tasks", "idx_tasks_course_id", "course_id"},
		{"tasks", "idx_tasks_created_at", "created_at"},
		{"events", "idx_events_user_id", "user_id"},
		{"events", "idx_events_start", "start"},
		{"resources", "idx_resources_course_id", "course_id"},

		// Login lookup
		{"users", "idx_users_email", "email"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM information_schema.statistics
			WHERE table_schema = DATABASE() AND table_name = ? AND index_name = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}
