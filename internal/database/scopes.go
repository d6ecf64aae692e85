package database

import "gorm.io/gorm"

// OwnedBy restricts a query to rows belonging to the given user.
// Every owned collection stores the owner in a user_id column.
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
