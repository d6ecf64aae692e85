package services

import (
	"errors"

	"github.com/studious-dev/studious-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrNotOwner is returned when a record exists but belongs to another user.
	ErrNotOwner = errors.New("not authorized")
)

// requireOwner is the single ownership check used by every entity service.
func requireOwner(record models.Owned, userID uint64) error {
	if record.OwnerID() != userID {
		return ErrNotOwner
	}
	return nil
}

// fetchErr maps a repository lookup failure to the service taxonomy.
func fetchErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
