package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}).
		AddRow(1, "Alice", "alice@example.com", "hashed")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE email = ?")).
		WillReturnRows(rows)

	user, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchRepository_ScopesToOwnerAndCaps(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSearchRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "description"}).
		AddRow(7, 3, "Mathematics 101", "calculus")
	mock.ExpectQuery(regexp.QuoteMeta("LOWER(title) LIKE ? OR LOWER(description) LIKE ?")).
		WillReturnRows(rows)

	courses, err := repo.SearchCourses(context.Background(), 3, "Math", 5)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Mathematics 101", courses[0].Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}
