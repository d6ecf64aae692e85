package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/studious-dev/studious-api/internal/database"
	"github.com/studious-dev/studious-api/internal/middleware"
	"github.com/studious-dev/studious-api/internal/models"
	"github.com/studious-dev/studious-api/internal/repository"
	"github.com/studious-dev/studious-api/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db              *gorm.DB
	authService     *services.AuthService
	courseService   *services.CourseService
	taskService     *services.TaskService
	eventService    *services.EventService
	resourceService *services.ResourceService
	searchService   *services.SearchService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Task{},
		&models.Event{},
		&models.Resource{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	eventRepo := repository.NewEventRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	searchRepo := repository.NewSearchRepository(db)

	return &testEnv{
		db:              db,
		authService:     services.NewAuthService(userRepo, testSecret, time.Hour),
		courseService:   services.NewCourseService(courseRepo, taskRepo, eventRepo),
		taskService:     services.NewTaskService(taskRepo, courseRepo),
		eventService:    services.NewEventService(eventRepo, courseRepo, taskRepo),
		resourceService: services.NewResourceService(resourceRepo, courseRepo, t.TempDir()),
		searchService:   services.NewSearchService(searchRepo),
	}
}

func (env *testEnv) createTestUser(t *testing.T, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) createTestCourse(t *testing.T, userID uint64, title string) *models.Course {
	t.Helper()

	course := &models.Course{
		UserID:      userID,
		Title:       title,
		Description: "Test Description",
	}
	require.NoError(t, env.db.Create(course).Error)
	return course
}

func (env *testEnv) createTestTask(t *testing.T, userID, courseID uint64, title string) *models.Task {
	t.Helper()

	task := &models.Task{
		UserID:   userID,
		CourseID: courseID,
		Title:    title,
		Details:  "Test Details",
		Status:   models.TaskStatusTodo,
	}
	require.NoError(t, env.db.Create(task).Error)
	return task
}

func (env *testEnv) createTestEvent(t *testing.T, userID uint64, title string, start time.Time) *models.Event {
	t.Helper()

	event := &models.Event{
		UserID: userID,
		Title:  title,
		Start:  start,
	}
	require.NoError(t, env.db.Create(event).Error)
	return event
}

// createAuthContext builds a gin context carrying the authenticated user
// ID, simulating RequireAuth.
func createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(middleware.ContextKeyUserID, userID)

	return c, w
}
