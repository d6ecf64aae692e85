package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/studious-dev/studious-api/internal/errors"
	"github.com/studious-dev/studious-api/internal/middleware"
	"github.com/studious-dev/studious-api/internal/models"
	"github.com/studious-dev/studious-api/internal/services"
)

// TaskHandler coordinates task CRUD handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a task under one of the caller's courses.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title    string     `json:"title"`
		Details  string     `json:"details"`
		CourseID uint64     `json:"course"`
		DueDate  *time.Time `json:"due_date"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Title == "" {
		apierrors.BadRequest(c, "Title is required")
		return
	}
	if req.CourseID == 0 {
		apierrors.BadRequest(c, "Course is required")
		return
	}

	task, err := h.taskService.Create(userID, services.CreateTaskInput{
		Title:    req.Title,
		Details:  req.Details,
		CourseID: req.CourseID,
		DueDate:  req.DueDate,
	})
	if err != nil {
		respondEntityError(c, err, "Task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks returns the caller's tasks, newest first, optionally filtered
// by course.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var courseID *uint64
	if raw := c.Query("course_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid course_id")
			return
		}
		courseID = &id
	}

	tasks, err := h.taskService.List(userID, courseID)
	if err != nil {
		respondEntityError(c, err, "Task")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask returns a single task.
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(userID, taskID)
	if err != nil {
		respondEntityError(c, err, "Task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial update; omitted fields are left unchanged.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Title   *string            `json:"title"`
		Details *string            `json:"details"`
		Status  *models.TaskStatus `json:"status"`
		DueDate *time.Time         `json:"due_date"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(userID, taskID, services.UpdateTaskInput{
		Title:   req.Title,
		Details: req.Details,
		Status:  req.Status,
		DueDate: req.DueDate,
	})
	if err != nil {
		respondEntityError(c, err, "Task")
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(userID, taskID); err != nil {
		respondEntityError(c, err, "Task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task removed"})
}
