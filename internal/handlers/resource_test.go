package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studious-dev/studious-api/internal/middleware"
	"github.com/studious-dev/studious-api/internal/models"
)

func multipartUpload(t *testing.T, course string, fileName, contents string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if course != "" {
		require.NoError(t, mw.WriteField("course", course))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte(contents))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func uploadContext(t *testing.T, body *bytes.Buffer, contentType string, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/resources/upload", body)
	req.Header.Set("Content-Type", contentType)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(middleware.ContextKeyUserID, userID)
	return c, w
}

func TestUploadResource_Success(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewResourceHandler(env.resourceService)

	user := env.createTestUser(t, "test@example.com")
	course := env.createTestCourse(t, user.ID, "CS101")

	body, contentType := multipartUpload(t, fmt.Sprintf("%d", course.ID), "notes.pdf", "lecture notes")
	c, w := uploadContext(t, body, contentType, user.ID)

	handler.UploadResource(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "notes.pdf", resp["file_name"])
	assert.EqualValues(t, len("lecture notes"), resp["file_size"])

	// The file landed on disk under the stored path
	var resource models.Resource
	require.NoError(t, env.db.First(&resource).Error)
	data, err := os.ReadFile(resource.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "lecture notes", string(data))
}

func TestUploadResource_MissingFile(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewResourceHandler(env.resourceService)

	user := env.createTestUser(t, "test@example.com")
	course := env.createTestCourse(t, user.ID, "CS101")

	body, contentType := multipartUpload(t, fmt.Sprintf("%d", course.ID), "", "")
	c, w := uploadContext(t, body, contentType, user.ID)

	handler.UploadResource(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please upload a file")
}

func TestUploadResource_ForeignCourse(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewResourceHandler(env.resourceService)

	owner := env.createTestUser(t, "owner@example.com")
	intruder := env.createTestUser(t, "intruder@example.com")
	course := env.createTestCourse(t, owner.ID, "Private")

	body, contentType := multipartUpload(t, fmt.Sprintf("%d", course.ID), "notes.pdf", "data")
	c, w := uploadContext(t, body, contentType, intruder.ID)

	handler.UploadResource(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid course")
}

func TestListCourseResources(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewResourceHandler(env.resourceService)

	user := env.createTestUser(t, "test@example.com")
	course := env.createTestCourse(t, user.ID, "CS101")

	resource := &models.Resource{
		UserID:   user.ID,
		CourseID: course.ID,
		FileName: "syllabus.pdf",
		FilePath: "uploads/syllabus.pdf",
	}
	require.NoError(t, env.db.Create(resource).Error)

	c, w := createAuthContext("GET", "/api/resources/course/1", nil, user.ID)
	c.Params = gin.Params{{Key: "courseId", Value: fmt.Sprintf("%d", course.ID)}}

	handler.ListCourseResources(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resources []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resources))
	require.Len(t, resources, 1)
	assert.Equal(t, "syllabus.pdf", resources[0]["file_name"])
}

func TestDeleteResource_KeepsFile(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewResourceHandler(env.resourceService)

	user := env.createTestUser(t, "test@example.com")
	course := env.createTestCourse(t, user.ID, "CS101")

	dir := t.TempDir()
	path := dir + "/kept.txt"
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o644))

	resource := &models.Resource{
		UserID:   user.ID,
		CourseID: course.ID,
		FileName: "kept.txt",
		FilePath: path,
	}
	require.NoError(t, env.db.Create(resource).Error)

	c, w := createAuthContext("DELETE", "/api/resources/1", nil, user.ID)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprintf("%d", resource.ID)}}

	handler.DeleteResource(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Resource removed")

	var count int64
	env.db.Model(&models.Resource{}).Count(&count)
	assert.Zero(t, count)

	// The file itself is not part of the delete
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
