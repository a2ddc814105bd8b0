package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/repository"
	"github.com/propease/propease-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type mockUserRepo struct {
	repository.UserRepository
	mockList     func(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error)
	mockFindByID func(ctx context.Context, id uint) (*models.User, error)
}

func (m *mockUserRepo) List(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
	return m.mockList(ctx, query)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.mockFindByID(ctx, id)
}

func newTestUserHandler(repo *mockUserRepo) *UserHandler {
	userService := services.NewUserService(&repository.Repositories{User: repo}, nil, nil, nil, nil)
	return NewUserHandler(userService)
}

func TestUserHandler_Index_DefaultStatus(t *testing.T) {
	mockRepo := &mockUserRepo{}
	handler := newTestUserHandler(mockRepo)

	var capturedStatus, capturedRole string
	mockRepo.mockList = func(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
		capturedStatus = query.Filters["status"]
		capturedRole = query.Filters["role"]
		return []models.User{}, 0, nil
	}

	// no status -> active
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/users", nil)
	handler.Index(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusActive, capturedStatus)

	// "all" -> no filter
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/users?status=all", nil)
	handler.Index(c)
	assert.Equal(t, "", capturedStatus)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/users?status=inactive&role=EMPLOYEE", nil)
	handler.Index(c)
	assert.Equal(t, "inactive", capturedStatus)
	assert.Equal(t, models.RoleEmployee, capturedRole)
}

func TestUserHandler_Index_Pagination(t *testing.T) {
	mockRepo := &mockUserRepo{
		mockList: func(ctx context.Context, query *repository.ListQuery) ([]models.User, int64, error) {
			return []models.User{{ID: 1, Email: "a@propease.test", Role: models.RoleAdmin}}, 41, nil
		},
	}
	handler := newTestUserHandler(mockRepo)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/users?per_page=20&page=2", nil)
	handler.Index(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Users      []models.UserResponse `json:"users"`
		Pagination map[string]float64    `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Users, 1)
	assert.Equal(t, float64(3), body.Pagination["total_pages"])
	assert.Equal(t, float64(2), body.Pagination["page"])
}

func TestUserHandler_Show_NotFound(t *testing.T) {
	mockRepo := &mockUserRepo{
		mockFindByID: func(ctx context.Context, id uint) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	handler := newTestUserHandler(mockRepo)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "user_id", Value: "7"}}
	c.Request, _ = http.NewRequest("GET", "/users/7", nil)
	handler.Show(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_Show_InvalidID(t *testing.T) {
	handler := newTestUserHandler(&mockUserRepo{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "user_id", Value: "abc"}}
	c.Request, _ = http.NewRequest("GET", "/users/abc", nil)
	handler.Show(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_Create_Validation(t *testing.T) {
	handler := newTestUserHandler(&mockUserRepo{})

	tests := []struct {
		name    string
		payload map[string]interface{}
		field   string
	}{
		{
			name:    "missing email",
			payload: map[string]interface{}{"password": "password123", "full_name": "A", "role": "EMPLOYEE"},
			field:   "email",
		},
		{
			name:    "short password",
			payload: map[string]interface{}{"email": "a@propease.test", "password": "short", "full_name": "A", "role": "EMPLOYEE"},
			field:   "password",
		},
		{
			name:    "unknown role",
			payload: map[string]interface{}{"email": "a@propease.test", "password": "password123", "full_name": "A", "role": "seller"},
			field:   "ADMIN or EMPLOYEE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			jsonBytes, _ := json.Marshal(tt.payload)
			c.Request, _ = http.NewRequest("POST", "/users", bytes.NewBuffer(jsonBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.Create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.field)
		})
	}
}

func TestUserHandler_ChangePassword_OnlySelf(t *testing.T) {
	handler := newTestUserHandler(&mockUserRepo{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", uint(2))
	c.Params = gin.Params{{Key: "user_id", Value: "3"}}
	c.Request, _ = http.NewRequest("PATCH", "/users/3/change_password",
		bytes.NewBufferString(`{"current_password":"old-password","new_password":"new-password"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.ChangePassword(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
