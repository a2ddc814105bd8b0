package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/apperrors"
	"github.com/propease/propease-api/internal/services"
	"github.com/propease/propease-api/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperrors.Validation("Please fill all required fields"), http.StatusBadRequest, "Please fill all required fields"},
		{"wrapped validation", fmt.Errorf("book: %w", apperrors.Validation("Enter a valid email")), http.StatusBadRequest, "Enter a valid email"},
		{"conflict", apperrors.Conflict("Unit is not vacant"), http.StatusConflict, "Unit is not vacant"},
		{"invalid state", services.ErrInvalidState, http.StatusConflict, "This action is not allowed in the current state"},
		{"not found", fmt.Errorf("registration draft x: %w", services.ErrNotFound), http.StatusNotFound, "Record not found"},
		{"gorm not found", gorm.ErrRecordNotFound, http.StatusNotFound, "Record not found"},
		{"forbidden", services.ErrForbidden, http.StatusForbidden, services.ErrForbidden.Error()},
		{"too large", storage.ErrFileTooLarge, http.StatusBadRequest, storage.ErrFileTooLarge.Error()},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, genericErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body["error"])
		})
	}
}

func TestRespondError_FieldAndCapture(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondError(c, apperrors.FieldValidation("email", "Enter a valid email"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "email", body["field"])
	assert.Empty(t, c.Errors)

	// unexpected errors are kept on the context for the request logger
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondError(c, errors.New("boom"))
	assert.Len(t, c.Errors, 1)
}

func TestListQuery(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&per_page=500&search_term=sky&sort_by=name&sort_dir=desc", nil)

	q := listQuery(c)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 20, q.PerPage)
	assert.Equal(t, "sky", q.Search)
	assert.Equal(t, "name", q.SortBy)
	assert.Equal(t, "desc", q.SortDir)

	p := pagination(q, 41)
	assert.Equal(t, int64(3), p["total_pages"])
}

func TestParamID(t *testing.T) {
	for _, v := range []string{"", "0", "-1", "abc"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "unit_id", Value: v}}

		_, ok := paramID(c, "unit_id")
		assert.False(t, ok, v)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "unit_id", Value: "12"}}
	id, ok := paramID(c, "unit_id")
	assert.True(t, ok)
	assert.Equal(t, uint(12), id)
}

func TestSendFile(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	sendFile(c, "text/csv", "bookings.csv", []byte("a,b\n"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="bookings.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "a,b\n", w.Body.String())
}
