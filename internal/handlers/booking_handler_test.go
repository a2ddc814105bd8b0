package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingHandler_Create_RejectsLongIdempotencyKey(t *testing.T) {
	h := NewBookingHandler(services.NewBookingService(nil, nopNotifier{}, nil, nil, nil))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Set("userRole", models.RoleAdmin)
		c.Next()
	})
	r.POST("/projects/:project_id/bookings", h.Create)

	body := `{"unit_id":4,"client_id":2,"booking_amount":"100000","agreement_amount":"4500000"}`
	req := httptest.NewRequest(http.MethodPost, "/projects/1/bookings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(IdempotencyHeader, strings.Repeat("a", 65))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "idempotency_key", resp["field"])
}
