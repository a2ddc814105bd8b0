package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/propease/propease-api/internal/models"
	"github.com/propease/propease-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowUpHandler_AddNote_Validation(t *testing.T) {
	h := NewFollowUpHandler(services.NewFollowUpService(nil, nopNotifier{}, nil))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Set("userRole", models.RoleAdmin)
		c.Next()
	})
	r.POST("/projects/:project_id/follow_ups/:follow_up_id/notes", h.AddNote)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		field  string
	}{
		{"past date", "/projects/1/follow_ups/3/notes", `{"next_date":"2001-01-01","body":"Called","tag":"CALL"}`, http.StatusBadRequest, "next_date"},
		{"missing tag", "/projects/1/follow_ups/3/notes", `{"next_date":"2999-01-01","body":"Called"}`, http.StatusBadRequest, "tag"},
		{"bad id", "/projects/1/follow_ups/x/notes", `{}`, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.status, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.field, resp["field"])
		})
	}
}
