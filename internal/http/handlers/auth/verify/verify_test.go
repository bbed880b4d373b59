package verify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/business-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

func TestVerifyHandler_ServeHTTP(t *testing.T) {
	user := &models.User{
		ID:       "b2f4d17e-5a90-4f3a-9a1e-111111111111",
		Phone:    "+5351525354",
		Roles:    []string{models.RoleUser, models.RoleAdmin},
		IsActive: true,
	}

	tests := []struct {
		name           string
		withUser       bool
		wantStatusCode int
	}{
		{name: "user in context", withUser: true, wantStatusCode: http.StatusOK},
		{name: "no user in context", withUser: false, wantStatusCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(sl.Discard())

			req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.withUser {
				ctx = middlewarectx.ContextWithUser(ctx, user)
			}
			req = req.WithContext(ctx)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.withUser {
				assert.Equal(t, "OK", got["status"])
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, user.ID, data["id"])
				assert.Equal(t, user.Phone, data["phone"])
				assert.Equal(t, true, data["is_active"])
			} else {
				assert.Equal(t, "Error", got["status"])
				assert.Equal(t, "user not found in context", got["error"])
			}
		})
	}
}
