package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// Мок сервиса создания контактов
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Create(ctx context.Context, user *models.User, req models.DummyContact) (string, error) {
	args := m.Called(ctx, user, req)
	return args.String(0), args.Error(1)
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
	user := &models.User{
		ID:       "b2f4d17e-5a90-4f3a-9a1e-111111111111",
		Phone:    "+5351525354",
		Roles:    []string{models.RoleUser},
		IsActive: true,
	}
	validBody := models.DummyContact{
		Phones:     []string{"+5351525354"},
		URLs:       []string{"https://example.com"},
		BusinessID: "d4a5d17e-5a90-4f3a-9a1e-333333333333",
	}

	tests := []struct {
		name           string
		mockID         string
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "valid creation",
			mockID:         "e5b6d17e-5a90-4f3a-9a1e-444444444444",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "not business owner",
			mockErr:        apperr.ErrForbidden,
			wantStatusCode: http.StatusForbidden,
			wantError:      "forbidden",
		},
		{
			name:           "unknown business",
			mockErr:        apperr.ErrNotFound,
			wantStatusCode: http.StatusNotFound,
			wantError:      "business not found",
		},
		{
			name:           "second contact row for business",
			mockErr:        apperr.ErrAlreadyExists,
			wantStatusCode: http.StatusConflict,
			wantError:      "contact already exists",
		},
		{
			name:           "storage error",
			mockErr:        errors.New("storage error"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to create contact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcMock := new(ServiceMock)
			svcMock.On("Create", mock.Anything, user, validBody).
				Return(tt.mockID, tt.mockErr).Once()

			handler := New(sl.Discard(), svcMock)

			bodyBytes, err := json.Marshal(validBody)
			if err != nil {
				t.Fatal(err)
			}

			req := httptest.NewRequest(http.MethodPost, "/contacts", bytes.NewReader(bodyBytes))
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			ctx = middlewarectx.ContextWithUser(ctx, user)
			req = req.WithContext(ctx)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				assert.Equal(t, "Error", got["status"])
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, "OK", got["status"])
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, tt.mockID, data["contact_id"])
			}

			svcMock.AssertExpectations(t)
		})
	}
}
