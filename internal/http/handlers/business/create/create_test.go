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

// Мок сервиса создания бизнеса
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Create(ctx context.Context, user *models.User, req models.DummyBusiness) (string, error) {
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
	validBody := models.DummyBusiness{
		BusinessModel: "business",
		BusinessType:  "restaurant",
		Name:          "La Bodeguita",
		Address:       "Calle Empedrado 207, Habana Vieja",
		ProfileImage:  "https://example.com/img.jpg",
		CategoryID:    "c3e3d17e-5a90-4f3a-9a1e-222222222222",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		withUser       bool
		mockID         string
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "valid creation",
			requestBody:    validBody,
			withUser:       true,
			mockID:         "d4a5d17e-5a90-4f3a-9a1e-333333333333",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "no user in context",
			requestBody:    validBody,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "user not found in context",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			withUser:       true,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name:           "duplicate name",
			requestBody:    validBody,
			withUser:       true,
			mockErr:        apperr.ErrAlreadyExists,
			wantStatusCode: http.StatusConflict,
			wantError:      "business already exists",
		},
		{
			name:           "unknown category",
			requestBody:    validBody,
			withUser:       true,
			mockErr:        apperr.ErrNotFound,
			wantStatusCode: http.StatusNotFound,
			wantError:      "category not found",
		},
		{
			name:           "storage error",
			requestBody:    validBody,
			withUser:       true,
			mockErr:        errors.New("storage error"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to create business",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcMock := new(ServiceMock)
			if tt.mockID != "" || tt.mockErr != nil {
				svcMock.On("Create", mock.Anything, user, validBody).
					Return(tt.mockID, tt.mockErr).Once()
			}

			handler := New(sl.Discard(), svcMock)

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/business", bytes.NewReader(bodyBytes))
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.withUser {
				ctx = middlewarectx.ContextWithUser(ctx, user)
			}
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
				assert.Equal(t, tt.mockID, data["business_id"])
			}

			svcMock.AssertExpectations(t)
		})
	}
}
