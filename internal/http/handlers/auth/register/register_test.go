package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/lib/cookies"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// Мок сервиса регистрации
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, phone, rawPassword string) (*models.User, cookies.Pair, error) {
	args := m.Called(ctx, phone, rawPassword)
	if args.Get(0) == nil {
		return nil, cookies.Pair{}, args.Error(2)
	}
	return args.Get(0).(*models.User), args.Get(1).(cookies.Pair), args.Error(2)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	user := &models.User{
		ID:       "b2f4d17e-5a90-4f3a-9a1e-111111111111",
		Phone:    "+5351525354",
		Roles:    []string{models.RoleUser},
		IsActive: true,
	}
	pair := cookies.Pair{Access: "access-token", Refresh: "refresh-token"}
	opts := cookies.Options{AccessTTL: 15 * time.Minute, RefreshTTL: 7 * 24 * time.Hour}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockUser       *models.User
		mockErr        error
		wantStatusCode int
		wantMessage    string
		wantError      string
		wantCookies    bool
	}{
		{
			name: "valid registration",
			requestBody: Request{
				Phone:    "+5351525354",
				Password: "Str0ng!pass",
			},
			mockUser:       user,
			wantStatusCode: http.StatusOK,
			wantMessage:    "Successful register!",
			wantCookies:    true,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name: "invalid phone",
			requestBody: Request{
				Phone:    "+79515253545",
				Password: "Str0ng!pass",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Phone is not a valid cuban phone number, example +5351525354",
		},
		{
			name: "weak password",
			requestBody: Request{
				Phone:    "+5351525354",
				Password: "weak",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Password must be 8-50 chars with upper, lower, digit and symbol",
		},
		{
			name: "duplicate phone",
			requestBody: Request{
				Phone:    "+5351525354",
				Password: "Str0ng!pass",
			},
			mockErr:        apperr.ErrUserExists,
			wantStatusCode: http.StatusConflict,
			wantError:      "phone already registered",
		},
		{
			name: "storage error",
			requestBody: Request{
				Phone:    "+5351525354",
				Password: "Str0ng!pass",
			},
			mockErr:        errors.New("storage error"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to register user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcMock := new(ServiceMock)
			if tt.mockUser != nil {
				svcMock.On("Register", mock.Anything, "+5351525354", "Str0ng!pass").
					Return(tt.mockUser, pair, nil).Once()
			} else if tt.mockErr != nil {
				svcMock.On("Register", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, cookies.Pair{}, tt.mockErr).Once()
			}

			handler := New(sl.Discard(), svcMock, opts)

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

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
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
				assert.Equal(t, tt.wantMessage, data["message"])
				assert.Equal(t, user.ID, data["id"])
				assert.Equal(t, user.Phone, data["phone"])
			}

			result := rec.Result()
			defer result.Body.Close()
			if tt.wantCookies {
				assert.Len(t, result.Cookies(), 2)
			} else {
				assert.Empty(t, result.Cookies())
			}

			svcMock.AssertExpectations(t)
		})
	}
}
