package refresh

import (
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
)

// Мок сервиса обновления токенов
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Refresh(ctx context.Context, refreshToken string) (cookies.Pair, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(cookies.Pair), args.Error(1)
}

func TestRefreshHandler_ServeHTTP(t *testing.T) {
	pair := cookies.Pair{Access: "new-access", Refresh: "new-refresh"}
	opts := cookies.Options{AccessTTL: 15 * time.Minute, RefreshTTL: 7 * 24 * time.Hour}

	tests := []struct {
		name           string
		cookie         *http.Cookie
		mockPair       *cookies.Pair
		mockErr        error
		wantStatusCode int
		wantError      string
		wantCookies    bool
	}{
		{
			name:           "valid refresh",
			cookie:         &http.Cookie{Name: cookies.RefreshTokenCookie, Value: "refresh-token"},
			mockPair:       &pair,
			wantStatusCode: http.StatusOK,
			wantCookies:    true,
		},
		{
			name:           "missing cookie",
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "refresh token not found",
		},
		{
			name:           "empty cookie value",
			cookie:         &http.Cookie{Name: cookies.RefreshTokenCookie, Value: ""},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "refresh token not found",
		},
		{
			name: "access token cookie is not enough",
			// access-токен в своей cookie не заменяет refresh
			cookie:         &http.Cookie{Name: cookies.AccessTokenCookie, Value: "access-token"},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "refresh token not found",
		},
		{
			name:           "expired token",
			cookie:         &http.Cookie{Name: cookies.RefreshTokenCookie, Value: "expired-token"},
			mockErr:        apperr.ErrTokenExpired,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid or expired refresh token",
		},
		{
			name:           "invalid token",
			cookie:         &http.Cookie{Name: cookies.RefreshTokenCookie, Value: "bad-token"},
			mockErr:        apperr.ErrTokenInvalid,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid or expired refresh token",
		},
		{
			name:           "user deleted",
			cookie:         &http.Cookie{Name: cookies.RefreshTokenCookie, Value: "orphan-token"},
			mockErr:        apperr.ErrUserNotFound,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid user",
		},
		{
			name:           "user deactivated",
			cookie:         &http.Cookie{Name: cookies.RefreshTokenCookie, Value: "inactive-token"},
			mockErr:        apperr.ErrUserInactive,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid user",
		},
		{
			name:           "storage error",
			cookie:         &http.Cookie{Name: cookies.RefreshTokenCookie, Value: "refresh-token"},
			mockErr:        errors.New("storage error"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to refresh tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcMock := new(ServiceMock)
			if tt.mockPair != nil {
				svcMock.On("Refresh", mock.Anything, tt.cookie.Value).
					Return(*tt.mockPair, nil).Once()
			} else if tt.mockErr != nil {
				svcMock.On("Refresh", mock.Anything, tt.cookie.Value).
					Return(cookies.Pair{}, tt.mockErr).Once()
			}

			handler := New(sl.Discard(), svcMock, opts)

			req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				assert.Equal(t, "Error", got["status"])
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, "OK", got["status"])
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "Tokens refreshed", data["message"])
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
