package middlewarectx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/lib/cookies"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// Мок сервиса аутентификации
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func sampleUser() *models.User {
	return &models.User{
		ID:       "b2f4d17e-5a90-4f3a-9a1e-111111111111",
		Phone:    "+5351525354",
		Roles:    []string{models.RoleUser},
		IsActive: true,
	}
}

func TestAuthMiddleware(t *testing.T) {
	user := sampleUser()

	tests := []struct {
		name           string
		setToken       func(r *http.Request)
		mockUser       *models.User
		mockErr        error
		wantStatusCode int
		wantUserInCtx  bool
	}{
		{
			name: "token from cookie",
			setToken: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: cookies.AccessTokenCookie, Value: "valid-token"})
			},
			mockUser:       user,
			wantStatusCode: http.StatusOK,
			wantUserInCtx:  true,
		},
		{
			name: "token from bearer header",
			setToken: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer valid-token")
			},
			mockUser:       user,
			wantStatusCode: http.StatusOK,
			wantUserInCtx:  true,
		},
		{
			name: "cookie wins over header",
			setToken: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: cookies.AccessTokenCookie, Value: "valid-token"})
				r.Header.Set("Authorization", "Bearer other-token")
			},
			mockUser:       user,
			wantStatusCode: http.StatusOK,
			wantUserInCtx:  true,
		},
		{
			name:           "missing token",
			setToken:       func(r *http.Request) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			setToken: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: cookies.AccessTokenCookie, Value: "bad-token"})
			},
			mockErr:        apperr.ErrTokenInvalid,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			setToken: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: cookies.AccessTokenCookie, Value: "expired-token"})
			},
			mockErr:        apperr.ErrTokenExpired,
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "inactive user",
			setToken: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: cookies.AccessTokenCookie, Value: "valid-token"})
			},
			mockErr:        apperr.ErrUserInactive,
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			if tt.mockUser != nil {
				authMock.On("Authenticate", mock.Anything, "valid-token").
					Return(tt.mockUser, nil).Once()
			} else if tt.mockErr != nil {
				authMock.On("Authenticate", mock.Anything, mock.Anything).
					Return(nil, tt.mockErr).Once()
			}

			var gotUser *models.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.setToken(req)
			rec := httptest.NewRecorder()

			AuthMiddleware(authMock, sl.Discard())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			if tt.wantUserInCtx {
				assert.Equal(t, user.ID, gotUser.ID)
			} else {
				assert.Nil(t, gotUser)
			}
			authMock.AssertExpectations(t)
		})
	}
}
