package logout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/business-catalog/internal/lib/cookies"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
)

func TestLogoutHandler_ServeHTTP(t *testing.T) {
	handler := New(sl.Discard(), false)

	// Выход идемпотентен: работает и без установленных cookies
	for _, name := range []string{"with cookies", "without cookies"} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			if name == "with cookies" {
				req.AddCookie(&http.Cookie{Name: cookies.AccessTokenCookie, Value: "access"})
				req.AddCookie(&http.Cookie{Name: cookies.RefreshTokenCookie, Value: "refresh"})
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			require.NoError(t, err)
			assert.Equal(t, "OK", got["status"])
			data, ok := got["data"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "Logout successful", data["message"])

			result := rec.Result()
			defer result.Body.Close()
			setCookies := result.Cookies()
			require.Len(t, setCookies, 2)
			for _, c := range setCookies {
				assert.Empty(t, c.Value)
				assert.Equal(t, -1, c.MaxAge)
			}
		})
	}
}
