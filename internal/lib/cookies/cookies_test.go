package cookies

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCookie(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %s not found", name)
	return nil
}

func TestSetSession(t *testing.T) {
	rec := httptest.NewRecorder()
	pair := Pair{Access: "access-token", Refresh: "refresh-token"}
	opts := Options{
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
		Secure:     true,
	}

	SetSession(rec, pair, opts)

	result := rec.Result()
	defer result.Body.Close()
	cookies := result.Cookies()
	require.Len(t, cookies, 2)

	access := findCookie(t, cookies, AccessTokenCookie)
	assert.Equal(t, "access-token", access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
	assert.Equal(t, int((15 * time.Minute).Seconds()), access.MaxAge)

	refresh := findCookie(t, cookies, RefreshTokenCookie)
	assert.Equal(t, "refresh-token", refresh.Value)
	assert.True(t, refresh.HttpOnly)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), refresh.MaxAge)
}

func TestSetSession_NotSecureOutsideProd(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSession(rec, Pair{Access: "a", Refresh: "r"}, Options{
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
		Secure:     false,
	})

	result := rec.Result()
	defer result.Body.Close()
	for _, c := range result.Cookies() {
		assert.False(t, c.Secure)
	}
}

func TestClearSession(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearSession(rec, true)

	result := rec.Result()
	defer result.Body.Close()
	cookies := result.Cookies()
	require.Len(t, cookies, 2)

	for _, c := range cookies {
		assert.Empty(t, c.Value)
		assert.Equal(t, -1, c.MaxAge)
		assert.True(t, c.HttpOnly)
	}
}
