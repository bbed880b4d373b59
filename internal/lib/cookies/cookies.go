// Package cookies реализует транспорт пары токенов через HTTP cookies.
//
// Оба токена ставятся как httpOnly с SameSite=Strict; флаг Secure включается
// в производственном окружении. MaxAge совпадает с TTL соответствующего токена.
package cookies

import (
	"net/http"
	"time"
)

// Имена cookies для пары токенов.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// Pair — пара выпущенных токенов сессии.
type Pair struct {
	Access  string
	Refresh string
}

// Options задаёт параметры установки cookies сессии.
type Options struct {
	AccessTTL  time.Duration // TTL access-токена (MaxAge cookie)
	RefreshTTL time.Duration // TTL refresh-токена (MaxAge cookie)
	Secure     bool          // Secure-флаг, включается при env=prod
}

// SetSession устанавливает cookies access_token и refresh_token.
func SetSession(w http.ResponseWriter, pair Pair, opts Options) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    pair.Access,
		Path:     "/",
		MaxAge:   int(opts.AccessTTL.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    pair.Refresh,
		Path:     "/",
		MaxAge:   int(opts.RefreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSession сбрасывает обе cookies сессии. Операция идемпотентна:
// сброс отсутствующей cookie не является ошибкой.
func ClearSession(w http.ResponseWriter, secure bool) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteStrictMode,
		})
	}
}
