// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки пары токенов доступа
// и обновления. MakerImpl — конкретная реализация с использованием
// секретного ключа и отдельных TTL для каждого типа токена.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// Типы токенов. Тип зашит в claims, и ParseToken отклоняет токен,
// предъявленный не по назначению: refresh-токен нельзя использовать
// как access-токен и наоборот.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
type CustomClaims struct {
	Phone                string   `json:"phone"`      // Телефон пользователя
	Roles                []string `json:"roles"`      // Роли пользователя
	TokenType            string   `json:"token_type"` // access или refresh
	jwt.RegisteredClaims          // Встроенные стандартные claims JWT (Subject, ExpiresAt и пр.)
}

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken создаёт подписанный токен заданного типа для пользователя.
	GenerateToken(user *models.User, tokenType string) (string, error)
	// ParseToken проверяет подпись, срок действия и тип токена
	// и возвращает *CustomClaims.
	ParseToken(tokenStr, wantType string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токенов каждого типа.
type MakerImpl struct {
	secretKey  string        // Секретный ключ для подписи токенов
	accessTTL  time.Duration // Время жизни access-токена
	refreshTTL time.Duration // Время жизни refresh-токена
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, accessTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}
