package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// GenerateToken создает JWT токен заданного типа с данными пользователя,
// подписывая его секретным ключом. Время жизни зависит от типа токена.
func (j *MakerImpl) GenerateToken(user *models.User, tokenType string) (string, error) {
	const op = "jwt.GenerateToken"
	ttl := j.accessTTL
	if tokenType == TokenTypeRefresh {
		ttl = j.refreshTTL
	}
	now := time.Now()
	claims := CustomClaims{
		Phone:     user.Phone,
		Roles:     user.Roles,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// ParseToken парсит JWT токен, проверяет его подпись, срок действия и тип,
// возвращает CustomClaims с данными, если токен корректен.
//
// Истёкший токен даёт apperr.ErrTokenExpired, любая иная проблема, включая
// несовпадение типа — apperr.ErrTokenInvalid.
func (j *MakerImpl) ParseToken(tokenStr, wantType string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, apperr.ErrTokenExpired)
		}
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrTokenInvalid)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrTokenInvalid)
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("%s: wrong token type: %w", op, apperr.ErrTokenInvalid)
	}
	return claims, nil
}
