// Package models содержит доменные модели каталога: пользователей,
// бизнесы, товары, категории и контакты. Структуры используются
// в бизнес-логике и при работе с хранилищем.
package models

import "time"

// Роли пользователей системы.
const (
	RoleUser      = "USER"
	RoleAdmin     = "ADMIN"
	RoleSuperuser = "SUPERUSER"
)

// User представляет зарегистрированного пользователя системы.
//
// PasswordHash никогда не сериализуется в ответы API.
type User struct {
	ID           string    `json:"id"`        // Уникальный идентификатор пользователя (uuid)
	Phone        string    `json:"phone"`     // Телефон, используется как логин (формат +53XXXXXXXX)
	PasswordHash string    `json:"-"`         // Bcrypt-хэш пароля
	Roles        []string  `json:"roles"`     // Роли пользователя: USER, ADMIN, SUPERUSER
	IsActive     bool      `json:"is_active"` // Активен ли пользователь; неактивные не проходят аутентификацию
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasAnyRole сообщает, есть ли у пользователя хотя бы одна из требуемых ролей.
// Пустой список required означает, что ограничений по ролям нет.
func (u *User) HasAnyRole(required ...string) bool {
	if len(required) == 0 {
		return true
	}
	for _, have := range u.Roles {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}
