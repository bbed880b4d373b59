// Package apperr определяет сентинельные ошибки доменного уровня.
// Сервисы возвращают их обёрнутыми через fmt.Errorf("%s: %w", op, err),
// а HTTP-обработчики распознают их через errors.Is и выбирают статус ответа.
package apperr

import "errors"

var (
	// ErrUserExists — телефон уже зарегистрирован.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound — пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserInactive — пользователь деактивирован администратором.
	ErrUserInactive = errors.New("user is inactive")
	// ErrInvalidCredentials — неверная пара телефон/пароль. Единое сообщение,
	// причина (телефон или пароль) не раскрывается клиенту.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid — подпись не сошлась, токен повреждён или
	// тип токена не соответствует ожидаемому.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrNotFound — запрашиваемая запись каталога не найдена или удалена.
	ErrNotFound = errors.New("entry not found")
	// ErrAlreadyExists — нарушение уникальности (имя, адрес и т.п.).
	ErrAlreadyExists = errors.New("entry already exists")
	// ErrForbidden — операция запрещена: чужая запись или нет нужной роли.
	ErrForbidden = errors.New("operation forbidden")
)
