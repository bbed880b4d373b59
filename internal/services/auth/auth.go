// Package services содержит логику бизнес-уровня для работы с пользователями
// и сессиями: регистрация, вход, выпуск и ротация пары токенов,
// аутентификация запросов.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/lib/cookies"
	"github.com/magabrotheeeer/business-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/business-catalog/internal/lib/password"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/models"
	"github.com/magabrotheeeer/business-catalog/internal/rabbitmq"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByPhone возвращает пользователя по телефону или ошибку, если не найден.
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)

	// GetUser возвращает пользователя по ID или ошибку, если не найден.
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// Notifier рассылает уведомления о выполненных операциях подключённым клиентам.
type Notifier interface {
	Notify(phone, operation string)
}

// EventPublisher публикует события во внешнюю шину.
type EventPublisher interface {
	Publish(routingKey string, event rabbitmq.Event) error
}

// AuthService отвечает за регистрацию, авторизацию, выпуск и ротацию токенов.
type AuthService struct {
	users     UserRepository
	jwtMaker  jwt.Maker
	notifier  Notifier
	publisher EventPublisher
	log       *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
// notifier и publisher могут быть nil, тогда уведомления не рассылаются.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, notifier Notifier,
	publisher EventPublisher, log *slog.Logger) *AuthService {
	return &AuthService{
		users:     users,
		jwtMaker:  jwtMaker,
		notifier:  notifier,
		publisher: publisher,
		log:       log,
	}
}

// Register создает нового пользователя с хэшированием пароля и дефолтной
// ролью USER и выпускает для него пару токенов.
func (s *AuthService) Register(ctx context.Context, phone, rawPassword string) (*models.User, cookies.Pair, error) {
	const op = "services.auth.Register"
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, cookies.Pair{}, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Phone:        phone,
		PasswordHash: hashed,
		Roles:        []string{models.RoleUser}, // дефолтная роль при регистрации
		IsActive:     true,
	}
	id, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return nil, cookies.Pair{}, fmt.Errorf("%s: %w", op, err)
	}
	user.ID = id
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	pair, err := s.IssueSession(&user)
	if err != nil {
		return nil, cookies.Pair{}, fmt.Errorf("%s: %w", op, err)
	}
	s.notify(rabbitmq.KeyAuthRegister, &user)
	return &user, pair, nil
}

// Login проверяет пару телефон/пароль и выпускает пару токенов.
//
// Отсутствующий пользователь, неверный пароль и деактивированная учётная
// запись дают одинаковую ошибку apperr.ErrInvalidCredentials: причина
// различима только в серверных логах.
func (s *AuthService) Login(ctx context.Context, phone, rawPassword string) (*models.User, cookies.Pair, error) {
	const op = "services.auth.Login"
	user, err := s.users.GetUserByPhone(ctx, phone)
	if err != nil {
		s.log.Info("login rejected: unknown phone", sl.Err(err))
		return nil, cookies.Pair{}, fmt.Errorf("%s: %w", op, apperr.ErrInvalidCredentials)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		s.log.Info("login rejected: password mismatch", slog.String("user_id", user.ID))
		return nil, cookies.Pair{}, fmt.Errorf("%s: %w", op, apperr.ErrInvalidCredentials)
	}
	if !user.IsActive {
		s.log.Info("login rejected: user inactive", slog.String("user_id", user.ID))
		return nil, cookies.Pair{}, fmt.Errorf("%s: %w", op, apperr.ErrInvalidCredentials)
	}

	pair, err := s.IssueSession(user)
	if err != nil {
		return nil, cookies.Pair{}, fmt.Errorf("%s: %w", op, err)
	}
	s.notify(rabbitmq.KeyAuthLogin, user)
	return user, pair, nil
}

// IssueSession выпускает пару access/refresh токенов для пользователя.
// Токен не выпускается для неактивного пользователя.
func (s *AuthService) IssueSession(user *models.User) (cookies.Pair, error) {
	const op = "services.auth.IssueSession"
	if !user.IsActive {
		return cookies.Pair{}, fmt.Errorf("%s: %w", op, apperr.ErrUserInactive)
	}
	access, err := s.jwtMaker.GenerateToken(user, jwt.TokenTypeAccess)
	if err != nil {
		return cookies.Pair{}, fmt.Errorf("%s: %w", op, err)
	}
	refresh, err := s.jwtMaker.GenerateToken(user, jwt.TokenTypeRefresh)
	if err != nil {
		return cookies.Pair{}, fmt.Errorf("%s: %w", op, err)
	}
	return cookies.Pair{Access: access, Refresh: refresh}, nil
}

// Authenticate проверяет access-токен и возвращает актуальную запись
// пользователя. Роли и флаг активности всегда читаются из базы,
// а не из claims: деактивация действует немедленно.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	const op = "services.auth.Authenticate"
	claims, err := s.jwtMaker.ParseToken(accessToken, jwt.TokenTypeAccess)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.users.GetUser(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrUserInactive)
	}
	return user, nil
}

// Refresh проверяет refresh-токен и выпускает новую пару токенов.
// Ротируются оба токена: и access, и refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (cookies.Pair, error) {
	const op = "services.auth.Refresh"
	claims, err := s.jwtMaker.ParseToken(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return cookies.Pair{}, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.users.GetUser(ctx, claims.Subject)
	if err != nil {
		return cookies.Pair{}, fmt.Errorf("%s: %w", op, err)
	}
	pair, err := s.IssueSession(user)
	if err != nil {
		return cookies.Pair{}, fmt.Errorf("%s: %w", op, err)
	}
	s.notify(rabbitmq.KeyAuthRefresh, user)
	return pair, nil
}

// notify рассылает уведомление и публикует событие; и то и другое best-effort.
func (s *AuthService) notify(operation string, user *models.User) {
	if s.notifier != nil {
		s.notifier.Notify(user.Phone, operation)
	}
	if s.publisher != nil {
		event := rabbitmq.Event{
			Actor:      user.Phone,
			Operation:  operation,
			EntityID:   user.ID,
			OccurredAt: time.Now(),
		}
		if err := s.publisher.Publish(operation, event); err != nil {
			s.log.Warn("failed to publish event", sl.Err(err))
		}
	}
}
