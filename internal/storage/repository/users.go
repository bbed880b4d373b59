package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// RegisterUser сохраняет нового пользователя в базу данных и возвращает его ID.
// Повторная регистрация телефона даёт apperr.ErrUserExists.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID string
	query := `INSERT INTO users (phone, password_hash, roles, is_active)
			  VALUES ($1, $2, $3::text[], $4)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Phone, user.PasswordHash, pq.Array(user.Roles), user.IsActive).Scan(&newID); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, apperr.ErrUserExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUserByPhone возвращает пользователя по его телефону.
func (s *Storage) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	const op = "storage.GetUserByPhone"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, phone, password_hash, roles, is_active, created_at, updated_at
			  FROM users
			  WHERE phone = $1`
	return s.scanUser(ctx, op, query, phone)
}

// GetUser возвращает пользователя по его ID.
func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, phone, password_hash, roles, is_active, created_at, updated_at
			  FROM users
			  WHERE id = $1`
	return s.scanUser(ctx, op, query, id)
}

// SetUserActive переключает флаг активности пользователя.
func (s *Storage) SetUserActive(ctx context.Context, id string, active bool) error {
	const op = "storage.SetUserActive"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users SET is_active = $1, updated_at = now() WHERE id = $2`
	result, err := s.DB.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, apperr.ErrUserNotFound)
	}
	return nil
}

func (s *Storage) scanUser(ctx context.Context, op, query string, arg any) (*models.User, error) {
	u := &models.User{}
	var roles pq.StringArray
	row := s.DB.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&u.ID, &u.Phone, &u.PasswordHash, &roles,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, apperr.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Roles = roles
	return u, nil
}
