package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// CreateContact вставляет контакты бизнеса и возвращает их ID.
// У бизнеса может быть только одна запись контактов.
func (s *Storage) CreateContact(ctx context.Context, c models.Contact) (string, error) {
	const op = "storage.CreateContact"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO contacts (phones, urls, business_id)
			  VALUES ($1::text[], $2::text[], $3)
			  RETURNING contact_id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		pq.Array(c.Phones), pq.Array(c.URLs), c.BusinessID).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, apperr.ErrAlreadyExists)
		}
		if isForeignKeyViolation(err) {
			return "", fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadContactByBusiness возвращает контакты бизнеса.
func (s *Storage) ReadContactByBusiness(ctx context.Context, businessID string) (*models.Contact, error) {
	const op = "storage.ReadContactByBusiness"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT contact_id, phones, urls, business_id, created_at, updated_at
			  FROM contacts
			  WHERE business_id = $1 AND deleted_at IS NULL`
	var c models.Contact
	var phones, urls pq.StringArray
	row := s.DB.QueryRowContext(ctx, query, businessID)
	if err := row.Scan(&c.ID, &phones, &urls, &c.BusinessID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, wrapNotFound(op, err)
	}
	c.Phones = phones
	c.URLs = urls
	return &c, nil
}

// UpdateContact обновляет контакты бизнеса и возвращает количество изменённых строк.
func (s *Storage) UpdateContact(ctx context.Context, c models.Contact, businessID string) (int, error) {
	const op = "storage.UpdateContact"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE contacts
			  SET phones = $1::text[], urls = $2::text[], updated_at = now()
			  WHERE business_id = $3 AND deleted_at IS NULL`
	result, err := s.DB.ExecContext(ctx, query, pq.Array(c.Phones), pq.Array(c.URLs), businessID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
