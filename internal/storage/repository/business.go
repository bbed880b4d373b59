package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// CreateBusiness вставляет новую запись бизнеса и возвращает её ID.
// Нарушение уникальности имени или адреса даёт apperr.ErrAlreadyExists,
// несуществующая категория или пользователь — apperr.ErrNotFound.
func (s *Storage) CreateBusiness(ctx context.Context, b models.Business) (string, error) {
	const op = "storage.CreateBusiness"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO business (business_model, business_type, name, slogan, description,
			      address, profile_image, cover_images, date_event, date_start_event,
			      date_end_event, user_id, category_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8::text[], $9, $10, $11, $12, $13)
			  RETURNING business_id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		b.BusinessModel, b.BusinessType, b.Name, b.Slogan, b.Description,
		b.Address, b.ProfileImage, pq.Array(b.CoverImages), b.DateEvent, b.DateStartEvent,
		b.DateEndEvent, b.UserID, b.CategoryID).Scan(&newID)
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

// ReadBusiness возвращает бизнес по его ID. Мягко удалённые записи не видны.
func (s *Storage) ReadBusiness(ctx context.Context, id string) (*models.Business, error) {
	const op = "storage.ReadBusiness"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT business_id, business_model, business_type, name, slogan, description,
			      address, profile_image, cover_images, date_event, date_start_event,
			      date_end_event, user_id, category_id, created_at, updated_at
			  FROM business
			  WHERE business_id = $1 AND deleted_at IS NULL`
	row := s.DB.QueryRowContext(ctx, query, id)

	var b models.Business
	var coverImages pq.StringArray
	if err := row.Scan(&b.ID, &b.BusinessModel, &b.BusinessType, &b.Name, &b.Slogan,
		&b.Description, &b.Address, &b.ProfileImage, &coverImages, &b.DateEvent,
		&b.DateStartEvent, &b.DateEndEvent, &b.UserID, &b.CategoryID,
		&b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, wrapNotFound(op, err)
	}
	b.CoverImages = coverImages
	return &b, nil
}

// ListBusiness возвращает страницу бизнесов и общее число записей.
func (s *Storage) ListBusiness(ctx context.Context, limit, offset int) ([]*models.Business, int, error) {
	const op = "storage.ListBusiness"
	select {
	case <-ctx.Done():
		return nil, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var total int
	if err := s.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM business WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT business_id, business_model, business_type, name, slogan, description,
			      address, profile_image, cover_images, date_event, date_start_event,
			      date_end_event, user_id, category_id, created_at, updated_at
			  FROM business
			  WHERE deleted_at IS NULL
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Business
	for rows.Next() {
		var b models.Business
		var coverImages pq.StringArray
		if err = rows.Scan(&b.ID, &b.BusinessModel, &b.BusinessType, &b.Name, &b.Slogan,
			&b.Description, &b.Address, &b.ProfileImage, &coverImages, &b.DateEvent,
			&b.DateStartEvent, &b.DateEndEvent, &b.UserID, &b.CategoryID,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		b.CoverImages = coverImages
		result = append(result, &b)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return result, total, nil
}

// UpdateBusiness обновляет данные бизнеса по его ID и возвращает количество изменённых строк.
func (s *Storage) UpdateBusiness(ctx context.Context, b models.Business, id string) (int, error) {
	const op = "storage.UpdateBusiness"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE business
			  SET business_model = $1, business_type = $2, name = $3, slogan = $4,
			      description = $5, address = $6, profile_image = $7, cover_images = $8::text[],
			      date_event = $9, date_start_event = $10, date_end_event = $11,
			      category_id = $12, updated_at = now()
			  WHERE business_id = $13 AND deleted_at IS NULL`
	result, err := s.DB.ExecContext(ctx, query,
		b.BusinessModel, b.BusinessType, b.Name, b.Slogan, b.Description, b.Address,
		b.ProfileImage, pq.Array(b.CoverImages), b.DateEvent, b.DateStartEvent,
		b.DateEndEvent, b.CategoryID, id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, apperr.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveBusiness мягко удаляет бизнес и возвращает количество затронутых строк.
func (s *Storage) RemoveBusiness(ctx context.Context, id string) (int, error) {
	const op = "storage.RemoveBusiness"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE business SET deleted_at = now()
			  WHERE business_id = $1 AND deleted_at IS NULL`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
