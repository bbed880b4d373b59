package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// CreateProduct вставляет новую запись товара и возвращает её ID.
func (s *Storage) CreateProduct(ctx context.Context, p models.Product) (string, error) {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO products (name, description, price, available, product_type,
			      image, business_id, category_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING product_id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Price, p.Available, p.ProductType,
		p.Image, p.BusinessID, p.CategoryID).Scan(&newID)
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

// ReadProduct возвращает товар по его ID. Мягко удалённые записи не видны.
func (s *Storage) ReadProduct(ctx context.Context, id string) (*models.Product, error) {
	const op = "storage.ReadProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT product_id, name, description, price, available, product_type,
			      image, business_id, category_id, created_at, updated_at
			  FROM products
			  WHERE product_id = $1 AND deleted_at IS NULL`
	row := s.DB.QueryRowContext(ctx, query, id)

	var p models.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Available,
		&p.ProductType, &p.Image, &p.BusinessID, &p.CategoryID,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, wrapNotFound(op, err)
	}
	return &p, nil
}

// ListProducts возвращает страницу товаров бизнеса и общее их число.
// Пустой businessID означает выборку по всему каталогу.
func (s *Storage) ListProducts(ctx context.Context, businessID string, limit, offset int) ([]*models.Product, int, error) {
	const op = "storage.ListProducts"
	select {
	case <-ctx.Done():
		return nil, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var total int
	countQuery := `SELECT count(*) FROM products
			  WHERE deleted_at IS NULL AND ($1 = '' OR business_id::text = $1)`
	if err := s.DB.QueryRowContext(ctx, countQuery, businessID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT product_id, name, description, price, available, product_type,
			      image, business_id, category_id, created_at, updated_at
			  FROM products
			  WHERE deleted_at IS NULL AND ($1 = '' OR business_id::text = $1)
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Product
	for rows.Next() {
		var p models.Product
		if err = rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Available,
			&p.ProductType, &p.Image, &p.BusinessID, &p.CategoryID,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return result, total, nil
}

// UpdateProduct обновляет данные товара по его ID и возвращает количество изменённых строк.
func (s *Storage) UpdateProduct(ctx context.Context, p models.Product, id string) (int, error) {
	const op = "storage.UpdateProduct"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE products
			  SET name = $1, description = $2, price = $3, available = $4,
			      product_type = $5, image = $6, category_id = $7, updated_at = now()
			  WHERE product_id = $8 AND deleted_at IS NULL`
	result, err := s.DB.ExecContext(ctx, query,
		p.Name, p.Description, p.Price, p.Available, p.ProductType, p.Image, p.CategoryID, id)
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

// RemoveProduct мягко удаляет товар и возвращает количество затронутых строк.
func (s *Storage) RemoveProduct(ctx context.Context, id string) (int, error) {
	const op = "storage.RemoveProduct"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE products SET deleted_at = now()
			  WHERE product_id = $1 AND deleted_at IS NULL`
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
