// Package services содержит бизнес-логику для управления категориями каталога.
// Создавать и удалять категории могут только администраторы, проверка ролей
// выполняется на уровне маршрутов.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

const cacheTTL = time.Hour

// CategoryRepository определяет методы для работы с категориями в хранилище.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, c models.Category) (string, error)
	ReadCategory(ctx context.Context, id string) (*models.Category, error)
	ListCategories(ctx context.Context, limit, offset int) ([]*models.Category, int, error)
	RemoveCategory(ctx context.Context, id string) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
	InvalidateByPattern(ctx context.Context, pattern string) error
}

// ListResult — страница категорий с метаданными.
type ListResult struct {
	Data []*models.Category `json:"data"`
	Meta models.PageMeta    `json:"meta"`
}

// CategoryService реализует бизнес-логику работы с категориями, включая кеширование.
type CategoryService struct {
	repo  CategoryRepository
	cache Cache
	log   *slog.Logger
}

// NewCategoryService создает новый экземпляр CategoryService.
func NewCategoryService(repo CategoryRepository, cache Cache, log *slog.Logger) *CategoryService {
	return &CategoryService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новую категорию и возвращает её ID.
func (s *CategoryService) Create(ctx context.Context, req models.DummyCategory) (string, error) {
	id, err := s.repo.CreateCategory(ctx, models.Category{Name: req.Name})
	if err != nil {
		return "", err
	}
	s.log.Info("created new category", slog.String("id", id))
	s.invalidateLists(ctx)
	return id, nil
}

// List возвращает страницу категорий, используя кеш или репозиторий.
func (s *CategoryService) List(ctx context.Context, p models.Pagination) (*ListResult, error) {
	p.Normalize()
	cacheKey := fmt.Sprintf("category:list:%d:%d", p.Page, p.Limit)

	var cached ListResult
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("cache lookup failed", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	data, total, err := s.repo.ListCategories(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, err
	}
	result := &ListResult{
		Data: data,
		Meta: models.NewPageMeta(total, p),
	}
	if err := s.cache.Set(ctx, cacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache category list", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// Read возвращает категорию по ID.
func (s *CategoryService) Read(ctx context.Context, id string) (*models.Category, error) {
	return s.repo.ReadCategory(ctx, id)
}

// Remove мягко удаляет категорию.
func (s *CategoryService) Remove(ctx context.Context, id string) (int, error) {
	count, err := s.repo.RemoveCategory(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidateLists(ctx)
	return count, nil
}

func (s *CategoryService) invalidateLists(ctx context.Context) {
	if err := s.cache.InvalidateByPattern(ctx, "category:list:*"); err != nil {
		s.log.Warn("failed to invalidate list cache", sl.Err(err))
	}
}
