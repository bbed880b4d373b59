// Package services содержит бизнес-логику для управления товарами и услугами
// каталога. Изменять товары может только владелец бизнеса либо администратор.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/business-catalog/internal/models"
	"github.com/magabrotheeeer/business-catalog/internal/rabbitmq"
)

const cacheTTL = time.Hour

// ProductRepository определяет методы для работы с товарами в хранилище.
type ProductRepository interface {
	CreateProduct(ctx context.Context, p models.Product) (string, error)
	ReadProduct(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context, businessID string, limit, offset int) ([]*models.Product, int, error)
	UpdateProduct(ctx context.Context, p models.Product, id string) (int, error)
	RemoveProduct(ctx context.Context, id string) (int, error)
	// ReadBusiness нужен для проверки владельца товара.
	ReadBusiness(ctx context.Context, id string) (*models.Business, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
	InvalidateByPattern(ctx context.Context, pattern string) error
}

// Notifier рассылает уведомления о выполненных операциях.
type Notifier interface {
	Notify(phone, operation string)
}

// EventPublisher публикует события во внешнюю шину.
type EventPublisher interface {
	Publish(routingKey string, event rabbitmq.Event) error
}

// ListResult — страница товаров с метаданными.
type ListResult struct {
	Data []*models.Product `json:"data"`
	Meta models.PageMeta   `json:"meta"`
}

// ProductService реализует бизнес-логику работы с товарами, включая кеширование.
type ProductService struct {
	repo      ProductRepository
	cache     Cache
	notifier  Notifier
	publisher EventPublisher
	log       *slog.Logger
}

// NewProductService создает новый экземпляр ProductService.
func NewProductService(repo ProductRepository, cache Cache, notifier Notifier,
	publisher EventPublisher, log *slog.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		cache:     cache,
		notifier:  notifier,
		publisher: publisher,
		log:       log,
	}
}

// Create создает новый товар в бизнесе пользователя и возвращает его ID.
func (s *ProductService) Create(ctx context.Context, user *models.User, req models.DummyProduct) (string, error) {
	if err := s.checkOwner(ctx, user, req.BusinessID); err != nil {
		return "", err
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   req.Available,
		ProductType: req.ProductType,
		Image:       req.Image,
		BusinessID:  req.BusinessID,
		CategoryID:  req.CategoryID,
	}
	id, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return "", err
	}
	s.log.Info("created new product", slog.String("id", id))

	s.invalidateLists(ctx)
	s.notify(user, rabbitmq.KeyProductCreated, id)
	return id, nil
}

// List возвращает страницу товаров, используя кеш или репозиторий.
// Пустой businessID означает выборку по всему каталогу.
func (s *ProductService) List(ctx context.Context, businessID string, p models.Pagination) (*ListResult, error) {
	p.Normalize()
	cacheKey := fmt.Sprintf("product:list:%s:%d:%d", businessID, p.Page, p.Limit)

	var cached ListResult
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("cache lookup failed", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	data, total, err := s.repo.ListProducts(ctx, businessID, p.Limit, p.Offset())
	if err != nil {
		return nil, err
	}
	result := &ListResult{
		Data: data,
		Meta: models.NewPageMeta(total, p),
	}
	if err := s.cache.Set(ctx, cacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache product list", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// Read возвращает товар по ID, используя кеш или репозиторий.
func (s *ProductService) Read(ctx context.Context, id string) (*models.Product, error) {
	var result *models.Product
	cacheKey := "product:" + id
	found, err := s.cache.Get(ctx, cacheKey, &result)
	if err != nil {
		s.log.Warn("cache lookup failed", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache product", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// Update обновляет товар. Менять запись может владелец бизнеса либо администратор.
func (s *ProductService) Update(ctx context.Context, user *models.User, id string, req models.DummyProduct) (int, error) {
	existing, err := s.repo.ReadProduct(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.checkOwner(ctx, user, existing.BusinessID); err != nil {
		return 0, err
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   req.Available,
		ProductType: req.ProductType,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
	}
	count, err := s.repo.UpdateProduct(ctx, product, id)
	if err != nil {
		return 0, err
	}

	s.invalidate(ctx, id)
	s.notify(user, rabbitmq.KeyProductUpdated, id)
	return count, nil
}

// Remove мягко удаляет товар. Удалять запись может владелец бизнеса либо администратор.
func (s *ProductService) Remove(ctx context.Context, user *models.User, id string) (int, error) {
	existing, err := s.repo.ReadProduct(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.checkOwner(ctx, user, existing.BusinessID); err != nil {
		return 0, err
	}

	count, err := s.repo.RemoveProduct(ctx, id)
	if err != nil {
		return 0, err
	}

	s.invalidate(ctx, id)
	s.notify(user, rabbitmq.KeyProductRemoved, id)
	return count, nil
}

func (s *ProductService) checkOwner(ctx context.Context, user *models.User, businessID string) error {
	business, err := s.repo.ReadBusiness(ctx, businessID)
	if err != nil {
		return err
	}
	if business.UserID == user.ID {
		return nil
	}
	if user.HasAnyRole(models.RoleAdmin, models.RoleSuperuser) {
		return nil
	}
	return fmt.Errorf("services.product.checkOwner: %w", apperr.ErrForbidden)
}

func (s *ProductService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Invalidate(ctx, "product:"+id); err != nil {
		s.log.Warn("failed to invalidate cache", sl.Err(err))
	}
	s.invalidateLists(ctx)
}

func (s *ProductService) invalidateLists(ctx context.Context) {
	if err := s.cache.InvalidateByPattern(ctx, "product:list:*"); err != nil {
		s.log.Warn("failed to invalidate list cache", sl.Err(err))
	}
}

func (s *ProductService) notify(user *models.User, operation, entityID string) {
	if s.notifier != nil {
		s.notifier.Notify(user.Phone, operation)
	}
	if s.publisher != nil {
		event := rabbitmq.Event{
			Actor:      user.Phone,
			Operation:  operation,
			EntityID:   entityID,
			OccurredAt: time.Now(),
		}
		if err := s.publisher.Publish(operation, event); err != nil {
			s.log.Warn("failed to publish event", sl.Err(err))
		}
	}
}
