// Package services содержит бизнес-логику для управления бизнесами каталога,
// включая кеширование списков и проверку владельца при изменениях.
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

// Время жизни кеша каталога.
const cacheTTL = time.Hour

// BusinessRepository определяет методы для работы с бизнесами в хранилище.
type BusinessRepository interface {
	// CreateBusiness добавляет новый бизнес и возвращает его ID.
	CreateBusiness(ctx context.Context, b models.Business) (string, error)
	// ReadBusiness возвращает бизнес по ID.
	ReadBusiness(ctx context.Context, id string) (*models.Business, error)
	// ListBusiness возвращает страницу бизнесов и общее число записей.
	ListBusiness(ctx context.Context, limit, offset int) ([]*models.Business, int, error)
	// UpdateBusiness обновляет данные бизнеса по ID.
	UpdateBusiness(ctx context.Context, b models.Business, id string) (int, error)
	// RemoveBusiness мягко удаляет бизнес по ID.
	RemoveBusiness(ctx context.Context, id string) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значения из кеша по ключам.
	Invalidate(ctx context.Context, keys ...string) error
	// InvalidateByPattern удаляет значения по шаблону ключа.
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

// ListResult — страница бизнесов с метаданными.
type ListResult struct {
	Data []*models.Business `json:"data"`
	Meta models.PageMeta    `json:"meta"`
}

// BusinessService реализует бизнес-логику работы с бизнесами, включая кеширование.
type BusinessService struct {
	repo      BusinessRepository
	cache     Cache
	notifier  Notifier
	publisher EventPublisher
	log       *slog.Logger
}

// NewBusinessService создает новый экземпляр BusinessService.
func NewBusinessService(repo BusinessRepository, cache Cache, notifier Notifier,
	publisher EventPublisher, log *slog.Logger) *BusinessService {
	return &BusinessService{
		repo:      repo,
		cache:     cache,
		notifier:  notifier,
		publisher: publisher,
		log:       log,
	}
}

// Create создает новый бизнес, принадлежащий пользователю, и возвращает его ID.
func (s *BusinessService) Create(ctx context.Context, user *models.User, req models.DummyBusiness) (string, error) {
	business := models.Business{
		BusinessModel:  req.BusinessModel,
		BusinessType:   req.BusinessType,
		Name:           req.Name,
		Slogan:         req.Slogan,
		Description:    req.Description,
		Address:        req.Address,
		ProfileImage:   req.ProfileImage,
		CoverImages:    req.CoverImages,
		DateEvent:      req.DateEvent,
		DateStartEvent: req.DateStartEvent,
		DateEndEvent:   req.DateEndEvent,
		UserID:         user.ID,
		CategoryID:     req.CategoryID,
	}

	id, err := s.repo.CreateBusiness(ctx, business)
	if err != nil {
		return "", err
	}
	s.log.Info("created new business", slog.String("id", id))

	s.invalidateLists(ctx)
	s.notify(user, rabbitmq.KeyBusinessCreated, id)
	return id, nil
}

// List возвращает страницу бизнесов, используя кеш или репозиторий.
func (s *BusinessService) List(ctx context.Context, p models.Pagination) (*ListResult, error) {
	p.Normalize()
	cacheKey := fmt.Sprintf("business:list:%d:%d", p.Page, p.Limit)

	var cached ListResult
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("cache lookup failed", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	data, total, err := s.repo.ListBusiness(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, err
	}
	result := &ListResult{
		Data: data,
		Meta: models.NewPageMeta(total, p),
	}
	if err := s.cache.Set(ctx, cacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache business list", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// Read возвращает бизнес по ID, используя кеш или репозиторий.
func (s *BusinessService) Read(ctx context.Context, id string) (*models.Business, error) {
	var result *models.Business
	cacheKey := "business:" + id
	found, err := s.cache.Get(ctx, cacheKey, &result)
	if err != nil {
		s.log.Warn("cache lookup failed", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadBusiness(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache business", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// Update обновляет бизнес. Менять запись может владелец либо администратор.
func (s *BusinessService) Update(ctx context.Context, user *models.User, id string, req models.DummyBusiness) (int, error) {
	if err := s.checkOwner(ctx, user, id); err != nil {
		return 0, err
	}

	business := models.Business{
		BusinessModel:  req.BusinessModel,
		BusinessType:   req.BusinessType,
		Name:           req.Name,
		Slogan:         req.Slogan,
		Description:    req.Description,
		Address:        req.Address,
		ProfileImage:   req.ProfileImage,
		CoverImages:    req.CoverImages,
		DateEvent:      req.DateEvent,
		DateStartEvent: req.DateStartEvent,
		DateEndEvent:   req.DateEndEvent,
		CategoryID:     req.CategoryID,
	}
	count, err := s.repo.UpdateBusiness(ctx, business, id)
	if err != nil {
		return 0, err
	}

	s.invalidate(ctx, id)
	s.notify(user, rabbitmq.KeyBusinessUpdated, id)
	return count, nil
}

// Remove мягко удаляет бизнес. Удалять запись может владелец либо администратор.
func (s *BusinessService) Remove(ctx context.Context, user *models.User, id string) (int, error) {
	if err := s.checkOwner(ctx, user, id); err != nil {
		return 0, err
	}

	count, err := s.repo.RemoveBusiness(ctx, id)
	if err != nil {
		return 0, err
	}

	s.invalidate(ctx, id)
	s.notify(user, rabbitmq.KeyBusinessRemoved, id)
	return count, nil
}

// checkOwner разрешает изменение владельцу записи и пользователям
// с ролью ADMIN или SUPERUSER.
func (s *BusinessService) checkOwner(ctx context.Context, user *models.User, id string) error {
	business, err := s.repo.ReadBusiness(ctx, id)
	if err != nil {
		return err
	}
	if business.UserID == user.ID {
		return nil
	}
	if user.HasAnyRole(models.RoleAdmin, models.RoleSuperuser) {
		return nil
	}
	return fmt.Errorf("services.business.checkOwner: %w", apperr.ErrForbidden)
}

func (s *BusinessService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Invalidate(ctx, "business:"+id); err != nil {
		s.log.Warn("failed to invalidate cache", sl.Err(err))
	}
	s.invalidateLists(ctx)
}

func (s *BusinessService) invalidateLists(ctx context.Context) {
	if err := s.cache.InvalidateByPattern(ctx, "business:list:*"); err != nil {
		s.log.Warn("failed to invalidate list cache", sl.Err(err))
	}
}

func (s *BusinessService) notify(user *models.User, operation, entityID string) {
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
