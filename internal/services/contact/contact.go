// Package services содержит бизнес-логику для управления контактами бизнеса.
// У каждого бизнеса ровно одна запись контактов; менять её может владелец
// бизнеса либо администратор.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/business-catalog/internal/apperr"
	"github.com/magabrotheeeer/business-catalog/internal/models"
)

// ContactRepository определяет методы для работы с контактами в хранилище.
type ContactRepository interface {
	CreateContact(ctx context.Context, c models.Contact) (string, error)
	ReadContactByBusiness(ctx context.Context, businessID string) (*models.Contact, error)
	UpdateContact(ctx context.Context, c models.Contact, businessID string) (int, error)
	// ReadBusiness нужен для проверки владельца.
	ReadBusiness(ctx context.Context, id string) (*models.Business, error)
}

// ContactService реализует бизнес-логику работы с контактами.
type ContactService struct {
	repo ContactRepository
	log  *slog.Logger
}

// NewContactService создает новый экземпляр ContactService.
func NewContactService(repo ContactRepository, log *slog.Logger) *ContactService {
	return &ContactService{
		repo: repo,
		log:  log,
	}
}

// Create создает контакты бизнеса и возвращает их ID.
func (s *ContactService) Create(ctx context.Context, user *models.User, req models.DummyContact) (string, error) {
	if err := s.checkOwner(ctx, user, req.BusinessID); err != nil {
		return "", err
	}
	contact := models.Contact{
		Phones:     req.Phones,
		URLs:       req.URLs,
		BusinessID: req.BusinessID,
	}
	id, err := s.repo.CreateContact(ctx, contact)
	if err != nil {
		return "", err
	}
	s.log.Info("created new contact", slog.String("id", id))
	return id, nil
}

// Read возвращает контакты бизнеса.
func (s *ContactService) Read(ctx context.Context, businessID string) (*models.Contact, error) {
	return s.repo.ReadContactByBusiness(ctx, businessID)
}

// Update обновляет контакты бизнеса и возвращает количество изменённых строк.
func (s *ContactService) Update(ctx context.Context, user *models.User, req models.DummyContact) (int, error) {
	if err := s.checkOwner(ctx, user, req.BusinessID); err != nil {
		return 0, err
	}
	contact := models.Contact{
		Phones: req.Phones,
		URLs:   req.URLs,
	}
	return s.repo.UpdateContact(ctx, contact, req.BusinessID)
}

func (s *ContactService) checkOwner(ctx context.Context, user *models.User, businessID string) error {
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
	return fmt.Errorf("services.contact.checkOwner: %w", apperr.ErrForbidden)
}
