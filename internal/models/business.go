package models

import "time"

// Модели бизнеса: обычный бизнес или разовое событие.
const (
	BusinessModelBusiness = "business"
	BusinessModelEvent    = "event"
)

// Business представляет бизнес или событие, зарегистрированное пользователем.
type Business struct {
	ID             string     `json:"business_id"`
	BusinessModel  string     `json:"business_model"` // business либо event
	BusinessType   string     `json:"business_type"`
	Name           string     `json:"name"`
	Slogan         string     `json:"slogan,omitempty"`
	Description    string     `json:"description,omitempty"`
	Address        string     `json:"address"`
	ProfileImage   string     `json:"profile_image"`
	CoverImages    []string   `json:"cover_images"`
	DateEvent      *time.Time `json:"date_event,omitempty"`
	DateStartEvent *time.Time `json:"date_start_event,omitempty"`
	DateEndEvent   *time.Time `json:"date_end_event,omitempty"`
	UserID         string     `json:"user_id"`
	CategoryID     string     `json:"category_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// DummyBusiness — входные данные для создания или обновления бизнеса.
type DummyBusiness struct {
	BusinessModel  string     `json:"business_model" validate:"required,oneof=business event"`
	BusinessType   string     `json:"business_type" validate:"required"`
	Name           string     `json:"name" validate:"required,min=2,max=100"`
	Slogan         string     `json:"slogan" validate:"omitempty,max=150"`
	Description    string     `json:"description" validate:"omitempty"`
	Address        string     `json:"address" validate:"required"`
	ProfileImage   string     `json:"profile_image" validate:"required,url"`
	CoverImages    []string   `json:"cover_images" validate:"omitempty,dive,url"`
	DateEvent      *time.Time `json:"date_event" validate:"omitempty"`
	DateStartEvent *time.Time `json:"date_start_event" validate:"omitempty"`
	DateEndEvent   *time.Time `json:"date_end_event" validate:"omitempty"`
	CategoryID     string     `json:"category_id" validate:"required,uuid"`
}
