package models

import "time"

// Contact хранит контактные данные бизнеса: телефоны и ссылки.
// У каждого бизнеса ровно одна запись контактов.
type Contact struct {
	ID         string    `json:"contact_id"`
	Phones     []string  `json:"phones"`
	URLs       []string  `json:"urls"`
	BusinessID string    `json:"business_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DummyContact — входные данные для создания или обновления контактов.
type DummyContact struct {
	Phones     []string `json:"phones" validate:"required,min=1,dive,cubaphone"`
	URLs       []string `json:"urls" validate:"omitempty,dive,url"`
	BusinessID string   `json:"business_id" validate:"required,uuid"`
}
