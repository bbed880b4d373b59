package models

import "time"

// Category представляет категорию каталога, к которой привязываются
// бизнесы и товары.
type Category struct {
	ID        string    `json:"category_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DummyCategory — входные данные для создания категории.
type DummyCategory struct {
	Name string `json:"name" validate:"required,min=2,max=60"`
}
