package models

import "time"

// Типы позиций каталога: товар или услуга.
const (
	ProductTypeProduct = "product"
	ProductTypeService = "service"
)

// Product представляет товар или услугу бизнеса.
type Product struct {
	ID          string    `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Available   bool      `json:"available"`
	ProductType string    `json:"product_type"` // product либо service
	Image       string    `json:"image,omitempty"`
	BusinessID  string    `json:"business_id"`
	CategoryID  string    `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DummyProduct — входные данные для создания или обновления товара.
type DummyProduct struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Available   bool    `json:"available"`
	ProductType string  `json:"product_type" validate:"required,oneof=product service"`
	Image       string  `json:"image" validate:"omitempty,url"`
	BusinessID  string  `json:"business_id" validate:"required,uuid"`
	CategoryID  string  `json:"category_id" validate:"required,uuid"`
}
