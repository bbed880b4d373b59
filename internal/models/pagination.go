package models

// Pagination описывает параметры постраничной выборки.
// Значения по умолчанию: page=1, limit=10.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize приводит параметры к допустимым значениям.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset возвращает смещение для SQL-запроса.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta — метаданные постраничного ответа.
type PageMeta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	LastPage int `json:"last_page"`
}

// NewPageMeta считает метаданные по общему числу записей и параметрам выборки.
func NewPageMeta(total int, p Pagination) PageMeta {
	lastPage := (total + p.Limit - 1) / p.Limit
	return PageMeta{
		Total:    total,
		Page:     p.Page,
		LastPage: lastPage,
	}
}
