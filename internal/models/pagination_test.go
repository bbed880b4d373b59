package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: 10},
		{name: "negative values", page: -3, limit: -5, wantPage: 1, wantLimit: 10},
		{name: "valid values kept", page: 2, limit: 25, wantPage: 2, wantLimit: 25},
		{name: "limit capped", page: 1, limit: 500, wantPage: 1, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Page: tt.page, Limit: tt.limit}
			p.Normalize()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	p := Pagination{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		limit        int
		wantLastPage int
	}{
		{name: "exact pages", total: 20, limit: 10, wantLastPage: 2},
		{name: "partial last page", total: 21, limit: 10, wantLastPage: 3},
		{name: "empty result", total: 0, limit: 10, wantLastPage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPageMeta(tt.total, Pagination{Page: 1, Limit: tt.limit})
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.wantLastPage, meta.LastPage)
		})
	}
}
