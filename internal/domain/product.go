package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	Stock       int             `json:"stock"`
	Images      []string        `json:"images"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Item snapshots the product for a cart or wishlist. The first image, if
// any, becomes the display image.
func (p Product) Item() Item {
	var image string
	if len(p.Images) > 0 {
		image = p.Images[0]
	}

	return Item{
		ID:              p.ID,
		Name:            p.Name,
		UnitPrice:       p.Price,
		DiscountPercent: p.Discount,
		ImageRef:        image,
	}
}

type ProductSort string

const (
	SortPriceAsc   ProductSort = "price_asc"
	SortPriceDesc  ProductSort = "price_desc"
	SortRatingAsc  ProductSort = "rating_asc"
	SortRatingDesc ProductSort = "rating_desc"
)

type ProductFilters struct {
	Category string
	Brand    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     ProductSort
	Page     int
	Limit    int
}

type ProductPage struct {
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
}
