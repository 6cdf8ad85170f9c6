package model

import (
	"github.com/shopspring/decimal"
)

// AddToCartRequest - POST /cart/items
type AddToCartRequest struct {
	BookID string `json:"book_id" binding:"required"`
}

// CartResponse is the cart with derived totals
type CartResponse struct {
	Items     []CartItem      `json:"items"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

func NewCartResponse(items []CartItem) *CartResponse {
	if items == nil {
		items = []CartItem{}
	}
	return &CartResponse{
		Items:     items,
		ItemCount: ItemCount(items),
		Total:     Total(items),
	}
}
