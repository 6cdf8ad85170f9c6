package model

import (
	"fmt"
	"time"

	cartModel "lumina-storefront/internal/domains/cart/model"

	"github.com/shopspring/decimal"
)

// Status of an order. Transitions are unrestricted, the admin sets any value.
type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Order is the record of a checkout. Items are a snapshot of the cart at
// checkout time and are never touched by later book edits.
type Order struct {
	ID           string               `json:"id"`
	Items        []cartModel.CartItem `json:"items"`
	Total        decimal.Decimal      `json:"total"`
	Status       Status               `json:"status"`
	CustomerName string               `json:"customer_name"`
	Date         time.Time            `json:"date"`
}

// CheckStored rejects rows that do not satisfy the order invariants
func (o *Order) CheckStored() error {
	if o.ID == "" {
		return fmt.Errorf("order has no id")
	}
	if !o.Status.IsValid() {
		return fmt.Errorf("order %s has unknown status %q", o.ID, o.Status)
	}
	if o.Total.IsNegative() {
		return fmt.Errorf("order %s has negative total", o.ID)
	}
	return nil
}

// ItemCount sums the quantities of the snapshot
func (o *Order) ItemCount() int {
	return cartModel.ItemCount(o.Items)
}

// Summary aggregates orders for the dashboard and the digest
type Summary struct {
	Count   int             `json:"count"`
	Pending int             `json:"pending"`
	Revenue decimal.Decimal `json:"revenue"` // gross, every status
}
