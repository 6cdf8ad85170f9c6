package model

import (
	bookModel "lumina-storefront/internal/domains/book/model"

	"github.com/shopspring/decimal"
)

// CartItem holds a value copy of the book taken when it was first added
type CartItem struct {
	Book     bookModel.Book `json:"book"`
	Quantity int            `json:"quantity"`
}

// Subtotal is price x quantity
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Book.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// AddItem returns a new cart with book added. An existing line is
// incremented by one, otherwise a line with quantity 1 is appended.
// The input slice is never modified.
func AddItem(cart []CartItem, book bookModel.Book) []CartItem {
	next := Snapshot(cart)
	for i := range next {
		if next[i].Book.ID == book.ID {
			next[i].Quantity++
			return next
		}
	}
	return append(next, CartItem{Book: book, Quantity: 1})
}

// RemoveItem returns a new cart without the line for bookID.
// An absent id leaves the contents unchanged.
func RemoveItem(cart []CartItem, bookID string) []CartItem {
	next := make([]CartItem, 0, len(cart))
	for _, item := range cart {
		if item.Book.ID != bookID {
			next = append(next, item)
		}
	}
	return next
}

// Total is the sum of price x quantity, computed on demand
func Total(cart []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount is the sum of quantities
func ItemCount(cart []CartItem) int {
	n := 0
	for _, item := range cart {
		n += item.Quantity
	}
	return n
}

// Snapshot copies the cart so later edits cannot reach the copy
func Snapshot(cart []CartItem) []CartItem {
	out := make([]CartItem, len(cart))
	copy(out, cart)
	return out
}
