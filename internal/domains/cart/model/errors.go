package model

import "errors"

var (
	ErrEmptyCart  = errors.New("cart is empty")
	ErrOutOfStock = errors.New("book is out of stock")
)
