package model

// OrderPlacedPayload is enqueued after a successful checkout
type OrderPlacedPayload struct {
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	ItemCount    int    `json:"item_count"`
	Total        string `json:"total"`
	Message      string `json:"message"`
	HandoffURL   string `json:"handoff_url"`
}
