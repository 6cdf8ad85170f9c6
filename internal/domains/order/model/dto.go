package model

// UpdateStatusRequest - PATCH /admin/orders/:id/status
type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}
