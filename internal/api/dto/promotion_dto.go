package dto

import "time"

// PromotionCreateRequest payload.
type PromotionCreateRequest struct {
	EmployeeID  int64  `json:"employee_id"`
	NewPosition string `json:"new_position"`
}

// PromotionResponse renders a promotion record.
type PromotionResponse struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employee_id"`
	PromotionDate time.Time `json:"promotion_date"`
	NewPosition   string    `json:"new_position"`
}
