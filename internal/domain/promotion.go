package domain

import "time"

// Promotion is a history record of a position change. The promotion date is
// assigned by the server at creation time.
type Promotion struct {
	ID            int64
	EmployeeID    int64
	PromotionDate time.Time
	NewPosition   string
}
