package domain

import "time"

// Order is one settled sale. Orders are append-only: once committed they are
// never updated or deleted. CustomerID is empty for walk-in sales.
// Monetary amounts are integer minor currency units.
type Order struct {
	ID             int64
	CustomerID     string
	TotalAmount    int64
	DiscountAmount int64
	PointsUsed     int
	PointsEarned   int
	FinalAmount    int64
	CreatedAt      time.Time
}
