package domain

// Customer is one loyalty-program member, keyed by phone number.
// CurrentPoints is the redeemable balance and never goes negative;
// TotalPoints is the lifetime earned total and never decreases.
type Customer struct {
	ID            string
	Name          string
	CurrentPoints int
	TotalPoints   int
}
