package app

import (
	"context"

	"github.com/danhtrongit/laca-pos/internal/domain"
)

// OrderWithCustomer is one history row with the customer's display name
// joined in; CustomerName is empty for walk-in sales.
type OrderWithCustomer struct {
	domain.Order
	CustomerName string
}

type OrderRepository interface {
	ListOrders(ctx context.Context, customerID string, limit, offset int) ([]OrderWithCustomer, int, error)
}

type OrderService struct {
	repo OrderRepository
}

func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type ListOrdersInput struct {
	Page       int
	Limit      int
	CustomerID string // optional filter
}

type ListOrdersResult struct {
	Total      int
	TotalPages int
	Page       int
	Orders     []OrderWithCustomer
}

// ListOrders returns settled orders newest first, paginated.
func (s *OrderService) ListOrders(ctx context.Context, in ListOrdersInput) (ListOrdersResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	orders, total, err := s.repo.ListOrders(ctx, in.CustomerID, limit, (page-1)*limit)
	if err != nil {
		return ListOrdersResult{}, err
	}

	totalPages := (total + limit - 1) / limit
	return ListOrdersResult{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		Orders:     orders,
	}, nil
}
