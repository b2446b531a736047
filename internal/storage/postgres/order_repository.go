package postgres

import (
	"context"
	"fmt"

	"github.com/danhtrongit/laca-pos/internal/app"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepository serves the settled-order history. Orders are written only
// by SettlementRepository.
type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) ListOrders(ctx context.Context, customerID string, limit, offset int) ([]app.OrderWithCustomer, int, error) {
	const countQuery = `
SELECT COUNT(*)
FROM orders
WHERE $1 = '' OR customer_id = $1`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, customerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	const query = `
SELECT o.id, COALESCE(o.customer_id, ''), o.total_amount, o.discount_amount,
       o.points_used, o.points_earned, o.final_amount, o.created_at,
       COALESCE(c.name, '')
FROM orders o
LEFT JOIN customers c ON c.id = o.customer_id
WHERE $1 = '' OR o.customer_id = $1
ORDER BY o.created_at DESC, o.id DESC
LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []app.OrderWithCustomer
	for rows.Next() {
		var o app.OrderWithCustomer
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.TotalAmount, &o.DiscountAmount,
			&o.PointsUsed, &o.PointsEarned, &o.FinalAmount, &o.CreatedAt,
			&o.CustomerName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return out, total, nil
}
