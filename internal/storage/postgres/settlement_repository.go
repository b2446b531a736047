package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danhtrongit/laca-pos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettlementRepository performs the customer and order writes of one
// settlement inside a shared transaction.
type SettlementRepository struct {
	pool *pgxpool.Pool
}

func NewSettlementRepository(pool *pgxpool.Pool) *SettlementRepository {
	return &SettlementRepository{pool: pool}
}

func (r *SettlementRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// GetCustomerForUpdate locks the customer row for the rest of the enclosing
// transaction. Concurrent settlements for the same customer block here.
func (r *SettlementRepository) GetCustomerForUpdate(ctx context.Context, id string) (domain.Customer, error) {
	const query = `
SELECT id, COALESCE(name, ''), current_points, total_points
FROM customers
WHERE id = $1
FOR UPDATE`

	var c domain.Customer
	err := r.queryRow(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.CurrentPoints, &c.TotalPoints)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}
		return domain.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *SettlementRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	const stmt = `
UPDATE customers
SET current_points = $2, total_points = $3
WHERE id = $1`

	tag, err := r.exec(ctx, stmt, customer.ID, customer.CurrentPoints, customer.TotalPoints)
	if err != nil {
		return fmt.Errorf("save customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// CreateOrder inserts the order row and returns the assigned id.
func (r *SettlementRepository) CreateOrder(ctx context.Context, order domain.Order) (int64, error) {
	const stmt = `
INSERT INTO orders (customer_id, total_amount, discount_amount, points_used, points_earned, final_amount, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	customerID := sql.NullString{String: order.CustomerID, Valid: order.CustomerID != ""}

	var id int64
	err := r.queryRow(ctx, stmt,
		customerID,
		order.TotalAmount,
		order.DiscountAmount,
		order.PointsUsed,
		order.PointsEarned,
		order.FinalAmount,
		order.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}
	return id, nil
}

func (r *SettlementRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *SettlementRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
