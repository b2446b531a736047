package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SettingRepository reads named settings. Values are stored as text; GetRate
// reports absent for values that do not parse as a positive integer.
type SettingRepository struct {
	pool *pgxpool.Pool
}

func NewSettingRepository(pool *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{pool: pool}
}

func (r *SettingRepository) GetRate(ctx context.Context, key string) (int64, bool, error) {
	const query = `SELECT value FROM settings WHERE key = $1`

	var raw string
	err := r.queryRow(ctx, query, key).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get setting %s: %w", key, err)
	}

	rate, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || rate <= 0 {
		return 0, false, nil
	}
	return rate, true, nil
}

// SetRate upserts a setting value.
func (r *SettingRepository) SetRate(ctx context.Context, key string, value int64) error {
	const stmt = `
INSERT INTO settings (key, value)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	if _, err := r.pool.Exec(ctx, stmt, key, strconv.FormatInt(value, 10)); err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

func (r *SettingRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
