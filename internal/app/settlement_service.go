package app

import (
	"context"

	"github.com/danhtrongit/laca-pos/internal/clock"
	"github.com/danhtrongit/laca-pos/internal/domain"
)

// SettlementRepository is the transactional storage contract the settlement
// engine mutates. All methods called inside the WithTx closure run in the
// same transaction; GetCustomerForUpdate takes a row lock held until the
// transaction commits or aborts.
type SettlementRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetCustomerForUpdate(ctx context.Context, id string) (domain.Customer, error)
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	CreateOrder(ctx context.Context, order domain.Order) (int64, error)
}

// RateProvider exposes named conversion-rate settings. A false second return
// means the key is absent (or not usable as a rate) and the caller should
// fall back to its default.
type RateProvider interface {
	GetRate(ctx context.Context, key string) (int64, bool, error)
}

type SettlementService struct {
	repo  SettlementRepository
	rates RateProvider
	clock clock.Clock
}

func NewSettlementService(repo SettlementRepository, rates RateProvider, clk clock.Clock) *SettlementService {
	return &SettlementService{
		repo:  repo,
		rates: rates,
		clock: clk,
	}
}

type SettleInput struct {
	CustomerID     string // empty for walk-in sales
	TotalAmount    int64
	DiscountAmount int64
	PointsUsed     int
	FinalAmount    int64
}

type SettleResult struct {
	Order    domain.Order
	Customer *domain.Customer // nil for walk-in sales
}

// Settle finalizes one sale: redeems PointsUsed from the customer's balance,
// credits floor(FinalAmount/rate) newly earned points, and records the order.
// The customer mutation and the order insert commit or abort together; the
// customer row stays locked for the duration, so settlements for the same
// customer serialize while other customers proceed in parallel.
//
// Settle is not idempotent: a retry after a commit that the caller never saw
// settles the sale twice. Callers that retry must deduplicate upstream.
func (s *SettlementService) Settle(ctx context.Context, in SettleInput) (SettleResult, error) {
	if in.FinalAmount < 0 {
		return SettleResult{}, domain.ErrInvalidAmount
	}

	var result SettleResult

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()

		rate := domain.DefaultMoneyToPointRate
		if v, ok, err := s.rates.GetRate(txCtx, domain.SettingMoneyToPointRate); err != nil {
			return err
		} else if ok && v > 0 {
			rate = v
		}

		pointsEarned := 0
		var customer *domain.Customer

		if in.CustomerID != "" {
			c, err := s.repo.GetCustomerForUpdate(txCtx, in.CustomerID)
			if err != nil {
				return err
			}

			if in.PointsUsed > 0 {
				if c.CurrentPoints < in.PointsUsed {
					return domain.ErrInsufficientPoints
				}
				c.CurrentPoints -= in.PointsUsed
			}

			pointsEarned = int(in.FinalAmount / rate)
			c.CurrentPoints += pointsEarned
			c.TotalPoints += pointsEarned

			if err := s.repo.SaveCustomer(txCtx, c); err != nil {
				return err
			}
			customer = &c
		}

		order := domain.Order{
			CustomerID:     in.CustomerID,
			TotalAmount:    in.TotalAmount,
			DiscountAmount: in.DiscountAmount,
			PointsUsed:     in.PointsUsed,
			PointsEarned:   pointsEarned,
			FinalAmount:    in.FinalAmount,
			CreatedAt:      now,
		}

		id, err := s.repo.CreateOrder(txCtx, order)
		if err != nil {
			return err
		}
		order.ID = id

		result = SettleResult{Order: order, Customer: customer}
		return nil
	})
	if err != nil {
		return SettleResult{}, err
	}
	return result, nil
}
