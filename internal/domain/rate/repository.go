package rate

import "context"

type Repository interface {
	Create(ctx context.Context, r *InterestRate) error
	GetByRateID(ctx context.Context, rateID string) (*InterestRate, error)
	Save(ctx context.Context, r *InterestRate) error
	List(ctx context.Context) ([]InterestRate, error)
}
