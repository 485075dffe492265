package ratemock

import (
	"context"

	domain "loanbook-backend/internal/domain/rate"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying rate.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, r *domain.InterestRate) error
	GetByRateIDFn func(ctx context.Context, rateID string) (*domain.InterestRate, error)
	SaveFn        func(ctx context.Context, r *domain.InterestRate) error
	ListFn        func(ctx context.Context) ([]domain.InterestRate, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.InterestRate) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRateID(ctx context.Context, rateID string) (*domain.InterestRate, error) {
	if m.GetByRateIDFn != nil {
		return m.GetByRateIDFn(ctx, rateID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, r *domain.InterestRate) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.InterestRate, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
