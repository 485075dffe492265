package borrowermock

import (
	"context"

	domain "loanbook-backend/internal/domain/borrower"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying borrower.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, b *domain.Borrower) error
	GetByBorrowerIDFn func(ctx context.Context, borrowerID string) (*domain.Borrower, error)
	SaveFn            func(ctx context.Context, b *domain.Borrower) error
	ListFn            func(ctx context.Context) ([]domain.Borrower, error)
}

func (m *Repo) Create(ctx context.Context, b *domain.Borrower) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBorrowerID(ctx context.Context, borrowerID string) (*domain.Borrower, error) {
	if m.GetByBorrowerIDFn != nil {
		return m.GetByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, b *domain.Borrower) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Borrower, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
