package borrower

import "context"

type Repository interface {
	Create(ctx context.Context, b *Borrower) error
	GetByBorrowerID(ctx context.Context, borrowerID string) (*Borrower, error)
	Save(ctx context.Context, b *Borrower) error
	List(ctx context.Context) ([]Borrower, error)
}
