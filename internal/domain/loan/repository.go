package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate reads the loan under a row lock (SELECT ... FOR
	// UPDATE). Only meaningful inside a transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	ListByBorrowerID(ctx context.Context, borrowerID string) ([]Loan, error)
	List(ctx context.Context) ([]Loan, error)
}
