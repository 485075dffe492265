package uow

import (
	"context"

	"loanbook-backend/internal/domain/borrower"
	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/rate"
	"loanbook-backend/internal/domain/transaction"
)

type Repos struct {
	Borrowers    borrower.Repository
	Rates        rate.Repository
	Loans        loan.Repository
	Transactions transaction.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
