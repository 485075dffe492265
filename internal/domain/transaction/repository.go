package transaction

import "context"

type Repository interface {
	// Create appends one ledger entry. There is deliberately no update or
	// delete: the ledger is append-only.
	Create(ctx context.Context, t *Transaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*Transaction, error)
	ListByLoanID(ctx context.Context, loanID string) ([]Transaction, error)
}
