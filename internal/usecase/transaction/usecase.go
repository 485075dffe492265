package transaction

import (
	"context"
	"errors"
	"time"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/transaction"
	"loanbook-backend/internal/domain/uow"
	"loanbook-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Usecase is the posting side of the ledger engine: one transaction in, one
// atomic balance mutation out. The loan write and the ledger insert commit
// together or not at all.
type Usecase struct {
	loans        loan.Repository
	transactions transaction.Repository
	uow          uow.UnitOfWork
}

func NewUsecase(loans loan.Repository, transactions transaction.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, transactions: transactions, uow: tx}
}

// Apply posts one ledger entry against a loan. Inside a single row-locked
// transaction it loads the loan, moves the balance, auto-completes on zero,
// and appends the Transaction row carrying the resulting balance.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*TransactionDTO, error) {
	if !in.Amount.IsPositive() {
		return nil, errors.New("amount must be positive")
	}
	if in.Type == "" {
		in.Type = transaction.TypeRepayment
	}
	if !in.Type.Valid() {
		return nil, transaction.ErrInvalidType
	}
	if in.PaymentDate.IsZero() {
		in.PaymentDate = time.Now().UTC()
	}

	var dto *TransactionDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		var newBalance decimal.Decimal
		if in.Type.Reducing() {
			newBalance = l.CurrentBalance.Sub(in.Amount)
			// repayments floor at zero, the balance never goes negative
			if newBalance.IsNegative() {
				newBalance = decimal.Zero
			}
		} else {
			newBalance = l.CurrentBalance.Add(in.Amount)
		}

		l.CurrentBalance = newBalance
		if newBalance.IsZero() && in.Type.Reducing() {
			// fully repaid. No terminal-state guard here: a zeroing repayment
			// completes even a DEFAULTED or REJECTED loan.
			l.Status = loan.StatusCompleted
			l.StatusUpdatedAt = time.Now().UTC()
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		t := &transaction.Transaction{
			TransactionID:    id.NewID32(),
			LoanID:           l.LoanID,
			BorrowerID:       l.BorrowerID,
			Type:             in.Type,
			Amount:           in.Amount,
			RemainingBalance: newBalance,
			TermNumber:       in.TermNumber,
			PaymentDate:      in.PaymentDate,
			Method:           in.Method,
			Note:             in.Note,
		}
		if err := r.Transactions.Create(ctx, t); err != nil {
			return err
		}
		dto = toDTO(t)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]TransactionDTO, error) {
	if _, err := u.loans.GetByLoanID(ctx, loanID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	ts, err := u.transactions.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	out := make([]TransactionDTO, 0, len(ts))
	for i := range ts {
		out = append(out, *toDTO(&ts[i]))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, transactionID string) (*TransactionDTO, error) {
	t, err := u.transactions.GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, transaction.ErrNotFound
		}
		return nil, err
	}
	return toDTO(t), nil
}
