package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/rate"
	"loanbook-backend/internal/domain/uow"
	"loanbook-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Usecase is the loan side of the ledger engine: it owns balance derivation at
// creation and keeps the balance consistent across term edits. Collaborators
// arrive through the constructor; there are no package-level repositories.
type Usecase struct {
	loans loan.Repository
	rates rate.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(loans loan.Repository, rates rate.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, rates: rates, uow: tx}
}

// resolveRate looks up the live rate percent. A missing rate is not an error:
// the caller proceeds without a snapshot (zero-interest fallback). Only real
// storage failures propagate.
func (u *Usecase) resolveRate(ctx context.Context, rates rate.Repository, rateID string) (decimal.Decimal, bool, error) {
	r, err := rates.GetByRateID(ctx, rateID)
	switch {
	case err == nil:
		return r.RatePercent, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, rate.ErrNotFound):
		return decimal.Zero, false, nil
	default:
		return decimal.Zero, false, err
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.BorrowerID == "" || len(in.BorrowerID) != 32 {
		return nil, errors.New("invalid borrower id")
	}
	if !in.Principal.IsPositive() {
		return nil, errors.New("principal must be positive")
	}
	if in.TermMonths <= 0 {
		return nil, errors.New("term_months must be positive")
	}
	if in.Type == "" {
		in.Type = loan.TypeOther
	}
	if !in.Type.Valid() {
		return nil, loan.ErrInvalidType
	}
	if in.Status == "" {
		in.Status = loan.StatusPending
	}
	if !in.Status.Valid() {
		return nil, loan.ErrInvalidStatus
	}

	l := &loan.Loan{
		LoanID:          id.NewID32(),
		BorrowerID:      in.BorrowerID,
		RateID:          in.RateID,
		Principal:       in.Principal,
		Type:            in.Type,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		TermMonths:      in.TermMonths,
		Status:          in.Status,
		StatusUpdatedAt: time.Now().UTC(),
	}
	if in.RateSnapshot != nil {
		l.RateSnapshot = *in.RateSnapshot
	}

	rateResolved := false
	if in.RateID != "" {
		percent, ok, err := u.resolveRate(ctx, u.rates, in.RateID)
		if err != nil {
			return nil, fmt.Errorf("resolve rate %s: %w", in.RateID, err)
		}
		if ok {
			l.RateSnapshot = percent
			rateResolved = true
		}
	}

	switch {
	case rateResolved:
		// resolved rate + known principal/term: the computed balance wins
		// over anything the caller supplied
		l.CurrentBalance = ComputeBalance(l.Principal, l.RateSnapshot, l.TermMonths)
	case in.CurrentBalance != nil:
		l.CurrentBalance = *in.CurrentBalance
	default:
		// no rate resolved: the loan still gets created, owing exactly the
		// principal
		l.CurrentBalance = l.Principal
	}

	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context, borrowerID string) ([]LoanDTO, error) {
	var (
		ls  []loan.Loan
		err error
	)
	if borrowerID != "" {
		ls, err = u.loans.ListByBorrowerID(ctx, borrowerID)
	} else {
		ls, err = u.loans.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

// Update applies a partial patch. The whole read-modify-write runs under a
// row-locked transaction: editing principal, term, or rate recomputes the
// balance from the loan as it exists at lock time, so two concurrent edits
// cannot derive from a stale read.
func (u *Usecase) Update(ctx context.Context, loanID string, in UpdateLoanInput) (*LoanDTO, error) {
	if in.Principal != nil && !in.Principal.IsPositive() {
		return nil, errors.New("principal must be positive")
	}
	if in.TermMonths != nil && *in.TermMonths <= 0 {
		return nil, errors.New("term_months must be positive")
	}
	if in.Type != nil && !in.Type.Valid() {
		return nil, loan.ErrInvalidType
	}
	if in.Status != nil && !in.Status.Valid() {
		return nil, loan.ErrInvalidStatus
	}

	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if in.Principal != nil {
			l.Principal = *in.Principal
		}
		if in.Type != nil {
			l.Type = *in.Type
		}
		if in.StartDate != nil {
			l.StartDate = *in.StartDate
		}
		if in.EndDate != nil {
			l.EndDate = *in.EndDate
		}
		if in.TermMonths != nil {
			l.TermMonths = *in.TermMonths
		}
		if in.Status != nil && *in.Status != l.Status {
			l.Status = *in.Status
			l.StatusUpdatedAt = time.Now().UTC()
		}
		if in.RateSnapshot != nil {
			l.RateSnapshot = *in.RateSnapshot
		}
		if in.RateID != nil {
			l.RateID = *in.RateID
			percent, ok, err := u.resolveRate(ctx, r.Rates, *in.RateID)
			if err != nil {
				return fmt.Errorf("resolve rate %s: %w", *in.RateID, err)
			}
			// an id that doesn't resolve leaves the prior snapshot in place
			if ok {
				l.RateSnapshot = percent
			}
		}

		switch {
		case in.CurrentBalance != nil:
			// explicit balance always wins over recomputation
			l.CurrentBalance = *in.CurrentBalance
		case in.Recalculates():
			l.CurrentBalance = ComputeBalance(l.Principal, l.RateSnapshot, l.TermMonths)
		}

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
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

// UpdateStatus is the administrative override: any valid status, no balance
// side effects.
func (u *Usecase) UpdateStatus(ctx context.Context, loanID string, status loan.Status) (*LoanDTO, error) {
	if !status.Valid() {
		return nil, loan.ErrInvalidStatus
	}
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Status != status {
			l.Status = status
			l.StatusUpdatedAt = time.Now().UTC()
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}
		dto = toDTO(l)
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
