package loan

import (
	"time"

	"loanbook-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
)

type CreateLoanInput struct {
	BorrowerID string
	RateID     string
	Principal  decimal.Decimal
	Type       loan.Type
	StartDate  time.Time
	EndDate    time.Time
	TermMonths int
	// Explicit overrides; a resolved rate + known principal/term beats both.
	RateSnapshot   *decimal.Decimal
	CurrentBalance *decimal.Decimal
	Status         loan.Status
}

// UpdateLoanInput is a partial patch: nil means "leave as is".
type UpdateLoanInput struct {
	RateID         *string
	Principal      *decimal.Decimal
	Type           *loan.Type
	StartDate      *time.Time
	EndDate        *time.Time
	TermMonths     *int
	RateSnapshot   *decimal.Decimal
	CurrentBalance *decimal.Decimal
	Status         *loan.Status
}

// Recalculates reports whether the patch touches a balance-affecting field.
func (in UpdateLoanInput) Recalculates() bool {
	return in.RateID != nil || in.Principal != nil || in.TermMonths != nil
}

// LoanDTO is the wire shape. Money travels as decimal strings, never floats.
type LoanDTO struct {
	LoanID         string    `json:"loan_id"`
	BorrowerID     string    `json:"borrower_id"`
	RateID         string    `json:"rate_id,omitempty"`
	Principal      string    `json:"principal"`
	Type           string    `json:"loan_type"`
	StartDate      string    `json:"start_date,omitempty"`
	EndDate        string    `json:"end_date,omitempty"`
	TermMonths     int       `json:"term_months"`
	RateSnapshot   string    `json:"rate_snapshot"`
	CurrentBalance string    `json:"current_balance"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toDTO(l *loan.Loan) *LoanDTO {
	dto := &LoanDTO{
		LoanID:         l.LoanID,
		BorrowerID:     l.BorrowerID,
		RateID:         l.RateID,
		Principal:      l.Principal.StringFixed(2),
		Type:           string(l.Type),
		TermMonths:     l.TermMonths,
		RateSnapshot:   l.RateSnapshot.String(),
		CurrentBalance: l.CurrentBalance.StringFixed(2),
		Status:         string(l.Status),
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
	if !l.StartDate.IsZero() {
		dto.StartDate = l.StartDate.Format("2006-01-02")
	}
	if !l.EndDate.IsZero() {
		dto.EndDate = l.EndDate.Format("2006-01-02")
	}
	return dto
}
