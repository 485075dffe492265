package transaction

import (
	"time"

	"loanbook-backend/internal/domain/transaction"

	"github.com/shopspring/decimal"
)

type ApplyInput struct {
	LoanID string
	// Empty type is treated as a plain repayment.
	Type        transaction.Type
	Amount      decimal.Decimal
	PaymentDate time.Time
	TermNumber  int
	Method      string
	Note        string
}

type TransactionDTO struct {
	TransactionID    string    `json:"transaction_id"`
	LoanID           string    `json:"loan_id"`
	BorrowerID       string    `json:"borrower_id"`
	Type             string    `json:"tx_type"`
	Amount           string    `json:"amount"`
	RemainingBalance string    `json:"remaining_balance"`
	TermNumber       int       `json:"term_number"`
	PaymentDate      string    `json:"payment_date"`
	Method           string    `json:"method,omitempty"`
	Note             string    `json:"note,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func toDTO(t *transaction.Transaction) *TransactionDTO {
	return &TransactionDTO{
		TransactionID:    t.TransactionID,
		LoanID:           t.LoanID,
		BorrowerID:       t.BorrowerID,
		Type:             string(t.Type),
		Amount:           t.Amount.StringFixed(2),
		RemainingBalance: t.RemainingBalance.StringFixed(2),
		TermNumber:       t.TermNumber,
		PaymentDate:      t.PaymentDate.Format("2006-01-02"),
		Method:           t.Method,
		Note:             t.Note,
		CreatedAt:        t.CreatedAt,
	}
}
