package transaction

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound    = errors.New("transaction not found")
	ErrInvalidType = errors.New("invalid transaction type")
)

type Type string

const (
	TypeRepayment Type = "REPAYMENT"
	TypeLateFee   Type = "LATE_FEE"
	TypePenalty   Type = "PENALTY"
	TypeOther     Type = "OTHER"
)

func (t Type) Valid() bool {
	switch t {
	case TypeRepayment, TypeLateFee, TypePenalty, TypeOther:
		return true
	}
	return false
}

// Reducing reports whether the type lowers the loan balance. Fees and
// penalties accrue onto it instead.
func (t Type) Reducing() bool {
	return t != TypeLateFee && t != TypePenalty
}

// Transaction is one append-only ledger entry against a loan. Rows are never
// updated or deleted by the ledger engine.
type Transaction struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	TransactionID string `gorm:"column:transaction_id;type:char(32);not null;uniqueIndex:ux_transactions_transaction_id"`
	LoanID        string `gorm:"column:loan_id;type:char(32);not null;index:idx_transactions_loan"`
	// Copied from the loan at posting time, not joined live.
	BorrowerID  string          `gorm:"column:borrower_id;type:char(32);not null"`
	Type        Type            `gorm:"column:tx_type;type:varchar(16);not null;default:'REPAYMENT'"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(15,2);not null"`
	// Loan balance immediately after this entry was applied. A point-in-time
	// fact; agrees with loans.current_balance only until the next posting.
	RemainingBalance decimal.Decimal `gorm:"column:remaining_balance;type:decimal(15,2);not null"`
	TermNumber       int             `gorm:"column:term_number;not null;default:0"`
	PaymentDate      time.Time       `gorm:"column:payment_date;type:date;not null"`
	Method           string          `gorm:"column:method;size:64"`
	Note             string          `gorm:"column:note;type:text"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Transaction) TableName() string { return "transactions" }
