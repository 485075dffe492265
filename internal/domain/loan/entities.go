package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrInvalidStatus = errors.New("invalid loan status")
	ErrInvalidType   = errors.New("invalid loan type")
)

type Type string

const (
	TypePersonal  Type = "PERSONAL"
	TypeHome      Type = "HOME"
	TypeAuto      Type = "AUTO"
	TypeBusiness  Type = "BUSINESS"
	TypeEducation Type = "EDUCATION"
	TypeOther     Type = "OTHER"
)

func (t Type) Valid() bool {
	switch t {
	case TypePersonal, TypeHome, TypeAuto, TypeBusiness, TypeEducation, TypeOther:
		return true
	}
	return false
}

type Loan struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	LoanID     string `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id_active"`
	BorrowerID string `gorm:"column:borrower_id;type:char(32);not null;index:idx_loans_borrower_active"`
	// Public id of the live rate this loan was attached to; may be empty.
	RateID     string          `gorm:"column:rate_id;type:char(32)"`
	Principal  decimal.Decimal `gorm:"column:principal;type:decimal(15,2);not null"`
	Type       Type            `gorm:"column:loan_type;type:varchar(16);not null;default:'OTHER'"`
	StartDate  time.Time       `gorm:"column:start_date;type:date"`
	EndDate    time.Time       `gorm:"column:end_date;type:date"`
	TermMonths int             `gorm:"column:term_months;not null"`
	// Annual percent frozen at creation / last balance-affecting edit.
	// Decoupled from the live interest_rates row on purpose.
	RateSnapshot decimal.Decimal `gorm:"column:rate_snapshot;type:decimal(5,2);not null"`
	// Outstanding amount still owed. Invariant: never negative.
	CurrentBalance  decimal.Decimal `gorm:"column:current_balance;type:decimal(15,2);not null"`
	Status          Status          `gorm:"column:status;type:varchar(16);not null;default:'PENDING'"`
	StatusUpdatedAt time.Time       `gorm:"column:status_updated_at;autoCreateTime"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt       gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Loan) TableName() string { return "loans" }
