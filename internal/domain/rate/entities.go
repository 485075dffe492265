package rate

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("interest rate not found")

// InterestRate is a live, editable rate definition. Loans freeze a copy of
// RatePercent at attach time; editing a rate never touches existing loans.
type InterestRate struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	RateID      string          `gorm:"column:rate_id;type:char(32);not null;uniqueIndex:ux_rates_rate_id_active"`
	Name        string          `gorm:"column:name;size:128;not null"`
	RatePercent decimal.Decimal `gorm:"column:rate_percent;type:decimal(5,2);not null"`
	Active      bool            `gorm:"column:active;not null;default:true"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (InterestRate) TableName() string { return "interest_rates" }
