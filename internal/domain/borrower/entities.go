package borrower

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("borrower not found")

type Borrower struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	BorrowerID string         `gorm:"column:borrower_id;type:char(32);not null;uniqueIndex:ux_borrowers_borrower_id_active"`
	FullName   string         `gorm:"column:full_name;size:255;not null"`
	Phone      string         `gorm:"column:phone;size:32"`
	Email      string         `gorm:"column:email;size:255"`
	Address    string         `gorm:"column:address;type:text"`
	NationalID string         `gorm:"column:national_id;size:64"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Borrower) TableName() string { return "borrowers" }
