package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	loanDomain "loanbook-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no enums/engine specifics) ---
// Decimal columns become plain text; shopspring values round-trip as strings.
type loanSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id;autoIncrement"`
	LoanID          string         `gorm:"size:32;uniqueIndex;column:loan_id"`
	BorrowerID      string         `gorm:"size:32;index;column:borrower_id"`
	RateID          string         `gorm:"size:32;column:rate_id"`
	Principal       string         `gorm:"column:principal"`
	LoanType        string         `gorm:"column:loan_type"`
	StartDate       time.Time      `gorm:"column:start_date"`
	EndDate         time.Time      `gorm:"column:end_date"`
	TermMonths      int            `gorm:"column:term_months"`
	RateSnapshot    string         `gorm:"column:rate_snapshot"`
	CurrentBalance  string         `gorm:"column:current_balance"`
	Status          string         `gorm:"column:status"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

// openLoanTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schema.
func openLoanTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(t *testing.T, loanID, borrowerID string) *loanDomain.Loan {
	t.Helper()
	return &loanDomain.Loan{
		LoanID:          loanID,
		BorrowerID:      borrowerID,
		Principal:       mustDec(t, "1000000"),
		Type:            loanDomain.TypePersonal,
		TermMonths:      12,
		RateSnapshot:    mustDec(t, "10"),
		CurrentBalance:  mustDec(t, "1100000"),
		Status:          loanDomain.StatusPending,
		StatusUpdatedAt: time.Now().UTC(),
	}
}

func TestLoan_CreateAndGet(t *testing.T) {
	db := openLoanTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	in := makeLoan(t, "aaaa0000aaaa0000aaaa0000aaaa0000", "bbbb0000bbbb0000bbbb0000bbbb0000")
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if in.ID == 0 {
		t.Fatalf("auto ID not set")
	}

	got, err := repo.GetByLoanID(ctx, in.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.BorrowerID != in.BorrowerID || got.Status != loanDomain.StatusPending {
		t.Errorf("unexpected row: %+v", got)
	}
	if !got.CurrentBalance.Equal(mustDec(t, "1100000")) {
		t.Errorf("balance not preserved: got=%s", got.CurrentBalance)
	}
	if !got.RateSnapshot.Equal(mustDec(t, "10")) {
		t.Errorf("snapshot not preserved: got=%s", got.RateSnapshot)
	}
}

func TestLoan_NotFound(t *testing.T) {
	db := openLoanTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByLoanID(context.Background(), "ffff0000ffff0000ffff0000ffff0000")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLoan_SavePersistsBalanceAndStatus(t *testing.T) {
	db := openLoanTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	in := makeLoan(t, "aaaa0000aaaa0000aaaa0000aaaa0001", "bbbb0000bbbb0000bbbb0000bbbb0000")
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	in.CurrentBalance = mustDec(t, "0")
	in.Status = loanDomain.StatusCompleted
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, in.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if !got.CurrentBalance.IsZero() || got.Status != loanDomain.StatusCompleted {
		t.Errorf("save not persisted: balance=%s status=%s", got.CurrentBalance, got.Status)
	}
}

func TestLoan_ListByBorrowerID(t *testing.T) {
	db := openLoanTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	mine := "bbbb0000bbbb0000bbbb0000bbbb0001"
	other := "bbbb0000bbbb0000bbbb0000bbbb0002"
	for i, owner := range []string{mine, other, mine} {
		l := makeLoan(t, "aaaa0000aaaa0000aaaa0000aaaa000"+string(rune('2'+i)), owner)
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}

	got, err := repo.ListByBorrowerID(ctx, mine)
	if err != nil {
		t.Fatalf("ListByBorrowerID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
	// newest first
	if got[0].ID < got[1].ID {
		t.Errorf("not ordered newest first: %d then %d", got[0].ID, got[1].ID)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List len=%d, want 3", len(all))
	}
}

func TestLoan_GetForUpdateInsideTx(t *testing.T) {
	db := openLoanTestDB(t)
	ctx := context.Background()

	seed := makeLoan(t, "aaaa0000aaaa0000aaaa0000aaaa0009", "bbbb0000bbbb0000bbbb0000bbbb0000")
	if err := NewLoanRepository(db).Create(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		got, err := NewLoanRepository(tx).GetByLoanIDForUpdate(ctx, seed.LoanID)
		if err != nil {
			return err
		}
		if got.LoanID != seed.LoanID {
			t.Fatalf("unexpected loan: %+v", got)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}
}
