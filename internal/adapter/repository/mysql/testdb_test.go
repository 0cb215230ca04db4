package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type loanSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:loan_id"`
	BorrowerID   uint64    `gorm:"column:borrower_id"`
	Amount       float64   `gorm:"column:amount"`
	InterestRate float64   `gorm:"column:interest_rate"`
	Tenure       int       `gorm:"column:tenure"`
	StartDate    time.Time `gorm:"column:start_date"`
	Status       string    `gorm:"type:text;column:status"` // ← no enum
}

func (loanSQLite) TableName() string { return "Loan" }

type approvalSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	ApprovalID   string    `gorm:"column:approval_id;uniqueIndex"`
	LoanID       uint64    `gorm:"column:loan_id;uniqueIndex"`
	StaffID      uint64    `gorm:"column:staff_id"`
	BranchID     uint64    `gorm:"column:branch_id"`
	ApprovalDate time.Time `gorm:"column:approval_date"`
}

func (approvalSQLite) TableName() string { return "LoanApproval" }

type repaymentSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:repayment_id"`
	LoanID     uint64    `gorm:"column:loan_id"`
	DueDate    time.Time `gorm:"column:due_date"`
	AmountDue  float64   `gorm:"column:amount_due"`
	AmountPaid float64   `gorm:"column:amount_paid"`
	Penalty    float64   `gorm:"column:penalty"`
	Status     string    `gorm:"type:text;column:status"`
}

func (repaymentSQLite) TableName() string { return "Repayment" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the MySQL domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &approvalSQLite{}, &repaymentSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
