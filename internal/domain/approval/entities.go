package approval

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("approval not found")

// Table: LoanApproval — exactly one row per approved loan.
type Approval struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	ApprovalID   string    `gorm:"column:approval_id;type:char(32);not null;uniqueIndex:ux_loan_approval_approval_id" json:"approval_id"`
	LoanID       uint64    `gorm:"column:loan_id;not null;uniqueIndex:ux_loan_approval_loan" json:"loan_id"`
	StaffID      uint64    `gorm:"column:staff_id;not null" json:"staff_id"`
	BranchID     uint64    `gorm:"column:branch_id;not null" json:"branch_id"`
	ApprovalDate time.Time `gorm:"column:approval_date;type:date;not null" json:"approval_date"`
}

func (Approval) TableName() string { return "LoanApproval" }
