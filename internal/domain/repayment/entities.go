package repayment

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending Status = "Pending"
	StatusPartial Status = "Partial"
	StatusPaid    Status = "Paid"
)

// PenaltyRate is the flat surcharge applied to the outstanding balance of an
// overdue installment on every posting: 2%.
const PenaltyRate = 0.02

var (
	ErrNotFound      = errors.New("repayment record not found")
	ErrInvalidAmount = errors.New("valid payment amount is required")
)

// Repayment is one scheduled installment of an approved loan. Rows are
// created in bulk at approval time, one per month of tenure, and mutated
// only by payment posting. AmountPaid accumulates and never decreases.
type Repayment struct {
	ID         uint64    `gorm:"primaryKey;column:repayment_id" json:"repayment_id"`
	LoanID     uint64    `gorm:"column:loan_id;index" json:"loan_id"`
	DueDate    time.Time `gorm:"column:due_date;type:date" json:"due_date"`
	AmountDue  float64   `gorm:"column:amount_due;type:decimal(12,2)" json:"amount_due"`
	AmountPaid float64   `gorm:"column:amount_paid;type:decimal(12,2);default:0" json:"amount_paid"`
	Penalty    float64   `gorm:"column:penalty;type:decimal(12,2);default:0" json:"penalty"`
	Status     Status    `gorm:"column:status;type:enum('Pending','Partial','Paid');default:'Pending'" json:"status"`
}

func (Repayment) TableName() string { return "Repayment" }
