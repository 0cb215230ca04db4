package loan

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCompleted Status = "Completed"
)

var (
	// ErrNotFound covers both a missing loan and a loan no longer Pending;
	// the API treats both as 404 "not found or already processed".
	ErrNotFound = errors.New("loan not found or already processed")

	// ErrInvalidTerms means the stored principal/rate/tenure do not produce
	// a positive installment, so no schedule can be materialized.
	ErrInvalidTerms = errors.New("loan terms do not yield a valid installment")
)

type Loan struct {
	ID           uint64    `gorm:"primaryKey;column:loan_id" json:"loan_id"`
	BorrowerID   uint64    `gorm:"column:borrower_id;index" json:"borrower_id"`
	Amount       float64   `gorm:"column:amount;type:decimal(12,2)" json:"amount"`
	InterestRate float64   `gorm:"column:interest_rate;type:decimal(5,2)" json:"interest_rate"`
	Tenure       int       `gorm:"column:tenure" json:"tenure"`
	StartDate    time.Time `gorm:"column:start_date;type:date" json:"start_date"`
	Status       Status    `gorm:"column:status;type:enum('Pending','Approved','Rejected','Completed');default:'Pending'" json:"status"`
}

func (Loan) TableName() string { return "Loan" }
