// Package report defines the read models behind the analytics endpoints.
// These are plain SQL reports; nothing here participates in the approval or
// repayment invariants.
package report

import "context"

type PortfolioSummary struct {
	TotalLoans      int64   `json:"total_loans"`
	TotalPortfolio  float64 `json:"total_portfolio"`
	AverageLoanSize float64 `json:"average_loan_size"`
	ActiveLoans     int64   `json:"active_loans"`
	PendingLoans    int64   `json:"pending_loans"`
}

type Defaulter struct {
	BorrowerName string  `json:"borrower_name"`
	LoanID       uint64  `json:"loan_id"`
	DaysOverdue  int64   `json:"days_overdue"`
	DueAmount    float64 `json:"due_amount"`
}

type RegionalStats struct {
	RegionID            uint64  `json:"region_id"`
	RegionName          string  `json:"region_name"`
	TotalBorrowers      int64   `json:"total_borrowers"`
	TotalLoans          int64   `json:"total_loans"`
	TotalApprovedAmount float64 `json:"total_approved_amount"`
	AvgLoanAmount       float64 `json:"avg_loan_amount"`
	PendingLoans        int64   `json:"pending_loans"`
	ApprovedLoans       int64   `json:"approved_loans"`
	RejectedLoans       int64   `json:"rejected_loans"`
}

// LoanRow is the joined loan listing (borrower, approving staff, branch).
type LoanRow struct {
	LoanID         uint64  `json:"loan_id"`
	BorrowerID     uint64  `json:"borrower_id"`
	BorrowerName   string  `json:"borrower_name"`
	Amount         float64 `json:"amount"`
	InterestRate   float64 `json:"interest_rate"`
	Tenure         int     `json:"tenure"`
	StartDate      string  `json:"start_date"`
	Status         string  `json:"status"`
	StaffName      *string `json:"staff_name"`
	BranchLocation *string `json:"branch_location"`
}

// RepaymentRow is the joined installment listing ordered by due date.
type RepaymentRow struct {
	RepaymentID  uint64  `json:"repayment_id"`
	LoanID       uint64  `json:"loan_id"`
	BorrowerName string  `json:"borrower_name"`
	DueDate      string  `json:"due_date"`
	AmountDue    float64 `json:"amount_due"`
	AmountPaid   float64 `json:"amount_paid"`
	Penalty      float64 `json:"penalty"`
	Status       string  `json:"status"`
}

// OverdueBorrower identifies a borrower with at least one overdue unpaid
// installment on an approved loan.
type OverdueBorrower struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// ApprovedLoanRow is the approved-loan listing joined with who approved it
// and where.
type ApprovedLoanRow struct {
	LoanID         uint64  `json:"loan_id"`
	BorrowerName   string  `json:"borrower_name"`
	BranchLocation string  `json:"branch_location"`
	ApprovedBy     string  `json:"approved_by"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
}

// RegionAggregate summarizes approved lending per region.
type RegionAggregate struct {
	RegionName     string  `json:"region_name"`
	TotalLoans     int64   `json:"total_loans"`
	AvgLoanSize    float64 `json:"avg_loan_size"`
	TotalDisbursed float64 `json:"total_disbursed"`
	MaxLoan        float64 `json:"max_loan"`
	MinLoan        float64 `json:"min_loan"`
}

type Repository interface {
	PortfolioSummary(ctx context.Context) (*PortfolioSummary, error)
	Defaulters(ctx context.Context) ([]*Defaulter, error)
	Regional(ctx context.Context) ([]*RegionalStats, error)
	OverdueBorrowers(ctx context.Context) ([]*OverdueBorrower, error)
	ApprovedLoans(ctx context.Context) ([]*ApprovedLoanRow, error)
	RegionAggregates(ctx context.Context) ([]*RegionAggregate, error)
	Loans(ctx context.Context) ([]*LoanRow, error)
	Repayments(ctx context.Context) ([]*RepaymentRow, error)
}
