package repayment

import "context"

type Repository interface {
	// CreateBatch inserts a whole schedule in one statement; all rows land
	// or none do (the surrounding transaction decides).
	CreateBatch(ctx context.Context, rows []*Repayment) error
	GetByID(ctx context.Context, repaymentID uint64) (*Repayment, error)
	// GetByIDForUpdate locks the installment row so concurrent postings
	// against the same installment serialize.
	GetByIDForUpdate(ctx context.Context, repaymentID uint64) (*Repayment, error)
	Save(ctx context.Context, r *Repayment) error
	ListByLoanID(ctx context.Context, loanID uint64) ([]*Repayment, error)
}
