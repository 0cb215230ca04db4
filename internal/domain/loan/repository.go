package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, loanID uint64) (*Loan, error)
	// GetByIDForUpdate locks the row (SELECT ... FOR UPDATE) so racing
	// status checks serialize; only meaningful inside a transaction.
	GetByIDForUpdate(ctx context.Context, loanID uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	// UpdateStatusIfPending flips the status in a single conditional
	// statement and reports whether a row was actually changed.
	UpdateStatusIfPending(ctx context.Context, loanID uint64, to Status) (bool, error)
}
