package repaymentmock

import (
	"context"

	domain "microfinance-backend/internal/domain/repayment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateBatchFn      func(ctx context.Context, rows []*domain.Repayment) error
	GetByIDFn          func(ctx context.Context, repaymentID uint64) (*domain.Repayment, error)
	GetByIDForUpdateFn func(ctx context.Context, repaymentID uint64) (*domain.Repayment, error)
	SaveFn             func(ctx context.Context, r *domain.Repayment) error
	ListByLoanIDFn     func(ctx context.Context, loanID uint64) ([]*domain.Repayment, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) CreateBatch(ctx context.Context, rows []*domain.Repayment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, rows)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, repaymentID uint64) (*domain.Repayment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, repaymentID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, repaymentID uint64) (*domain.Repayment, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, repaymentID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, r *domain.Repayment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]*domain.Repayment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}
