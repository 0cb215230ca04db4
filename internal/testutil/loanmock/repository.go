package loanmock

import (
	"context"

	domain "microfinance-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the methods a test needs.
type Repo struct {
	CreateFn                func(ctx context.Context, l *domain.Loan) error
	GetByIDFn               func(ctx context.Context, loanID uint64) (*domain.Loan, error)
	GetByIDForUpdateFn      func(ctx context.Context, loanID uint64) (*domain.Loan, error)
	SaveFn                  func(ctx context.Context, l *domain.Loan) error
	UpdateStatusIfPendingFn func(ctx context.Context, loanID uint64, to domain.Status) (bool, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, loanID uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, loanID uint64) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) UpdateStatusIfPending(ctx context.Context, loanID uint64, to domain.Status) (bool, error) {
	if m.UpdateStatusIfPendingFn != nil {
		return m.UpdateStatusIfPendingFn(ctx, loanID, to)
	}
	return false, context.Canceled
}
