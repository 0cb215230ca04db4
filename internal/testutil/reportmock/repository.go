package reportmock

import (
	"context"

	domain "microfinance-backend/internal/domain/report"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	PortfolioSummaryFn func(ctx context.Context) (*domain.PortfolioSummary, error)
	DefaultersFn       func(ctx context.Context) ([]*domain.Defaulter, error)
	RegionalFn         func(ctx context.Context) ([]*domain.RegionalStats, error)
	OverdueBorrowersFn func(ctx context.Context) ([]*domain.OverdueBorrower, error)
	ApprovedLoansFn    func(ctx context.Context) ([]*domain.ApprovedLoanRow, error)
	RegionAggregatesFn func(ctx context.Context) ([]*domain.RegionAggregate, error)
	LoansFn            func(ctx context.Context) ([]*domain.LoanRow, error)
	RepaymentsFn       func(ctx context.Context) ([]*domain.RepaymentRow, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) PortfolioSummary(ctx context.Context) (*domain.PortfolioSummary, error) {
	if m.PortfolioSummaryFn != nil {
		return m.PortfolioSummaryFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Defaulters(ctx context.Context) ([]*domain.Defaulter, error) {
	if m.DefaultersFn != nil {
		return m.DefaultersFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Regional(ctx context.Context) ([]*domain.RegionalStats, error) {
	if m.RegionalFn != nil {
		return m.RegionalFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) OverdueBorrowers(ctx context.Context) ([]*domain.OverdueBorrower, error) {
	if m.OverdueBorrowersFn != nil {
		return m.OverdueBorrowersFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ApprovedLoans(ctx context.Context) ([]*domain.ApprovedLoanRow, error) {
	if m.ApprovedLoansFn != nil {
		return m.ApprovedLoansFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) RegionAggregates(ctx context.Context) ([]*domain.RegionAggregate, error) {
	if m.RegionAggregatesFn != nil {
		return m.RegionAggregatesFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Loans(ctx context.Context) ([]*domain.LoanRow, error) {
	if m.LoansFn != nil {
		return m.LoansFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Repayments(ctx context.Context) ([]*domain.RepaymentRow, error) {
	if m.RepaymentsFn != nil {
		return m.RepaymentsFn(ctx)
	}
	return nil, context.Canceled
}
