package uow

import (
	"context"

	"microfinance-backend/internal/domain/approval"
	"microfinance-backend/internal/domain/loan"
	"microfinance-backend/internal/domain/repayment"
)

type Repos struct {
	Loans      loan.Repository
	Approvals  approval.Repository
	Repayments repayment.Repository
}

type UnitOfWork interface {
	// plain tx: every repo call inside fn shares one transaction; fn's
	// error rolls everything back
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Loan) error) error
}
