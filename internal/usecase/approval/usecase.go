// Package approval implements the loan approval workflow: validate state,
// flip the status, record who approved, and materialize the repayment
// schedule — all inside one transaction. A schedule that cannot be written
// aborts the approval; an Approved loan always has its installments.
package approval

import (
	"context"
	"errors"
	"time"

	domainApproval "microfinance-backend/internal/domain/approval"
	domainLoan "microfinance-backend/internal/domain/loan"
	domainRepayment "microfinance-backend/internal/domain/repayment"
	"microfinance-backend/internal/domain/uow"
	"microfinance-backend/pkg/emi"
	"microfinance-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	loanRepo domainLoan.Repository
	uow      uow.UnitOfWork
	now      func() time.Time
}

// NewUsecase: the loan repo serves the single-statement reject; approve
// always goes through the UoW.
func NewUsecase(loans domainLoan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loanRepo: loans, uow: tx, now: time.Now}
}

// WithClock overrides the time source; tests pin it.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*ApprovalDTO, error) {
	if u.uow == nil {
		return nil, errors.New("approval usecase: no unit of work")
	}
	var dto *ApprovalDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		// Lock the loan row; two racing approvals serialize here and the
		// loser sees a non-Pending status below.
		l, err := r.Loans.GetByIDForUpdate(ctx, in.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainLoan.ErrNotFound
			}
			return err
		}
		if l.Status != domainLoan.StatusPending {
			return domainLoan.ErrNotFound
		}

		installment := emi.Compute(l.Amount, l.InterestRate, l.Tenure)
		if installment <= 0 {
			return domainLoan.ErrInvalidTerms
		}

		l.Status = domainLoan.StatusApproved
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		today := dateOnly(u.now().UTC())
		a := &domainApproval.Approval{
			ApprovalID:   id.NewID32(),
			LoanID:       l.ID,
			StaffID:      in.StaffID,
			BranchID:     in.BranchID,
			ApprovalDate: today,
		}
		if err := r.Approvals.Create(ctx, a); err != nil {
			return err
		}

		rows := make([]*domainRepayment.Repayment, 0, l.Tenure)
		for i := 1; i <= l.Tenure; i++ {
			rows = append(rows, &domainRepayment.Repayment{
				LoanID:    l.ID,
				DueDate:   today.AddDate(0, i, 0),
				AmountDue: installment,
				Status:    domainRepayment.StatusPending,
			})
		}
		// inside the tx on purpose: a failed schedule insert must roll the
		// status change and the approval row back
		if err := r.Repayments.CreateBatch(ctx, rows); err != nil {
			return err
		}

		dto = &ApprovalDTO{LoanID: l.ID, EMI: installment}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Reject flips Pending → Rejected with a single conditional update; only one
// row is touched so no multi-step transaction is needed.
func (u *Usecase) Reject(ctx context.Context, loanID uint64, reason string) (*RejectDTO, error) {
	ok, err := u.loanRepo.UpdateStatusIfPending(ctx, loanID, domainLoan.StatusRejected)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domainLoan.ErrNotFound
	}
	if reason == "" {
		reason = "Not specified"
	}
	return &RejectDTO{LoanID: loanID, Reason: reason}, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
