package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	approvalDomain "microfinance-backend/internal/domain/approval"
	loanDomain "microfinance-backend/internal/domain/loan"
	repaymentDomain "microfinance-backend/internal/domain/repayment"
	"microfinance-backend/internal/domain/uow"
	"microfinance-backend/pkg/id"

	"gorm.io/gorm"
)

// approval-shaped write: status flip + approval row + schedule, all in fn
func approvalFlow(ctx context.Context, r uow.Repos, l *loanDomain.Loan, failSchedule bool) error {
	l.Status = loanDomain.StatusApproved
	if err := r.Loans.Save(ctx, l); err != nil {
		return err
	}
	a := &approvalDomain.Approval{
		ApprovalID:   id.NewID32(),
		LoanID:       l.ID,
		StaffID:      1,
		BranchID:     1,
		ApprovalDate: time.Now().UTC(),
	}
	if err := r.Approvals.Create(ctx, a); err != nil {
		return err
	}
	if failSchedule {
		return errors.New("schedule insert failed")
	}
	rows := []*repaymentDomain.Repayment{
		{LoanID: l.ID, DueDate: time.Now().AddDate(0, 1, 0), AmountDue: 2005, Status: repaymentDomain.StatusPending},
	}
	return r.Repayments.CreateBatch(ctx, rows)
}

func TestWithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	loans := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(7)
	if err := loans.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		got, err := r.Loans.GetByID(ctx, l.ID)
		if err != nil {
			return err
		}
		return approvalFlow(ctx, r, got, false)
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	// everything visible after commit
	got, err := loans.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != loanDomain.StatusApproved {
		t.Fatalf("status = %s, want Approved", got.Status)
	}
	if _, err := NewApprovalRepository(db).GetByLoanID(ctx, l.ID); err != nil {
		t.Fatalf("approval missing after commit: %v", err)
	}
	rows, err := NewRepaymentRepository(db).ListByLoanID(ctx, l.ID)
	if err != nil || len(rows) != 1 {
		t.Fatalf("schedule rows = %d (err %v), want 1", len(rows), err)
	}
}

func TestWithinTx_RollbackLeavesNoTrace(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	loans := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(7)
	if err := loans.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		got, err := r.Loans.GetByID(ctx, l.ID)
		if err != nil {
			return err
		}
		return approvalFlow(ctx, r, got, true)
	})
	if err == nil {
		t.Fatalf("expected the injected failure")
	}

	// status flip and approval row must both be gone
	got, err := loans.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != loanDomain.StatusPending {
		t.Fatalf("status = %s, want Pending after rollback", got.Status)
	}
	if _, err := NewApprovalRepository(db).GetByLoanID(ctx, l.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("approval must not survive rollback, got err=%v", err)
	}
	rows, err := NewRepaymentRepository(db).ListByLoanID(ctx, l.ID)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("schedule rows = %d, want 0 after rollback", len(rows))
	}
}
