package approval

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domainApproval "microfinance-backend/internal/domain/approval"
	domainLoan "microfinance-backend/internal/domain/loan"
	domainRepayment "microfinance-backend/internal/domain/repayment"
	"microfinance-backend/internal/domain/uow"
	"microfinance-backend/internal/testutil/approvalmock"
	"microfinance-backend/internal/testutil/loanmock"
	"microfinance-backend/internal/testutil/repaymentmock"
	"microfinance-backend/internal/testutil/uowmock"

	"gorm.io/gorm"
)

func fixedClock() time.Time { return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) }

func newPendingLoan() *domainLoan.Loan {
	return &domainLoan.Loan{
		ID:           42,
		BorrowerID:   7,
		Amount:       10000,
		InterestRate: 1,
		Tenure:       5,
		Status:       domainLoan.StatusPending,
	}
}

func TestUsecase_Approve(t *testing.T) {
	in := ApproveInput{LoanID: 42, StaffID: 3, BranchID: 2}

	tests := []struct {
		name    string
		setup   func(t *testing.T) *Usecase
		wantErr error
		check   func(t *testing.T, dto *ApprovalDTO)
	}{
		{
			name: "happy path pending -> approved with schedule",
			setup: func(t *testing.T) *Usecase {
				var savedLoan *domainLoan.Loan
				loans := &loanmock.Repo{
					GetByIDForUpdateFn: func(ctx context.Context, loanID uint64) (*domainLoan.Loan, error) {
						if loanID != 42 {
							t.Fatalf("locked wrong loan: %d", loanID)
						}
						return newPendingLoan(), nil
					},
					SaveFn: func(ctx context.Context, l *domainLoan.Loan) error {
						savedLoan = l
						if l.Status != domainLoan.StatusApproved {
							t.Fatalf("expected status=Approved, got %s", l.Status)
						}
						return nil
					},
				}
				apprs := &approvalmock.Repo{
					CreateFn: func(ctx context.Context, a *domainApproval.Approval) error {
						if a.LoanID != 42 || a.StaffID != 3 || a.BranchID != 2 {
							t.Fatalf("approval mismatch: %+v", a)
						}
						if len(a.ApprovalID) != 32 {
							t.Fatalf("approval id not hex32: %q", a.ApprovalID)
						}
						if !a.ApprovalDate.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
							t.Fatalf("approval date = %v", a.ApprovalDate)
						}
						return nil
					},
				}
				reps := &repaymentmock.Repo{
					CreateBatchFn: func(ctx context.Context, rows []*domainRepayment.Repayment) error {
						if savedLoan == nil {
							t.Fatal("schedule inserted before loan was saved")
						}
						if len(rows) != 5 {
							t.Fatalf("schedule has %d rows, want tenure=5", len(rows))
						}
						for i, r := range rows {
							if r.AmountDue != 2005.00 {
								t.Fatalf("row %d amount_due = %v, want 2005.00", i, r.AmountDue)
							}
							if r.AmountPaid != 0 || r.Penalty != 0 || r.Status != domainRepayment.StatusPending {
								t.Fatalf("row %d not pristine: %+v", i, r)
							}
							wantDue := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, i+1, 0)
							if !r.DueDate.Equal(wantDue) {
								t.Fatalf("row %d due = %v, want %v", i, r.DueDate, wantDue)
							}
						}
						return nil
					},
				}
				tx := uowmock.Passthrough(uow.Repos{Loans: loans, Approvals: apprs, Repayments: reps})
				return NewUsecase(loans, tx).WithClock(fixedClock)
			},
			check: func(t *testing.T, dto *ApprovalDTO) {
				if dto.LoanID != 42 {
					t.Fatalf("dto.LoanID = %d", dto.LoanID)
				}
				if dto.EMI != 2005.00 {
					t.Fatalf("dto.EMI = %v, want 2005.00", dto.EMI)
				}
			},
		},
		{
			name: "loan missing",
			setup: func(t *testing.T) *Usecase {
				loans := &loanmock.Repo{
					GetByIDForUpdateFn: func(context.Context, uint64) (*domainLoan.Loan, error) {
						return nil, gorm.ErrRecordNotFound
					},
				}
				tx := uowmock.Passthrough(uow.Repos{Loans: loans, Approvals: &approvalmock.Repo{}, Repayments: &repaymentmock.Repo{}})
				return NewUsecase(loans, tx).WithClock(fixedClock)
			},
			wantErr: domainLoan.ErrNotFound,
		},
		{
			name: "already approved surfaces as not found",
			setup: func(t *testing.T) *Usecase {
				loans := &loanmock.Repo{
					GetByIDForUpdateFn: func(context.Context, uint64) (*domainLoan.Loan, error) {
						l := newPendingLoan()
						l.Status = domainLoan.StatusApproved
						return l, nil
					},
				}
				tx := uowmock.Passthrough(uow.Repos{Loans: loans, Approvals: &approvalmock.Repo{}, Repayments: &repaymentmock.Repo{}})
				return NewUsecase(loans, tx).WithClock(fixedClock)
			},
			wantErr: domainLoan.ErrNotFound,
		},
		{
			name: "rejected surfaces as not found",
			setup: func(t *testing.T) *Usecase {
				loans := &loanmock.Repo{
					GetByIDForUpdateFn: func(context.Context, uint64) (*domainLoan.Loan, error) {
						l := newPendingLoan()
						l.Status = domainLoan.StatusRejected
						return l, nil
					},
				}
				tx := uowmock.Passthrough(uow.Repos{Loans: loans, Approvals: &approvalmock.Repo{}, Repayments: &repaymentmock.Repo{}})
				return NewUsecase(loans, tx).WithClock(fixedClock)
			},
			wantErr: domainLoan.ErrNotFound,
		},
		{
			name: "zero rate loan cannot be approved",
			setup: func(t *testing.T) *Usecase {
				loans := &loanmock.Repo{
					GetByIDForUpdateFn: func(context.Context, uint64) (*domainLoan.Loan, error) {
						l := newPendingLoan()
						l.InterestRate = 0
						return l, nil
					},
					SaveFn: func(ctx context.Context, l *domainLoan.Loan) error {
						t.Fatal("loan must not be saved when terms are invalid")
						return nil
					},
				}
				tx := uowmock.Passthrough(uow.Repos{Loans: loans, Approvals: &approvalmock.Repo{}, Repayments: &repaymentmock.Repo{}})
				return NewUsecase(loans, tx).WithClock(fixedClock)
			},
			wantErr: domainLoan.ErrInvalidTerms,
		},
		{
			name: "schedule insert failure aborts the workflow",
			setup: func(t *testing.T) *Usecase {
				loans := &loanmock.Repo{
					GetByIDForUpdateFn: func(context.Context, uint64) (*domainLoan.Loan, error) {
						return newPendingLoan(), nil
					},
					SaveFn: func(context.Context, *domainLoan.Loan) error { return nil },
				}
				reps := &repaymentmock.Repo{
					CreateBatchFn: func(context.Context, []*domainRepayment.Repayment) error {
						return errors.New("insert failed")
					},
				}
				tx := uowmock.Passthrough(uow.Repos{Loans: loans, Approvals: &approvalmock.Repo{}, Repayments: reps})
				return NewUsecase(loans, tx).WithClock(fixedClock)
			},
			wantErr: nil, // any non-nil error; checked below
			check: func(t *testing.T, dto *ApprovalDTO) {
				t.Fatal("check must not run on error")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			uc := tt.setup(t)
			dto, err := uc.Approve(context.Background(), in)

			if tt.name == "schedule insert failure aborts the workflow" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err=%v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if tt.check != nil {
				tt.check(t, dto)
			}
		})
	}
}

// Two racing approvals on the same loan: exactly one wins. The mutexed
// WithinTx plays the part of the FOR UPDATE row lock (only MySQL exercises
// the real one); the loser reads the already-Approved loan and gets NotFound.
func TestUsecase_Approve_ExactlyOneWins(t *testing.T) {
	state := newPendingLoan()
	approvalRows := 0

	loans := &loanmock.Repo{
		GetByIDForUpdateFn: func(context.Context, uint64) (*domainLoan.Loan, error) {
			return state, nil
		},
		SaveFn: func(context.Context, *domainLoan.Loan) error { return nil },
	}
	apprs := &approvalmock.Repo{
		CreateFn: func(context.Context, *domainApproval.Approval) error {
			approvalRows++
			return nil
		},
	}
	reps := &repaymentmock.Repo{
		CreateBatchFn: func(context.Context, []*domainRepayment.Repayment) error { return nil },
	}

	var mu sync.Mutex
	repos := uow.Repos{Loans: loans, Approvals: apprs, Repayments: reps}
	tx := &uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			mu.Lock()
			defer mu.Unlock()
			return fn(repos)
		},
	}
	uc := NewUsecase(loans, tx).WithClock(fixedClock)

	in := ApproveInput{LoanID: 42, StaffID: 1, BranchID: 1}
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Approve(context.Background(), in)
		}(i)
	}
	wg.Wait()

	wins, losses := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domainLoan.ErrNotFound):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || losses != 1 {
		t.Fatalf("wins=%d losses=%d, want exactly one of each", wins, losses)
	}
	if approvalRows != 1 {
		t.Fatalf("approval rows = %d, want 1", approvalRows)
	}
	if state.Status != domainLoan.StatusApproved {
		t.Fatalf("status = %s, want Approved", state.Status)
	}
}

func TestUsecase_Reject(t *testing.T) {
	t.Run("pending loan rejects", func(t *testing.T) {
		loans := &loanmock.Repo{
			UpdateStatusIfPendingFn: func(ctx context.Context, loanID uint64, to domainLoan.Status) (bool, error) {
				if to != domainLoan.StatusRejected {
					t.Fatalf("status = %s, want Rejected", to)
				}
				return true, nil
			},
		}
		uc := NewUsecase(loans, nil)
		dto, err := uc.Reject(context.Background(), 42, "low income")
		if err != nil {
			t.Fatalf("Reject: %v", err)
		}
		if dto.LoanID != 42 || dto.Reason != "low income" {
			t.Fatalf("unexpected dto: %+v", dto)
		}
	})

	t.Run("reason defaults when empty", func(t *testing.T) {
		loans := &loanmock.Repo{
			UpdateStatusIfPendingFn: func(context.Context, uint64, domainLoan.Status) (bool, error) {
				return true, nil
			},
		}
		uc := NewUsecase(loans, nil)
		dto, err := uc.Reject(context.Background(), 42, "")
		if err != nil {
			t.Fatalf("Reject: %v", err)
		}
		if dto.Reason != "Not specified" {
			t.Fatalf("reason = %q", dto.Reason)
		}
	})

	t.Run("non-pending loan is not found", func(t *testing.T) {
		loans := &loanmock.Repo{
			UpdateStatusIfPendingFn: func(context.Context, uint64, domainLoan.Status) (bool, error) {
				return false, nil
			},
		}
		uc := NewUsecase(loans, nil)
		if _, err := uc.Reject(context.Background(), 42, ""); !errors.Is(err, domainLoan.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("store error passes through", func(t *testing.T) {
		boom := errors.New("db down")
		loans := &loanmock.Repo{
			UpdateStatusIfPendingFn: func(context.Context, uint64, domainLoan.Status) (bool, error) {
				return false, boom
			},
		}
		uc := NewUsecase(loans, nil)
		if _, err := uc.Reject(context.Background(), 42, ""); !errors.Is(err, boom) {
			t.Fatalf("want %v, got %v", boom, err)
		}
	})
}
