// Package loan covers application intake and the EMI quote used by the
// calculator endpoint.
package loan

import (
	"context"
	"time"

	domain "microfinance-backend/internal/domain/loan"
	"microfinance-backend/pkg/emi"
)

type Usecase struct {
	repo domain.Repository
	now  func() time.Time
}

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r, now: time.Now} }

func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

type CreateLoanInput struct {
	BorrowerID   uint64  `json:"borrower_id"`
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	Tenure       int     `json:"tenure"`
}

type LoanDTO struct {
	LoanID uint64        `json:"loan_id"`
	Status domain.Status `json:"status"`
}

// Create files a new application. Loans always start Pending; only the
// approval workflow moves them on.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.BorrowerID == 0 || in.Amount <= 0 || in.InterestRate <= 0 || in.Tenure < 1 {
		return nil, domain.ErrInvalidTerms
	}

	today := u.now().UTC()
	l := &domain.Loan{
		BorrowerID:   in.BorrowerID,
		Amount:       in.Amount,
		InterestRate: in.InterestRate,
		Tenure:       in.Tenure,
		StartDate:    time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC),
		Status:       domain.StatusPending,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return &LoanDTO{LoanID: l.ID, Status: l.Status}, nil
}

func (u *Usecase) Get(ctx context.Context, loanID uint64) (*domain.Loan, error) {
	return u.repo.GetByID(ctx, loanID)
}

type QuoteInput struct {
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	Tenure       int     `json:"tenure"`
}

type QuoteDTO struct {
	EMI           float64
	TotalPayment  float64
	TotalInterest float64
	Schedule      []emi.Line
}

// Quote computes the installment and lifetime totals for prospective terms.
func (u *Usecase) Quote(in QuoteInput) (*QuoteDTO, error) {
	installment := emi.Compute(in.Amount, in.InterestRate, in.Tenure)
	if installment <= 0 {
		return nil, domain.ErrInvalidTerms
	}
	totalPayment, totalInterest := emi.Totals(in.Amount, installment, in.Tenure)
	return &QuoteDTO{
		EMI:           installment,
		TotalPayment:  totalPayment,
		TotalInterest: totalInterest,
		Schedule:      emi.Schedule(in.Amount, in.InterestRate, in.Tenure, installment),
	}, nil
}
