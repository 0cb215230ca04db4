// Package repayment applies payments to scheduled installments. A posting is
// cumulative: each payment adds to amount_paid, and status/penalty are
// derived from the new total.
package repayment

import (
	"context"
	"errors"
	"time"

	domain "microfinance-backend/internal/domain/repayment"
	"microfinance-backend/internal/domain/uow"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Options struct {
	// PenaltyResetOnCatchup clears the penalty once an installment is fully
	// covered. The legacy behavior (false) leaves a charged penalty in
	// place forever.
	PenaltyResetOnCatchup bool
}

type Usecase struct {
	uow  uow.UnitOfWork
	opts Options
	now  func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, opts Options) *Usecase {
	return &Usecase{uow: tx, opts: opts, now: time.Now}
}

func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

type PaymentDTO struct {
	RepaymentID uint64        `json:"repayment_id"`
	AmountPaid  float64       `json:"amount_paid"`
	Penalty     float64       `json:"penalty"`
	Status      domain.Status `json:"status"`
}

var penaltyRate = decimal.NewFromFloat(domain.PenaltyRate)

// PostPayment adds amount to the installment's paid total. The row is locked
// for the duration of the transaction so concurrent postings cannot lose an
// update on the cumulative sum.
func (u *Usecase) PostPayment(ctx context.Context, repaymentID uint64, amount float64) (*PaymentDTO, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var dto *PaymentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		row, err := r.Repayments.GetByIDForUpdate(ctx, repaymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		due := decimal.NewFromFloat(row.AmountDue)
		newPaid := decimal.NewFromFloat(row.AmountPaid).Add(decimal.NewFromFloat(amount)).Round(2)
		row.AmountPaid, _ = newPaid.Float64()

		switch {
		case newPaid.GreaterThanOrEqual(due):
			row.Status = domain.StatusPaid
		case newPaid.IsPositive():
			row.Status = domain.StatusPartial
		default:
			row.Status = domain.StatusPending
		}

		today := u.now().UTC()
		overdue := row.DueDate.Before(time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC))
		if newPaid.LessThan(due) && overdue {
			// flat 2% of the outstanding balance, recomputed on every
			// posting while overdue (not cumulative)
			row.Penalty, _ = due.Sub(newPaid).Mul(penaltyRate).Round(2).Float64()
		} else if u.opts.PenaltyResetOnCatchup && newPaid.GreaterThanOrEqual(due) {
			row.Penalty = 0
		}

		if err := r.Repayments.Save(ctx, row); err != nil {
			return err
		}
		dto = &PaymentDTO{
			RepaymentID: row.ID,
			AmountPaid:  row.AmountPaid,
			Penalty:     row.Penalty,
			Status:      row.Status,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Schedule returns all installments of a loan ordered by due date.
func (u *Usecase) Schedule(ctx context.Context, loanID uint64) ([]*domain.Repayment, error) {
	var rows []*domain.Repayment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		rows, err = r.Repayments.ListByLoanID(ctx, loanID)
		return err
	})
	return rows, err
}
