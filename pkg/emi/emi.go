// Package emi holds the amortization math for the loan book. Everything here
// is pure: no I/O, no clock, same inputs always produce the same schedule.
package emi

import (
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// Line is one month of an amortization schedule.
type Line struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

func monthlyRate(annualRatePercent float64) decimal.Decimal {
	return decimal.NewFromFloat(annualRatePercent).Div(twelve).Div(hundred)
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// Compute returns the equated monthly installment for the given principal,
// annual rate (percent) and tenure in months, rounded half-up to 2 places.
//
// Invalid input (non-positive principal, rate or tenure, or a degenerate
// denominator) yields 0; callers must treat 0 as "no valid schedule", never
// as an installment amount.
func Compute(principal, annualRatePercent float64, months int) float64 {
	if principal <= 0 || annualRatePercent <= 0 || months < 1 {
		return 0
	}
	r := monthlyRate(annualRatePercent)
	factor := one.Add(r).Pow(decimal.NewFromInt(int64(months)))
	den := factor.Sub(one)
	if den.IsZero() {
		return 0
	}
	p := decimal.NewFromFloat(principal)
	return round2(p.Mul(r).Mul(factor).Div(den))
}

// Schedule expands an installment into per-month lines. interest is charged
// on the running balance; the remainder of each payment retires principal.
// The balance is floored at 0 and the schedule stops early once it gets
// there, so rounding drift cannot push the final balance negative.
func Schedule(principal, annualRatePercent float64, months int, installment float64) []Line {
	if principal <= 0 || months < 1 || installment <= 0 {
		return nil
	}
	r := monthlyRate(annualRatePercent)
	pay := decimal.NewFromFloat(installment)
	balance := decimal.NewFromFloat(principal)

	lines := make([]Line, 0, months)
	for m := 1; m <= months; m++ {
		interest := balance.Mul(r).Round(2)
		principalPart := pay.Sub(interest)
		balance = balance.Sub(principalPart)
		if balance.IsNegative() {
			// fold the overshoot back into the principal component
			principalPart = principalPart.Add(balance)
			balance = decimal.Zero
		}
		lines = append(lines, Line{
			Month:     m,
			Payment:   round2(pay),
			Principal: round2(principalPart),
			Interest:  round2(interest),
			Balance:   round2(balance),
		})
		if !balance.IsPositive() {
			break
		}
	}
	return lines
}

// Totals returns the lifetime payment and interest for an installment plan.
func Totals(principal, installment float64, months int) (totalPayment, totalInterest float64) {
	total := decimal.NewFromFloat(installment).Mul(decimal.NewFromInt(int64(months)))
	interest := total.Sub(decimal.NewFromFloat(principal))
	return round2(total), round2(interest)
}
