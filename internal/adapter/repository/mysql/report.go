package mysql

import (
	"context"

	reportDomain "microfinance-backend/internal/domain/report"

	"gorm.io/gorm"
)

// ReportRepository serves the analytics endpoints with raw SQL. The queries
// are MySQL-flavored (CURDATE, DATEDIFF) and read-only.
type ReportRepository struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{db: db} }

func (r *ReportRepository) PortfolioSummary(ctx context.Context) (*reportDomain.PortfolioSummary, error) {
	var out reportDomain.PortfolioSummary
	res := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_loans,
			COALESCE(SUM(amount), 0) AS total_portfolio,
			COALESCE(AVG(amount), 0) AS average_loan_size,
			SUM(CASE WHEN status = 'Approved' THEN 1 ELSE 0 END) AS active_loans,
			SUM(CASE WHEN status = 'Pending' THEN 1 ELSE 0 END) AS pending_loans
		FROM Loan`).Scan(&out)
	return &out, res.Error
}

func (r *ReportRepository) Defaulters(ctx context.Context) ([]*reportDomain.Defaulter, error) {
	var out []*reportDomain.Defaulter
	res := r.db.WithContext(ctx).Raw(`
		SELECT
			b.name AS borrower_name, l.loan_id,
			DATEDIFF(CURDATE(), r.due_date) AS days_overdue,
			(r.amount_due - COALESCE(r.amount_paid, 0)) AS due_amount
		FROM Borrower b
		JOIN Loan l ON b.borrower_id = l.borrower_id
		JOIN Repayment r ON l.loan_id = r.loan_id
		WHERE r.due_date < CURDATE()
		AND (r.amount_paid IS NULL OR r.amount_paid < r.amount_due)
		AND l.status = 'Approved'
		ORDER BY days_overdue DESC
		LIMIT 10`).Scan(&out)
	return out, res.Error
}

func (r *ReportRepository) Regional(ctx context.Context) ([]*reportDomain.RegionalStats, error) {
	var out []*reportDomain.RegionalStats
	res := r.db.WithContext(ctx).Raw(`
		SELECT
			rg.region_id,
			rg.name AS region_name,
			COUNT(DISTINCT b.borrower_id) AS total_borrowers,
			COUNT(DISTINCT l.loan_id) AS total_loans,
			COALESCE(SUM(l.amount), 0) AS total_approved_amount,
			COALESCE(AVG(l.amount), 0) AS avg_loan_amount,
			SUM(CASE WHEN l.status = 'Pending' THEN 1 ELSE 0 END) AS pending_loans,
			SUM(CASE WHEN l.status = 'Approved' THEN 1 ELSE 0 END) AS approved_loans,
			SUM(CASE WHEN l.status = 'Rejected' THEN 1 ELSE 0 END) AS rejected_loans
		FROM Region rg
		LEFT JOIN Borrower b ON rg.region_id = b.region_id
		LEFT JOIN Loan l ON b.borrower_id = l.borrower_id
		GROUP BY rg.region_id, rg.name
		ORDER BY total_approved_amount DESC`).Scan(&out)
	return out, res.Error
}

func (r *ReportRepository) OverdueBorrowers(ctx context.Context) ([]*reportDomain.OverdueBorrower, error) {
	var out []*reportDomain.OverdueBorrower
	res := r.db.WithContext(ctx).Raw(`
		SELECT b.name, b.contact
		FROM Borrower b
		WHERE b.borrower_id IN (
			SELECT l.borrower_id
			FROM Loan l
			JOIN Repayment r ON l.loan_id = r.loan_id
			WHERE r.amount_paid < r.amount_due
			AND r.due_date < CURDATE()
			AND l.status = 'Approved'
		)
		LIMIT 10`).Scan(&out)
	return out, res.Error
}

func (r *ReportRepository) ApprovedLoans(ctx context.Context) ([]*reportDomain.ApprovedLoanRow, error) {
	var out []*reportDomain.ApprovedLoanRow
	res := r.db.WithContext(ctx).Raw(`
		SELECT
			l.loan_id, b.name AS borrower_name, br.location AS branch_location,
			s.name AS approved_by, l.amount, l.status
		FROM Loan l
		JOIN Borrower b ON l.borrower_id = b.borrower_id
		JOIN LoanApproval la ON l.loan_id = la.loan_id
		JOIN Staff s ON la.staff_id = s.staff_id
		JOIN Branch br ON la.branch_id = br.branch_id
		WHERE l.status = 'Approved'
		ORDER BY l.loan_id DESC
		LIMIT 10`).Scan(&out)
	return out, res.Error
}

func (r *ReportRepository) RegionAggregates(ctx context.Context) ([]*reportDomain.RegionAggregate, error) {
	var out []*reportDomain.RegionAggregate
	res := r.db.WithContext(ctx).Raw(`
		SELECT
			rg.name AS region_name,
			COUNT(l.loan_id) AS total_loans,
			COALESCE(AVG(l.amount), 0) AS avg_loan_size,
			COALESCE(SUM(l.amount), 0) AS total_disbursed,
			COALESCE(MAX(l.amount), 0) AS max_loan,
			COALESCE(MIN(l.amount), 0) AS min_loan
		FROM Region rg
		LEFT JOIN Borrower b ON rg.region_id = b.region_id
		LEFT JOIN Loan l ON b.borrower_id = l.borrower_id
		WHERE l.status = 'Approved' OR l.status IS NULL
		GROUP BY rg.region_id, rg.name
		HAVING total_loans > 0
		ORDER BY total_disbursed DESC`).Scan(&out)
	return out, res.Error
}

func (r *ReportRepository) Loans(ctx context.Context) ([]*reportDomain.LoanRow, error) {
	var out []*reportDomain.LoanRow
	res := r.db.WithContext(ctx).Raw(`
		SELECT
			l.loan_id, l.borrower_id, b.name AS borrower_name,
			l.amount, l.interest_rate, l.tenure, l.start_date, l.status,
			s.name AS staff_name, br.location AS branch_location
		FROM Loan l
		JOIN Borrower b ON l.borrower_id = b.borrower_id
		LEFT JOIN LoanApproval la ON l.loan_id = la.loan_id
		LEFT JOIN Staff s ON la.staff_id = s.staff_id
		LEFT JOIN Branch br ON la.branch_id = br.branch_id
		ORDER BY l.loan_id DESC`).Scan(&out)
	return out, res.Error
}

func (r *ReportRepository) Repayments(ctx context.Context) ([]*reportDomain.RepaymentRow, error) {
	var out []*reportDomain.RepaymentRow
	res := r.db.WithContext(ctx).Raw(`
		SELECT
			r.repayment_id, r.loan_id, b.name AS borrower_name,
			r.due_date, r.amount_due, r.amount_paid, r.penalty, r.status
		FROM Repayment r
		JOIN Loan l ON r.loan_id = l.loan_id
		JOIN Borrower b ON l.borrower_id = b.borrower_id
		ORDER BY r.due_date ASC`).Scan(&out)
	return out, res.Error
}
