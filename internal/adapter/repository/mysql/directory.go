package mysql

import (
	"context"

	borrowerDomain "microfinance-backend/internal/domain/borrower"
	orgDomain "microfinance-backend/internal/domain/org"

	"gorm.io/gorm"
)

// BorrowerRepository backs the borrower and guarantor directory endpoints.
type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

func (r *BorrowerRepository) List(ctx context.Context) ([]*borrowerDomain.Borrower, error) {
	var out []*borrowerDomain.Borrower
	res := r.db.WithContext(ctx).Order("borrower_id DESC").Find(&out)
	return out, res.Error
}

func (r *BorrowerRepository) Create(ctx context.Context, b *borrowerDomain.Borrower) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BorrowerRepository) ListGuarantors(ctx context.Context) ([]*borrowerDomain.GuarantorRow, error) {
	var out []*borrowerDomain.GuarantorRow
	res := r.db.WithContext(ctx).
		Table("Guarantor g").
		Select("g.guarantor_id, g.name, g.contact, g.relation, g.borrower_id, b.name AS borrower_name, b.contact AS borrower_contact").
		Joins("LEFT JOIN Borrower b ON g.borrower_id = b.borrower_id").
		Order("g.guarantor_id DESC").
		Scan(&out)
	return out, res.Error
}

func (r *BorrowerRepository) CreateGuarantor(ctx context.Context, g *borrowerDomain.Guarantor) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *BorrowerRepository) UpdateGuarantor(ctx context.Context, g *borrowerDomain.Guarantor) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&borrowerDomain.Guarantor{}).
		Where("guarantor_id = ?", g.ID).
		Updates(map[string]any{
			"name":        g.Name,
			"contact":     g.Contact,
			"relation":    g.Relation,
			"borrower_id": g.BorrowerID,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BorrowerRepository) DeleteGuarantor(ctx context.Context, guarantorID uint64) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// loan associations first, then the guarantor itself
		if err := tx.Exec("DELETE FROM LoanGuarantor WHERE guarantor_id = ?", guarantorID).Error; err != nil {
			return err
		}
		res := tx.Where("guarantor_id = ?", guarantorID).Delete(&borrowerDomain.Guarantor{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// OrgRepository backs the staff/branch/region directory endpoints.
type OrgRepository struct{ db *gorm.DB }

func NewOrgRepository(db *gorm.DB) *OrgRepository { return &OrgRepository{db: db} }

func (r *OrgRepository) ListStaff(ctx context.Context) ([]*orgDomain.StaffRow, error) {
	var out []*orgDomain.StaffRow
	res := r.db.WithContext(ctx).
		Table("Staff s").
		Select("s.staff_id, s.name, s.role, s.branch_id, b.location AS branch_location, COUNT(la.loan_id) AS loans_approved").
		Joins("LEFT JOIN Branch b ON s.branch_id = b.branch_id").
		Joins("LEFT JOIN LoanApproval la ON s.staff_id = la.staff_id").
		Group("s.staff_id, s.name, s.role, s.branch_id, b.location").
		Order("s.staff_id ASC").
		Scan(&out)
	return out, res.Error
}

func (r *OrgRepository) CreateStaff(ctx context.Context, s *orgDomain.Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *OrgRepository) ListBranches(ctx context.Context) ([]*orgDomain.BranchRow, error) {
	var out []*orgDomain.BranchRow
	res := r.db.WithContext(ctx).
		Table("Branch b").
		Select("b.branch_id, b.location, b.region_id, r.name AS region_name, COUNT(DISTINCT s.staff_id) AS total_staff, COUNT(la.loan_id) AS total_loans_approved").
		Joins("LEFT JOIN Region r ON b.region_id = r.region_id").
		Joins("LEFT JOIN Staff s ON b.branch_id = s.branch_id").
		Joins("LEFT JOIN LoanApproval la ON b.branch_id = la.branch_id").
		Group("b.branch_id, b.location, b.region_id, r.name").
		Order("b.branch_id").
		Scan(&out)
	return out, res.Error
}

func (r *OrgRepository) ListRegions(ctx context.Context) ([]*orgDomain.Region, error) {
	var out []*orgDomain.Region
	res := r.db.WithContext(ctx).Order("region_id").Find(&out)
	return out, res.Error
}

func (r *OrgRepository) CreateRegion(ctx context.Context, reg *orgDomain.Region) error {
	return r.db.WithContext(ctx).Create(reg).Error
}
