package borrower

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Borrower, error)
	Create(ctx context.Context, b *Borrower) error

	ListGuarantors(ctx context.Context) ([]*GuarantorRow, error)
	CreateGuarantor(ctx context.Context, g *Guarantor) error
	// UpdateGuarantor reports whether a row matched.
	UpdateGuarantor(ctx context.Context, g *Guarantor) (bool, error)
	// DeleteGuarantor removes the guarantor and any loan associations.
	DeleteGuarantor(ctx context.Context, guarantorID uint64) (bool, error)
}

// GuarantorRow is the guarantor listing joined with its borrower.
type GuarantorRow struct {
	Guarantor
	BorrowerName    string `json:"borrower_name"`
	BorrowerContact string `json:"borrower_contact"`
}
