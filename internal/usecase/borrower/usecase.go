// Package borrower is the thin application layer over the borrower and
// guarantor directory.
package borrower

import (
	"context"
	"errors"

	domain "microfinance-backend/internal/domain/borrower"
)

var ErrMissingFields = errors.New("all fields are required")

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) List(ctx context.Context) ([]*domain.Borrower, error) {
	return u.repo.List(ctx)
}

type CreateBorrowerInput struct {
	Name     string  `json:"name"`
	Contact  string  `json:"contact"`
	Income   float64 `json:"income"`
	RegionID uint64  `json:"region_id"`
}

func (u *Usecase) Create(ctx context.Context, in CreateBorrowerInput) (*domain.Borrower, error) {
	if in.Name == "" || in.Contact == "" || in.Income <= 0 {
		return nil, ErrMissingFields
	}
	if in.RegionID == 0 {
		in.RegionID = 1
	}
	b := &domain.Borrower{Name: in.Name, Contact: in.Contact, Income: in.Income, RegionID: in.RegionID}
	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (u *Usecase) ListGuarantors(ctx context.Context) ([]*domain.GuarantorRow, error) {
	return u.repo.ListGuarantors(ctx)
}

type GuarantorInput struct {
	Name       string `json:"name"`
	Contact    string `json:"contact"`
	Relation   string `json:"relation"`
	BorrowerID uint64 `json:"borrower_id"`
}

func (u *Usecase) CreateGuarantor(ctx context.Context, in GuarantorInput) (*domain.Guarantor, error) {
	if in.Name == "" || in.Contact == "" || in.BorrowerID == 0 {
		return nil, ErrMissingFields
	}
	if in.Relation == "" {
		in.Relation = "Friend"
	}
	g := &domain.Guarantor{Name: in.Name, Contact: in.Contact, Relation: in.Relation, BorrowerID: in.BorrowerID}
	if err := u.repo.CreateGuarantor(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (u *Usecase) UpdateGuarantor(ctx context.Context, guarantorID uint64, in GuarantorInput) error {
	if in.Name == "" || in.Contact == "" || in.BorrowerID == 0 {
		return ErrMissingFields
	}
	g := &domain.Guarantor{ID: guarantorID, Name: in.Name, Contact: in.Contact, Relation: in.Relation, BorrowerID: in.BorrowerID}
	ok, err := u.repo.UpdateGuarantor(ctx, g)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrGuarantorNotFound
	}
	return nil
}

func (u *Usecase) DeleteGuarantor(ctx context.Context, guarantorID uint64) error {
	ok, err := u.repo.DeleteGuarantor(ctx, guarantorID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrGuarantorNotFound
	}
	return nil
}
