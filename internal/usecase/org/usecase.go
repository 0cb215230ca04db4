// Package org is the thin application layer over the staff/branch/region
// directory.
package org

import (
	"context"
	"errors"

	domain "microfinance-backend/internal/domain/org"
)

var ErrMissingFields = errors.New("name and role are required")

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) ListStaff(ctx context.Context) ([]*domain.StaffRow, error) {
	return u.repo.ListStaff(ctx)
}

type CreateStaffInput struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	BranchID uint64 `json:"branch_id"`
}

func (u *Usecase) CreateStaff(ctx context.Context, in CreateStaffInput) (*domain.Staff, error) {
	if in.Name == "" || in.Role == "" {
		return nil, ErrMissingFields
	}
	s := &domain.Staff{Name: in.Name, Role: in.Role, BranchID: in.BranchID}
	if err := u.repo.CreateStaff(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *Usecase) ListBranches(ctx context.Context) ([]*domain.BranchRow, error) {
	return u.repo.ListBranches(ctx)
}

func (u *Usecase) ListRegions(ctx context.Context) ([]*domain.Region, error) {
	return u.repo.ListRegions(ctx)
}

func (u *Usecase) CreateRegion(ctx context.Context, name string) (*domain.Region, error) {
	if name == "" {
		return nil, errors.New("region name is required")
	}
	reg := &domain.Region{Name: name}
	if err := u.repo.CreateRegion(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}
