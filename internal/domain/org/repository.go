package org

import "context"

type Repository interface {
	ListStaff(ctx context.Context) ([]*StaffRow, error)
	CreateStaff(ctx context.Context, s *Staff) error

	ListBranches(ctx context.Context) ([]*BranchRow, error)

	ListRegions(ctx context.Context) ([]*Region, error)
	CreateRegion(ctx context.Context, r *Region) error
}

// StaffRow is the staff listing joined with branch location and the count
// of approvals the staff member signed off.
type StaffRow struct {
	Staff
	BranchLocation string `json:"branch_location"`
	LoansApproved  int64  `json:"loans_approved"`
}

// BranchRow aggregates a branch with its region, headcount and approvals.
type BranchRow struct {
	Branch
	RegionName         string `json:"region_name"`
	TotalStaff         int64  `json:"total_staff"`
	TotalLoansApproved int64  `json:"total_loans_approved"`
}
