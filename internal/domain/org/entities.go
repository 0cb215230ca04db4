// Package org holds the organizational directory: staff, branches, regions.
package org

import "errors"

var ErrNotFound = errors.New("record not found")

type Staff struct {
	ID       uint64 `gorm:"primaryKey;column:staff_id" json:"staff_id"`
	Name     string `gorm:"column:name;size:100" json:"name"`
	Role     string `gorm:"column:role;size:50" json:"role"`
	BranchID uint64 `gorm:"column:branch_id" json:"branch_id"`
}

func (Staff) TableName() string { return "Staff" }

type Branch struct {
	ID       uint64 `gorm:"primaryKey;column:branch_id" json:"branch_id"`
	Location string `gorm:"column:location;size:100" json:"location"`
	RegionID uint64 `gorm:"column:region_id" json:"region_id"`
}

func (Branch) TableName() string { return "Branch" }

type Region struct {
	ID   uint64 `gorm:"primaryKey;column:region_id" json:"region_id"`
	Name string `gorm:"column:name;size:100" json:"name"`
}

func (Region) TableName() string { return "Region" }
