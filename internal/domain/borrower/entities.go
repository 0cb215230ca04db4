package borrower

import "errors"

var (
	ErrNotFound          = errors.New("borrower not found")
	ErrGuarantorNotFound = errors.New("guarantor not found")
)

type Borrower struct {
	ID       uint64  `gorm:"primaryKey;column:borrower_id" json:"borrower_id"`
	Name     string  `gorm:"column:name;size:100" json:"name"`
	Contact  string  `gorm:"column:contact;size:50" json:"contact"`
	Income   float64 `gorm:"column:income;type:decimal(12,2)" json:"income"`
	RegionID uint64  `gorm:"column:region_id;default:1" json:"region_id"`
}

func (Borrower) TableName() string { return "Borrower" }

type Guarantor struct {
	ID         uint64 `gorm:"primaryKey;column:guarantor_id" json:"guarantor_id"`
	Name       string `gorm:"column:name;size:100" json:"name"`
	Contact    string `gorm:"column:contact;size:50" json:"contact"`
	Relation   string `gorm:"column:relation;size:50" json:"relation"`
	BorrowerID uint64 `gorm:"column:borrower_id;index" json:"borrower_id"`
}

func (Guarantor) TableName() string { return "Guarantor" }
