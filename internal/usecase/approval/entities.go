package approval

type ApproveInput struct {
	LoanID   uint64
	StaffID  uint64
	BranchID uint64
}

type ApprovalDTO struct {
	LoanID uint64  `json:"loan_id"`
	EMI    float64 `json:"emi"`
}

type RejectDTO struct {
	LoanID uint64 `json:"loan_id"`
	Reason string `json:"reason"`
}
