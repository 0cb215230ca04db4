package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microfinance-backend/internal/usecase/approval"
)

type ApprovalHandler struct{ uc *approval.Usecase }

func NewApprovalHandler(uc *approval.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type approveLoanReq struct {
	// Both optional; legacy clients never send them.
	StaffID  uint64 `json:"staff_id"`
	BranchID uint64 `json:"branch_id"`
}

func (h *ApprovalHandler) ApproveLoan(c echo.Context) error {
	loanID, err := parseID(c.Param("loan_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	var req approveLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.StaffID == 0 {
		req.StaffID = 1
	}
	if req.BranchID == 0 {
		req.BranchID = 1
	}

	dto, err := h.uc.Approve(c.Request().Context(), approval.ApproveInput{
		LoanID:   loanID,
		StaffID:  req.StaffID,
		BranchID: req.BranchID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Loan approved successfully!",
		"loan_id": dto.LoanID,
		"emi":     money(dto.EMI),
	})
}

type rejectLoanReq struct {
	Reason string `json:"reason"`
}

func (h *ApprovalHandler) RejectLoan(c echo.Context) error {
	loanID, err := parseID(c.Param("loan_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	var req rejectLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	dto, err := h.uc.Reject(c.Request().Context(), loanID, req.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Loan rejected successfully!",
		"loan_id": dto.LoanID,
		"reason":  dto.Reason,
	})
}
