package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	reportDomain "microfinance-backend/internal/domain/report"
	"microfinance-backend/internal/usecase/repayment"
)

type RepaymentHandler struct {
	uc      *repayment.Usecase
	reports reportDomain.Repository
}

func NewRepaymentHandler(uc *repayment.Usecase, reports reportDomain.Repository) *RepaymentHandler {
	return &RepaymentHandler{uc: uc, reports: reports}
}

type payReq struct {
	AmountPaid float64 `json:"amount_paid"`
}

func (h *RepaymentHandler) PostPayment(c echo.Context) error {
	repaymentID, err := parseID(c.Param("repayment_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid repayment_id"})
	}
	var req payReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	dto, err := h.uc.PostPayment(c.Request().Context(), repaymentID, req.AmountPaid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":      "Payment processed successfully",
		"repayment_id": dto.RepaymentID,
		"amount_paid":  dto.AmountPaid,
		"status":       dto.Status,
	})
}

func (h *RepaymentHandler) ListRepayments(c echo.Context) error {
	rows, err := h.reports.Repayments(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// LoanSchedule returns the installments of one loan, oldest due first.
func (h *RepaymentHandler) LoanSchedule(c echo.Context) error {
	loanID, err := parseID(c.Param("loan_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	rows, err := h.uc.Schedule(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
