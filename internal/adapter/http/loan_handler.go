package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	reportDomain "microfinance-backend/internal/domain/report"
	"microfinance-backend/internal/usecase/loan"
)

type LoanHandler struct {
	uc      *loan.Usecase
	reports reportDomain.Repository
}

func NewLoanHandler(uc *loan.Usecase, reports reportDomain.Repository) *LoanHandler {
	return &LoanHandler{uc: uc, reports: reports}
}

type createLoanReq struct {
	BorrowerID   uint64  `json:"borrower_id"   validate:"required"`
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	InterestRate float64 `json:"interest_rate" validate:"required,gt=0"`
	Tenure       int     `json:"tenure"        validate:"required,gte=1"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "All fields are required",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Loan application submitted for admin approval",
		"loan_id": dto.LoanID,
		"status":  dto.Status,
	})
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	rows, err := h.reports.Loans(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID, err := parseID(c.Param("loan_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	l, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

type calculateEMIReq struct {
	Amount       float64 `json:"amount"        validate:"required,gt=0"`
	InterestRate float64 `json:"interest_rate" validate:"required,gt=0"`
	Tenure       int     `json:"tenure"        validate:"required,gte=1"`
}

// CalculateEMI is the stateless quote endpoint; amounts come back as
// 2-decimal strings.
func (h *LoanHandler) CalculateEMI(c echo.Context) error {
	var req calculateEMIReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "All fields are required",
			Details: ToFieldErrors(err),
		})
	}
	q, err := h.uc.Quote(loan.QuoteInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"emi":           money(q.EMI),
		"totalPayment":  money(q.TotalPayment),
		"totalInterest": money(q.TotalInterest),
		"schedule":      q.Schedule,
	})
}
