package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	borrowerDomain "microfinance-backend/internal/domain/borrower"
	loanDomain "microfinance-backend/internal/domain/loan"
	orgDomain "microfinance-backend/internal/domain/org"
	repaymentDomain "microfinance-backend/internal/domain/repayment"
)

type Handler struct{ db *gorm.DB }

func NewHandler(db *gorm.DB) *Handler { return &Handler{db: db} }

func (h *Handler) Health(c echo.Context) error {
	if h.db != nil {
		if err := h.db.WithContext(c.Request().Context()).Exec("SELECT 1").Error; err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"status": "Database connection failed"})
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// writeError maps domain errors onto the API's error taxonomy:
// missing/invalid input → 400, wrong state or absent entity → 404,
// unapprovable terms → 422, everything else → 500.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, repaymentDomain.ErrNotFound),
		errors.Is(err, borrowerDomain.ErrNotFound),
		errors.Is(err, borrowerDomain.ErrGuarantorNotFound),
		errors.Is(err, orgDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, repaymentDomain.ErrInvalidAmount):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrInvalidTerms):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
