package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	reportDomain "microfinance-backend/internal/domain/report"
)

type ReportHandler struct{ reports reportDomain.Repository }

func NewReportHandler(r reportDomain.Repository) *ReportHandler { return &ReportHandler{reports: r} }

func (h *ReportHandler) PortfolioSummary(c echo.Context) error {
	out, err := h.reports.PortfolioSummary(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Defaulters(c echo.Context) error {
	out, err := h.reports.Defaulters(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Regional(c echo.Context) error {
	out, err := h.reports.Regional(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) OverdueBorrowers(c echo.Context) error {
	out, err := h.reports.OverdueBorrowers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) ApprovedLoans(c echo.Context) error {
	out, err := h.reports.ApprovedLoans(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) RegionAggregates(c echo.Context) error {
	out, err := h.reports.RegionAggregates(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
