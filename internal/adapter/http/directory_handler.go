package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	borrowerUC "microfinance-backend/internal/usecase/borrower"
	orgUC "microfinance-backend/internal/usecase/org"
)

// DirectoryHandler serves the plain CRUD surface: borrowers, guarantors,
// staff, branches, regions.
type DirectoryHandler struct {
	borrowers *borrowerUC.Usecase
	org       *orgUC.Usecase
}

func NewDirectoryHandler(b *borrowerUC.Usecase, o *orgUC.Usecase) *DirectoryHandler {
	return &DirectoryHandler{borrowers: b, org: o}
}

func (h *DirectoryHandler) ListBorrowers(c echo.Context) error {
	rows, err := h.borrowers.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *DirectoryHandler) CreateBorrower(c echo.Context) error {
	var req borrowerUC.CreateBorrowerInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	b, err := h.borrowers.Create(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, borrowerUC.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":     "Borrower registered successfully",
		"borrower_id": b.ID,
	})
}

func (h *DirectoryHandler) ListGuarantors(c echo.Context) error {
	rows, err := h.borrowers.ListGuarantors(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *DirectoryHandler) CreateGuarantor(c echo.Context) error {
	var req borrowerUC.GuarantorInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	g, err := h.borrowers.CreateGuarantor(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, borrowerUC.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":      "Guarantor added successfully",
		"guarantor_id": g.ID,
	})
}

func (h *DirectoryHandler) UpdateGuarantor(c echo.Context) error {
	guarantorID, err := parseID(c.Param("guarantor_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid guarantor_id"})
	}
	var req borrowerUC.GuarantorInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.borrowers.UpdateGuarantor(c.Request().Context(), guarantorID, req); err != nil {
		if errors.Is(err, borrowerUC.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":      "Guarantor updated successfully",
		"guarantor_id": guarantorID,
	})
}

func (h *DirectoryHandler) DeleteGuarantor(c echo.Context) error {
	guarantorID, err := parseID(c.Param("guarantor_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid guarantor_id"})
	}
	if err := h.borrowers.DeleteGuarantor(c.Request().Context(), guarantorID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":      "Guarantor deleted successfully",
		"guarantor_id": guarantorID,
	})
}

func (h *DirectoryHandler) ListStaff(c echo.Context) error {
	rows, err := h.org.ListStaff(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *DirectoryHandler) CreateStaff(c echo.Context) error {
	var req orgUC.CreateStaffInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	s, err := h.org.CreateStaff(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, orgUC.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":  "Staff member added successfully",
		"staff_id": s.ID,
	})
}

func (h *DirectoryHandler) ListBranches(c echo.Context) error {
	rows, err := h.org.ListBranches(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *DirectoryHandler) ListRegions(c echo.Context) error {
	rows, err := h.org.ListRegions(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

type createRegionReq struct {
	Name string `json:"name"`
}

func (h *DirectoryHandler) CreateRegion(c echo.Context) error {
	var req createRegionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Region name is required"})
	}
	reg, err := h.org.CreateRegion(c.Request().Context(), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":   "Region added successfully",
		"region_id": reg.ID,
	})
}
