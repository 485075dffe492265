package http

import (
	"net/http"
	"time"

	loanDomain "loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerID string `json:"borrower_id"     validate:"required,hex32"`
	RateID     string `json:"rate_id"         validate:"omitempty,hex32"`
	Principal  string `json:"principal"       validate:"required,money"`
	LoanType   string `json:"loan_type"       validate:"omitempty,oneof=PERSONAL HOME AUTO BUSINESS EDUCATION OTHER"`
	StartDate  string `json:"start_date"      validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `json:"end_date"        validate:"omitempty,datetime=2006-01-02"`
	TermMonths int    `json:"term_months"     validate:"required,gt=0"`
	// Explicit overrides; a resolvable rate_id beats both.
	RateSnapshot   *string `json:"rate_snapshot"   validate:"omitempty,pct"`
	CurrentBalance *string `json:"current_balance" validate:"omitempty,money"`
	Status         string  `json:"status"          validate:"omitempty,oneof=PENDING ACTIVE COMPLETED DEFAULTED REJECTED"`
}

type updateLoanReq struct {
	RateID         *string `json:"rate_id"         validate:"omitempty,hex32"`
	Principal      *string `json:"principal"       validate:"omitempty,money"`
	LoanType       *string `json:"loan_type"       validate:"omitempty,oneof=PERSONAL HOME AUTO BUSINESS EDUCATION OTHER"`
	StartDate      *string `json:"start_date"      validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date"        validate:"omitempty,datetime=2006-01-02"`
	TermMonths     *int    `json:"term_months"     validate:"omitempty,gt=0"`
	RateSnapshot   *string `json:"rate_snapshot"   validate:"omitempty,pct"`
	CurrentBalance *string `json:"current_balance" validate:"omitempty,money"`
	Status         *string `json:"status"          validate:"omitempty,oneof=PENDING ACTIVE COMPLETED DEFAULTED REJECTED"`
}

type updateLoanStatusReq struct {
	Status string `json:"status" validate:"required,oneof=PENDING ACTIVE COMPLETED DEFAULTED REJECTED"`
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid principal"})
	}
	in := loan.CreateLoanInput{
		BorrowerID: req.BorrowerID,
		RateID:     req.RateID,
		Principal:  principal,
		Type:       loanDomain.Type(req.LoanType),
		StartDate:  parseDate(req.StartDate),
		EndDate:    parseDate(req.EndDate),
		TermMonths: req.TermMonths,
		Status:     loanDomain.Status(req.Status),
	}
	if req.RateSnapshot != nil {
		snap, err := decimal.NewFromString(*req.RateSnapshot)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid rate_snapshot"})
		}
		in.RateSnapshot = &snap
	}
	if req.CurrentBalance != nil {
		bal, err := decimal.NewFromString(*req.CurrentBalance)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid current_balance"})
		}
		in.CurrentBalance = &bal
	}

	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context(), c.QueryParam("borrower_id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	var req updateLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := loan.UpdateLoanInput{RateID: req.RateID, TermMonths: req.TermMonths}
	if req.Principal != nil {
		principal, err := decimal.NewFromString(*req.Principal)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid principal"})
		}
		in.Principal = &principal
	}
	if req.LoanType != nil {
		t := loanDomain.Type(*req.LoanType)
		in.Type = &t
	}
	if req.StartDate != nil {
		d := parseDate(*req.StartDate)
		in.StartDate = &d
	}
	if req.EndDate != nil {
		d := parseDate(*req.EndDate)
		in.EndDate = &d
	}
	if req.RateSnapshot != nil {
		snap, err := decimal.NewFromString(*req.RateSnapshot)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid rate_snapshot"})
		}
		in.RateSnapshot = &snap
	}
	if req.CurrentBalance != nil {
		bal, err := decimal.NewFromString(*req.CurrentBalance)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid current_balance"})
		}
		in.CurrentBalance = &bal
	}
	if req.Status != nil {
		s := loanDomain.Status(*req.Status)
		in.Status = &s
	}

	dto, err := h.uc.Update(c.Request().Context(), c.Param("loan_id"), in)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// UpdateLoanStatus is the administrative override route; it never touches the
// balance.
func (h *LoanHandler) UpdateLoanStatus(c echo.Context) error {
	var req updateLoanStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("loan_id"), loanDomain.Status(req.Status))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
