package http

import (
	"net/http"

	"loanbook-backend/internal/usecase/borrower"

	"github.com/labstack/echo/v4"
)

type BorrowerHandler struct{ uc *borrower.Usecase }

func NewBorrowerHandler(uc *borrower.Usecase) *BorrowerHandler { return &BorrowerHandler{uc: uc} }

type registerBorrowerReq struct {
	FullName   string `json:"full_name"   validate:"required"`
	Phone      string `json:"phone"       validate:"omitempty,max=32"`
	Email      string `json:"email"       validate:"omitempty,email"`
	Address    string `json:"address"`
	NationalID string `json:"national_id" validate:"omitempty,max=64"`
}

type updateBorrowerReq struct {
	FullName   *string `json:"full_name"   validate:"omitempty,min=1"`
	Phone      *string `json:"phone"       validate:"omitempty,max=32"`
	Email      *string `json:"email"       validate:"omitempty,email"`
	Address    *string `json:"address"`
	NationalID *string `json:"national_id" validate:"omitempty,max=64"`
}

func (h *BorrowerHandler) Register(c echo.Context) error {
	var req registerBorrowerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Register(c.Request().Context(), borrower.RegisterInput{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		NationalID: req.NationalID,
	})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *BorrowerHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) Update(c echo.Context) error {
	var req updateBorrowerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("borrower_id"), borrower.UpdateInput{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		NationalID: req.NationalID,
	})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) List(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
