package http

import (
	"net/http"

	"loanbook-backend/internal/usecase/rate"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type RateHandler struct{ uc *rate.Usecase }

func NewRateHandler(uc *rate.Usecase) *RateHandler { return &RateHandler{uc: uc} }

type createRateReq struct {
	Name        string `json:"name"         validate:"required,max=128"`
	RatePercent string `json:"rate_percent" validate:"required,pct"`
	Active      *bool  `json:"active"`
}

type updateRateReq struct {
	Name        *string `json:"name"         validate:"omitempty,min=1,max=128"`
	RatePercent *string `json:"rate_percent" validate:"omitempty,pct"`
	Active      *bool   `json:"active"`
}

func (h *RateHandler) Create(c echo.Context) error {
	var req createRateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	percent, err := decimal.NewFromString(req.RatePercent)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid rate_percent"})
	}
	dto, err := h.uc.Create(c.Request().Context(), rate.CreateInput{
		Name:        req.Name,
		RatePercent: percent,
		Active:      req.Active,
	})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RateHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("rate_id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RateHandler) Update(c echo.Context) error {
	var req updateRateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := rate.UpdateInput{Name: req.Name, Active: req.Active}
	if req.RatePercent != nil {
		percent, err := decimal.NewFromString(*req.RatePercent)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid rate_percent"})
		}
		in.RatePercent = &percent
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("rate_id"), in)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RateHandler) List(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
