package http

import (
	"errors"
	"net/http"
	"strings"

	borrowerDomain "loanbook-backend/internal/domain/borrower"
	loanDomain "loanbook-backend/internal/domain/loan"
	rateDomain "loanbook-backend/internal/domain/rate"
	txDomain "loanbook-backend/internal/domain/transaction"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

// writeUsecaseError maps domain errors to HTTP codes.
func writeUsecaseError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, borrowerDomain.ErrNotFound),
		errors.Is(err, rateDomain.ErrNotFound),
		errors.Is(err, txDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
