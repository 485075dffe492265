package http

import (
	"net/http"

	txDomain "loanbook-backend/internal/domain/transaction"
	"loanbook-backend/internal/usecase/transaction"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct{ uc *transaction.Usecase }

func NewTransactionHandler(uc *transaction.Usecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

type postTransactionReq struct {
	Type        string `json:"tx_type"      validate:"omitempty,oneof=REPAYMENT LATE_FEE PENALTY OTHER"`
	Amount      string `json:"amount"       validate:"required,money"`
	PaymentDate string `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	TermNumber  int    `json:"term_number"  validate:"omitempty,gte=0"`
	Method      string `json:"method"       validate:"omitempty,max=64"`
	Note        string `json:"note"`
}

// PostTransaction appends one ledger entry to the loan in the path.
func (h *TransactionHandler) PostTransaction(c echo.Context) error {
	var req postTransactionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid amount"})
	}

	dto, err := h.uc.Apply(c.Request().Context(), transaction.ApplyInput{
		LoanID:      c.Param("loan_id"),
		Type:        txDomain.Type(req.Type),
		Amount:      amount,
		PaymentDate: parseDate(req.PaymentDate),
		TermNumber:  req.TermNumber,
		Method:      req.Method,
		Note:        req.Note,
	})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	dtos, err := h.uc.ListByLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("transaction_id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
