package transaction

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/bankcore/bankcore/internal/account"
)

// Handler exposes the transaction service over HTTP.
type Handler struct {
	service *Service
}

// NewHandler builds a transaction HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Balance returns the account's current balance.
func (h *Handler) Balance(c *fiber.Ctx) error {
	accountNumber, err := accountNumberParam(c)
	if err != nil {
		return err
	}
	balance, err := h.service.Balance(c.UserContext(), accountNumber)
	if err != nil {
		return httpError(err)
	}
	return c.Status(http.StatusOK).JSON(balanceResponse{
		AccountNumber: accountNumber,
		Balance:       balance.Amount.String(),
		Currency:      balance.Currency,
		Timestamp:     time.Now().UTC(),
	})
}

// Deposit applies a deposit to the account.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	return h.applyEntry(c, h.service.Deposit)
}

// Withdraw applies a withdrawal to the account.
func (h *Handler) Withdraw(c *fiber.Ctx) error {
	return h.applyEntry(c, h.service.Withdraw)
}

// Statement returns the account's activity for the requested date range.
func (h *Handler) Statement(c *fiber.Ctx) error {
	accountNumber, err := accountNumberParam(c)
	if err != nil {
		return err
	}
	period, err := statementPeriod(c)
	if err != nil {
		return err
	}
	statement, err := h.service.Statement(c.UserContext(), accountNumber, period)
	if err != nil {
		return httpError(err)
	}
	return c.Status(http.StatusOK).JSON(toStatementResponse(statement))
}

func (h *Handler) applyEntry(c *fiber.Ctx, op func(ctx context.Context, tx *account.Transaction) (Result, error)) error {
	accountNumber, err := accountNumberParam(c)
	if err != nil {
		return err
	}

	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "amount must be a decimal string")
	}

	res, err := op(c.UserContext(), &account.Transaction{
		AccountNumber: accountNumber,
		Amount:        amount,
		Description:   req.Description,
	})
	if err != nil {
		return httpError(err)
	}
	return c.Status(http.StatusCreated).JSON(toEntryResponse(res))
}

func accountNumberParam(c *fiber.Ctx) (int64, error) {
	accountNumber, err := strconv.ParseInt(c.Params("accountNumber"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "account number must be an integer")
	}
	return accountNumber, nil
}

func statementPeriod(c *fiber.Ctx) (account.StatementDate, error) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		return account.StatementDate{}, fiber.NewError(http.StatusBadRequest, "start must be an RFC 3339 timestamp")
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		return account.StatementDate{}, fiber.NewError(http.StatusBadRequest, "end must be an RFC 3339 timestamp")
	}
	return account.StatementDate{Start: start, End: end}, nil
}

// httpError maps domain failures onto HTTP statuses. Anything that is not a
// validation failure is treated as a store fault.
func httpError(err error) error {
	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, account.ErrInsufficientFunds):
		return fiber.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, account.ErrNilTransaction),
		errors.Is(err, account.ErrInvalidAmount),
		errors.Is(err, account.ErrAccountMismatch):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(http.StatusBadGateway, err.Error())
	}
}
