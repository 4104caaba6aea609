package transaction

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/bankcore/bankcore/internal/logging"
	"github.com/bankcore/bankcore/internal/store"
)

func setupTestApp(t *testing.T) (*fiber.App, store.Store) {
	t.Helper()
	st := store.NewMemory()
	h := NewHandler(NewService(st, nil, logging.Discard()))

	app := fiber.New()
	app.Get("/accounts/:accountNumber/balance", h.Balance)
	app.Post("/accounts/:accountNumber/deposits", h.Deposit)
	app.Post("/accounts/:accountNumber/withdrawals", h.Withdraw)
	app.Get("/accounts/:accountNumber/statement", h.Statement)
	return app, st
}

func seedTestAccount(st store.Store, number int64, balance string) {
	store.SeedSummary(st, store.SummaryRecord{
		AccountNumber: number,
		Balance:       decimal.RequireFromString(balance),
		Currency:      "USD",
	})
}

func TestHandlerDeposit(t *testing.T) {
	app, st := setupTestApp(t)
	seedTestAccount(st, 1001, "100")

	req := httptest.NewRequest(fiber.MethodPost, "/accounts/1001/deposits",
		strings.NewReader(`{"amount":"50","description":"salary"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var body entryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Balance != "150" || body.PreviousBalance != "100" || body.Currency != "USD" {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestHandlerWithdrawInsufficientFunds(t *testing.T) {
	app, st := setupTestApp(t)
	seedTestAccount(st, 1001, "150")

	req := httptest.NewRequest(fiber.MethodPost, "/accounts/1001/withdrawals",
		strings.NewReader(`{"amount":"200"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestHandlerBalanceNotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/accounts/9999/balance", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestHandlerRejectsBadAmount(t *testing.T) {
	app, st := setupTestApp(t)
	seedTestAccount(st, 1001, "100")

	req := httptest.NewRequest(fiber.MethodPost, "/accounts/1001/deposits",
		strings.NewReader(`{"amount":"fifty"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHandlerStatementValidatesDates(t *testing.T) {
	app, st := setupTestApp(t)
	seedTestAccount(st, 1001, "100")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet,
		"/accounts/1001/statement?start=yesterday&end=today", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
