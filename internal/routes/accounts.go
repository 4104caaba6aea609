package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bankcore/bankcore/internal/transaction"
)

// RegisterAccountRoutes wires balance, deposit, withdrawal and statement endpoints.
func RegisterAccountRoutes(r fiber.Router, h *transaction.Handler) {
	r.Get("/accounts/:accountNumber/balance", h.Balance)
	r.Post("/accounts/:accountNumber/deposits", h.Deposit)
	r.Post("/accounts/:accountNumber/withdrawals", h.Withdraw)
	r.Get("/accounts/:accountNumber/statement", h.Statement)
}
