package transaction

import (
	"time"

	"github.com/bankcore/bankcore/internal/account"
)

// entryRequest captures user-provided data for a deposit or withdrawal.
// Amounts travel as strings to keep exact decimal values across the wire.
type entryRequest struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// balanceResponse is the API shape of a balance lookup.
type balanceResponse struct {
	AccountNumber int64     `json:"account_number"`
	Balance       string    `json:"balance"`
	Currency      string    `json:"currency"`
	Timestamp     time.Time `json:"timestamp"`
}

// entryResponse is the API shape of an applied ledger entry.
type entryResponse struct {
	AccountNumber   int64     `json:"account_number"`
	Type            string    `json:"type"`
	Amount          string    `json:"amount"`
	PreviousBalance string    `json:"previous_balance"`
	Balance         string    `json:"balance"`
	Currency        string    `json:"currency"`
	Date            time.Time `json:"date"`
	Description     string    `json:"description"`
}

// statementLineResponse is one statement line.
type statementLineResponse struct {
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Balance     string    `json:"balance"`
}

// statementResponse is the API shape of an account statement.
type statementResponse struct {
	AccountNumber int64                   `json:"account_number"`
	Currency      string                  `json:"currency"`
	Start         time.Time               `json:"start"`
	End           time.Time               `json:"end"`
	Transactions  []statementLineResponse `json:"transactions"`
}

func toEntryResponse(res Result) entryResponse {
	return entryResponse{
		AccountNumber:   res.AccountNumber,
		Type:            string(res.Type),
		Amount:          res.Amount.String(),
		PreviousBalance: res.CurrentBalance.Amount.String(),
		Balance:         res.Balance.Amount.String(),
		Currency:        res.Balance.Currency,
		Date:            res.Date,
		Description:     res.Description,
	}
}

func toStatementResponse(st account.Statement) statementResponse {
	lines := make([]statementLineResponse, 0, len(st.Transactions))
	for _, line := range st.Transactions {
		lines = append(lines, statementLineResponse{
			Type:        string(line.Type),
			Date:        line.Date,
			Description: line.Description,
			Amount:      line.Amount.Amount.String(),
			Balance:     line.Balance.Amount.String(),
		})
	}
	return statementResponse{
		AccountNumber: st.AccountNumber,
		Currency:      st.Currency,
		Start:         st.Period.Start,
		End:           st.Period.End,
		Transactions:  lines,
	}
}
