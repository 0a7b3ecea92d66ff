package account

import (
	"time"

	"github.com/amirasaad/atm/pkg/ledger"
	"github.com/shopspring/decimal"
)

//revive:disable

// RegisterRequest represents the request body for registering an account.
// An empty PIN registers the account without one.
type RegisterRequest struct {
	ID             int64           `json:"id" validate:"required"`
	InitialBalance decimal.Decimal `json:"initial_balance" swaggertype:"string" example:"100.00"`
	PIN            string          `json:"pin" validate:"max=16"`
}

// PINRequest carries the PIN that authenticates a request.
type PINRequest struct {
	PIN string `json:"pin" validate:"required,max=16"`
}

// AmountRequest represents the request body for a deposit or withdrawal.
type AmountRequest struct {
	PIN    string          `json:"pin" validate:"required,max=16"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"50.00"`
}

// ChangePINRequest represents the request body for setting or changing a PIN.
// PIN may be empty while the account has none.
type ChangePINRequest struct {
	PIN    string `json:"pin" validate:"max=16"`
	NewPIN string `json:"new_pin" validate:"required,max=16"`
}

//revive:enable

// AccountDTO is the API response representation of an account.
type AccountDTO struct {
	ID           int64   `json:"id"`
	Balance      string  `json:"balance"`
	HasPIN       bool    `json:"has_pin"`
	LastActivity *string `json:"last_activity,omitempty"`
}

// ToAccountDTO maps a ledger session to its response representation.
func ToAccountDTO(l *ledger.Ledger) AccountDTO {
	dto := AccountDTO{
		ID:      l.ID(),
		Balance: l.Balance().Decimal().StringFixed(2),
		HasPIN:  l.HasPIN(),
	}
	if at := l.LastActivity(); !at.IsZero() {
		s := at.UTC().Format(time.RFC3339)
		dto.LastActivity = &s
	}
	return dto
}
