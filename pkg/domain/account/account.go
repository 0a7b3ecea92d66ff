package account

import (
	"errors"
	"time"

	"github.com/amirasaad/atm/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidID is returned when an account id is not a positive integer.
	ErrInvalidID = errors.New("account id must be positive")

	// ErrNegativeBalance is returned when an account is built with a negative balance.
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrInvalidAmount is returned when a transaction amount is not positive.
	ErrInvalidAmount = errors.New("transaction amount must be positive")

	// ErrAmountPrecision is returned when an amount has sub-cent precision.
	ErrAmountPrecision = errors.New("amount has more than 2 decimal places")

	// ErrAmountTooLarge is returned when an amount, or the balance it would
	// produce, exceeds the maximum representable value.
	ErrAmountTooLarge = errors.New("amount exceeds maximum supported value")

	// ErrDenomination is returned when an amount is not a multiple of the
	// configured denomination.
	ErrDenomination = errors.New("amount is not a multiple of the denomination")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Rules holds the configurable acceptance rules for balance mutations.
type Rules struct {
	// Denomination, when positive, requires deposits and withdrawals to be
	// exact multiples of it. Zero disables the check.
	Denomination money.Money
	// PINCost is the bcrypt cost used when hashing a new PIN.
	PINCost int
}

// Account is one ATM account: its balance, PIN and last activity.
// It acts as an aggregate root; every mutation goes through a method that
// checks the invariants first and leaves the account untouched on failure.
//
// Invariants:
//   - ID is positive and never changes.
//   - Balance is never negative.
//   - PINHash is empty (no PIN) or the bcrypt hash of exactly 4 ASCII digits.
type Account struct {
	ID           int64
	Balance      money.Money
	PINHash      string
	LastActivity time.Time // zero until the first accepted deposit or withdrawal
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id           int64
	balance      money.Money
	pin          string
	pinCost      int
	pinHash      string
	lastActivity time.Time
}

// New creates a new Builder for an account with a zero balance and no PIN.
func New() *Builder {
	return &Builder{}
}

// WithID sets the account id. This is a mandatory field.
func (b *Builder) WithID(id int64) *Builder {
	b.id = id
	return b
}

// WithBalance sets the initial balance.
func (b *Builder) WithBalance(balance money.Money) *Builder {
	b.balance = balance
	return b
}

// WithPIN sets a plain PIN to be validated and hashed at Build time.
// An empty pin leaves the account without a PIN.
func (b *Builder) WithPIN(pin string, cost int) *Builder {
	b.pin = pin
	b.pinCost = cost
	return b
}

// WithPINHash sets an already hashed PIN. This is primarily for hydrating
// an existing account from a data store.
func (b *Builder) WithPINHash(hash string) *Builder {
	b.pinHash = hash
	return b
}

// WithLastActivity sets the last activity timestamp. This is primarily for
// hydrating an existing account from a data store.
func (b *Builder) WithLastActivity(t time.Time) *Builder {
	b.lastActivity = t
	return b
}

// Build validates all invariants and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.id <= 0 {
		return nil, ErrInvalidID
	}
	if b.balance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	a := &Account{
		ID:           b.id,
		Balance:      b.balance,
		PINHash:      b.pinHash,
		LastActivity: b.lastActivity,
	}
	if b.pin != "" {
		if err := a.SetPIN(b.pin, b.pinCost); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// ParseAmount converts a caller supplied decimal into a transaction amount.
// Non-positive amounts fail with ErrInvalidAmount before precision is checked.
func ParseAmount(d decimal.Decimal) (money.Money, error) {
	if d.Sign() <= 0 {
		return money.Money{}, ErrInvalidAmount
	}
	m, err := money.New(d)
	switch {
	case errors.Is(err, money.ErrTooManyDecimals):
		return money.Money{}, ErrAmountPrecision
	case errors.Is(err, money.ErrOverflow):
		return money.Money{}, ErrAmountTooLarge
	case err != nil:
		return money.Money{}, err
	}
	return m, nil
}

// ValidateDeposit checks all business invariants for a deposit:
//   - amount must be positive
//   - amount must match the denomination, if one is configured
//   - the resulting balance must be representable
func (a *Account) ValidateDeposit(amount money.Money, rules Rules) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !amount.IsMultipleOf(rules.Denomination) {
		return ErrDenomination
	}
	if _, err := a.Balance.Add(amount); err != nil {
		return ErrAmountTooLarge
	}
	return nil
}

// Deposit adds amount to the balance if ValidateDeposit accepts it.
func (a *Account) Deposit(amount money.Money, rules Rules, at time.Time) error {
	if err := a.ValidateDeposit(amount, rules); err != nil {
		return err
	}
	balance, err := a.Balance.Add(amount)
	if err != nil {
		return ErrAmountTooLarge
	}
	a.Balance = balance
	a.LastActivity = at
	return nil
}

// ValidateWithdraw checks all business invariants for a withdrawal:
//   - amount must be positive
//   - amount cannot exceed the current balance
//   - amount must match the denomination, if one is configured
func (a *Account) ValidateWithdraw(amount money.Money, rules Rules) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	if !amount.IsMultipleOf(rules.Denomination) {
		return ErrDenomination
	}
	return nil
}

// Withdraw removes amount from the balance if ValidateWithdraw accepts it.
func (a *Account) Withdraw(amount money.Money, rules Rules, at time.Time) error {
	if err := a.ValidateWithdraw(amount, rules); err != nil {
		return err
	}
	balance, err := a.Balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.Balance = balance
	a.LastActivity = at
	return nil
}
