// Package ledger implements the account ledger: one account's balance, PIN and
// last activity for the duration of a session, and the sole authority on
// whether a mutation of that state is accepted.
//
// A Ledger is loaded from a repository.Directory when it is opened and writes
// the account back after every accepted mutation, before returning. Rule
// violations are reported as rejected Outcomes; errors are reserved for
// directory failures, in which case the in-memory state is left as it was
// before the call.
//
// A Ledger is not safe for concurrent use.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/atm/pkg/domain/account"
	"github.com/amirasaad/atm/pkg/money"
	"github.com/amirasaad/atm/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Options configures a Ledger.
type Options struct {
	Rules  account.Rules
	Logger *slog.Logger
	// Clock stamps last activity. Defaults to time.Now.
	Clock func() time.Time
}

// Ledger is one session over one account.
type Ledger struct {
	dir           repository.Directory
	account       *account.Account
	exists        bool
	authenticated bool
	rules         account.Rules
	now           func() time.Time
	sessionID     uuid.UUID
	logger        *slog.Logger
}

// Open loads account id from dir and starts an unauthenticated session.
// When the directory has no record for id the session starts from a zero
// balance and no PIN, and Exists reports false.
func Open(ctx context.Context, dir repository.Directory, id int64, opts Options) (*Ledger, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	exists := true
	rec, err := dir.Load(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		exists = false
		rec = &repository.Record{ID: id}
	case err != nil:
		return nil, fmt.Errorf("load account %d: %w", id, err)
	}

	acct, err := fromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("hydrate account %d: %w", id, err)
	}

	sessionID := uuid.New()
	l := &Ledger{
		dir:       dir,
		account:   acct,
		exists:    exists,
		rules:     opts.Rules,
		now:       opts.Clock,
		sessionID: sessionID,
		logger:    opts.Logger.With("session", sessionID, "account_id", id),
	}
	l.logger.Debug("ledger session opened", "exists", exists, "has_pin", acct.HasPIN())
	return l, nil
}

// ID returns the account id.
func (l *Ledger) ID() int64 {
	return l.account.ID
}

// Balance returns the current balance.
func (l *Ledger) Balance() money.Money {
	return l.account.Balance
}

// LastActivity returns the time of the last accepted deposit or withdrawal,
// or the zero time.
func (l *Ledger) LastActivity() time.Time {
	return l.account.LastActivity
}

// HasPIN reports whether the account has a PIN.
func (l *Ledger) HasPIN() bool {
	return l.account.HasPIN()
}

// Exists reports whether the account was present in the directory at Open.
func (l *Ledger) Exists() bool {
	return l.exists
}

// Authenticated reports whether ValidatePIN has accepted a PIN in this session.
func (l *Ledger) Authenticated() bool {
	return l.authenticated
}

// SessionID identifies this session in log output.
func (l *Ledger) SessionID() uuid.UUID {
	return l.sessionID
}

// CheckBalance returns the balance as a display string.
func (l *Ledger) CheckBalance() string {
	return fmt.Sprintf("Your current balance is: %s", l.account.Balance)
}

// Deposit adds amount to the balance and persists it.
func (l *Ledger) Deposit(ctx context.Context, amount decimal.Decimal) (Outcome, error) {
	m, err := account.ParseAmount(amount)
	if err != nil {
		return l.reject("deposit", err), nil
	}
	return l.mutate(ctx, "deposit", func(a *account.Account) error {
		return a.Deposit(m, l.rules, l.now())
	}, fmt.Sprintf("%s has been deposited to your account", m))
}

// Withdraw removes amount from the balance and persists it.
func (l *Ledger) Withdraw(ctx context.Context, amount decimal.Decimal) (Outcome, error) {
	m, err := account.ParseAmount(amount)
	if err != nil {
		return l.reject("withdraw", err), nil
	}
	return l.mutate(ctx, "withdraw", func(a *account.Account) error {
		return a.Withdraw(m, l.rules, l.now())
	}, fmt.Sprintf("%s has been withdrawn from your account", m))
}

// SetPIN replaces the PIN and persists it.
func (l *Ledger) SetPIN(ctx context.Context, pin string) (Outcome, error) {
	return l.mutate(ctx, "set_pin", func(a *account.Account) error {
		return a.SetPIN(pin, l.rules.PINCost)
	}, "Your PIN has been set/updated successfully")
}

// ValidatePIN checks entered against the stored PIN. An accepted PIN
// authenticates the session.
func (l *Ledger) ValidatePIN(entered string) Outcome {
	if err := l.account.CheckPIN(entered); err != nil {
		return l.reject("validate_pin", err)
	}
	l.authenticated = true
	l.logger.Info("pin accepted")
	return Accept("PIN accepted")
}

// mutate applies fn to the account and saves the result. The account is
// restored when fn fails or the save does.
func (l *Ledger) mutate(
	ctx context.Context,
	op string,
	fn func(*account.Account) error,
	message string,
) (Outcome, error) {
	before := *l.account
	if err := fn(l.account); err != nil {
		*l.account = before
		if IsRejection(err) {
			return l.reject(op, err), nil
		}
		return Outcome{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := l.dir.Save(ctx, toRecord(l.account)); err != nil {
		*l.account = before
		l.logger.Error("failed to persist account", "op", op, "error", err)
		return Outcome{}, fmt.Errorf("%s: save account %d: %w", op, l.account.ID, err)
	}
	l.logger.Info("operation accepted", "op", op, "balance", l.account.Balance.String())
	return Accept(message), nil
}

func (l *Ledger) reject(op string, err error) Outcome {
	out := Reject(err)
	if errors.Is(err, account.ErrDenomination) {
		out.Message = fmt.Sprintf("Invalid amount. Please enter a multiple of %s", l.rules.Denomination)
	}
	l.logger.Info("operation rejected", "op", op, "reason", err)
	return out
}

func fromRecord(rec *repository.Record) (*account.Account, error) {
	b := account.New().
		WithID(rec.ID).
		WithBalance(money.FromCents(rec.Balance)).
		WithPINHash(rec.PINHash)
	if rec.LastActivity != nil {
		b = b.WithLastActivity(*rec.LastActivity)
	}
	return b.Build()
}

func toRecord(a *account.Account) repository.Record {
	rec := repository.Record{
		ID:      a.ID,
		Balance: a.Balance.Amount(),
		PINHash: a.PINHash,
	}
	if !a.LastActivity.IsZero() {
		at := a.LastActivity
		rec.LastActivity = &at
	}
	return rec
}
