// Package account provides the account use cases shared by the front-ends:
// registration and opening an authenticated ledger session.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/atm/pkg/config"
	"github.com/amirasaad/atm/pkg/domain/account"
	"github.com/amirasaad/atm/pkg/ledger"
	"github.com/amirasaad/atm/pkg/money"
	"github.com/amirasaad/atm/pkg/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Service opens ledgers over a directory with the configured rules.
type Service struct {
	dir    repository.Directory
	rules  account.Rules
	logger *slog.Logger
}

// NewService creates a new Service with the provided dependencies.
func NewService(deps config.Deps) (*Service, error) {
	var ledgerCfg *config.Ledger
	if deps.Config != nil {
		ledgerCfg = deps.Config.Ledger
	}
	rules, err := RulesFromConfig(ledgerCfg)
	if err != nil {
		return nil, err
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{dir: deps.Directory, rules: rules, logger: logger}, nil
}

// RulesFromConfig converts ledger settings into account rules.
func RulesFromConfig(cfg *config.Ledger) (account.Rules, error) {
	if cfg == nil {
		return account.Rules{PINCost: bcrypt.DefaultCost}, nil
	}
	if cfg.Denomination < 0 {
		return account.Rules{}, fmt.Errorf("ledger denomination must not be negative, got %d", cfg.Denomination)
	}
	denom, err := money.FromWhole(cfg.Denomination)
	if err != nil {
		return account.Rules{}, fmt.Errorf("ledger denomination: %w", err)
	}
	cost := cfg.PINCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return account.Rules{Denomination: denom, PINCost: cost}, nil
}

// Rules returns the rules applied to every ledger the service opens.
func (s *Service) Rules() account.Rules {
	return s.rules
}

// Register creates an account. An empty pin registers the account without a
// PIN. Invalid input and taken ids are reported as rejected outcomes.
func (s *Service) Register(
	ctx context.Context,
	id int64,
	initialBalance decimal.Decimal,
	pin string,
) (ledger.Outcome, error) {
	logger := s.logger.With("op", "register", "account_id", id)

	balance, err := money.New(initialBalance)
	switch {
	case errors.Is(err, money.ErrTooManyDecimals):
		return s.reject(logger, account.ErrAmountPrecision), nil
	case err != nil:
		return s.reject(logger, account.ErrAmountTooLarge), nil
	}

	acct, err := account.New().
		WithID(id).
		WithBalance(balance).
		WithPIN(pin, s.rules.PINCost).
		Build()
	if err != nil {
		if ledger.IsRejection(err) {
			return s.reject(logger, err), nil
		}
		return ledger.Outcome{}, fmt.Errorf("register account %d: %w", id, err)
	}

	rec := repository.Record{ID: acct.ID, Balance: acct.Balance.Amount(), PINHash: acct.PINHash}
	if err := s.dir.Create(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return s.reject(logger, repository.ErrAlreadyExists), nil
		}
		logger.Error("failed to create account", "error", err)
		return ledger.Outcome{}, fmt.Errorf("register account %d: %w", id, err)
	}

	logger.Info("account registered", "balance", acct.Balance.String(), "has_pin", acct.HasPIN())
	return ledger.Accept("User registered successfully!"), nil
}

// Open starts an unauthenticated session for id. The ledger reports
// Exists() == false when the directory has no such account.
func (s *Service) Open(ctx context.Context, id int64) (*ledger.Ledger, error) {
	if id <= 0 {
		return nil, account.ErrInvalidID
	}
	return ledger.Open(ctx, s.dir, id, ledger.Options{Rules: s.rules, Logger: s.logger})
}

// Login opens a session for id and validates pin against it. The ledger is
// returned only when the outcome is accepted.
func (s *Service) Login(ctx context.Context, id int64, pin string) (*ledger.Ledger, ledger.Outcome, error) {
	logger := s.logger.With("op", "login", "account_id", id)
	if id <= 0 {
		return nil, s.reject(logger, account.ErrInvalidID), nil
	}
	l, err := s.Open(ctx, id)
	if err != nil {
		return nil, ledger.Outcome{}, err
	}
	if !l.Exists() {
		return nil, s.reject(logger, repository.ErrNotFound), nil
	}
	out := l.ValidatePIN(pin)
	if out.Rejected() {
		return nil, out, nil
	}
	return l, out, nil
}

func (s *Service) reject(logger *slog.Logger, err error) ledger.Outcome {
	logger.Info("operation rejected", "reason", err)
	return ledger.Reject(err)
}
