// Package menu is the interactive terminal front-end: a numbered start screen
// (register, login, exit) and, once a PIN is accepted, the account menu.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/atm/pkg/ledger"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

const invalidNumber = "Invalid input. Please enter a valid number"

// Service is the subset of the account service the menu drives.
type Service interface {
	Register(ctx context.Context, id int64, initialBalance decimal.Decimal, pin string) (ledger.Outcome, error)
	Open(ctx context.Context, id int64) (*ledger.Ledger, error)
}

// Menu reads choices from in and writes prompts and results to out.
type Menu struct {
	svc      Service
	in       *bufio.Scanner
	out      io.Writer
	secretFd int
	logger   *slog.Logger

	accepted *color.Color
	rejected *color.Color
	title    *color.Color
}

// Option configures a Menu.
type Option func(*Menu)

// WithoutColor disables ANSI colors.
func WithoutColor() Option {
	return func(m *Menu) {
		m.accepted.DisableColor()
		m.rejected.DisableColor()
		m.title.DisableColor()
	}
}

// WithLogger sets the logger for infrastructure failures.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) { m.logger = logger }
}

// New creates a Menu. When in is a terminal, PINs are read without echo.
func New(svc Service, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		svc:      svc,
		in:       bufio.NewScanner(in),
		out:      out,
		secretFd: -1,
		logger:   slog.Default(),
		accepted: color.New(color.FgGreen),
		rejected: color.New(color.FgRed),
		title:    color.New(color.FgCyan, color.Bold),
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		m.secretFd = int(f.Fd())
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the start screen until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.title.Fprintln(m.out, "\nATM System")
		fmt.Fprintln(m.out, "1. Register")
		fmt.Fprintln(m.out, "2. Login")
		fmt.Fprintln(m.out, "3. Exit")

		choice, ok := m.prompt("Enter your choice (1-3): ")
		if !ok {
			return m.in.Err()
		}
		switch choice {
		case "1":
			if !m.register(ctx) {
				return m.in.Err()
			}
		case "2":
			l, ok := m.login(ctx)
			if !ok {
				return m.in.Err()
			}
			if l != nil {
				m.session(ctx, l)
				return m.in.Err()
			}
		case "3":
			m.goodbye()
			return nil
		default:
			m.rejected.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) register(ctx context.Context) bool {
	id, ok, valid := m.promptID()
	if !ok || !valid {
		return ok
	}
	raw, ok := m.prompt("Enter initial balance: ")
	if !ok {
		return false
	}
	balance, err := decimal.NewFromString(raw)
	if err != nil {
		m.rejected.Fprintln(m.out, invalidNumber)
		return true
	}
	pin, ok := m.promptSecret("Enter a 4-digit PIN: ")
	if !ok {
		return false
	}
	out, err := m.svc.Register(ctx, id, balance, pin)
	m.report(out, err)
	return true
}

// login returns the authenticated ledger, or nil when login failed. ok is
// false once input has ended.
func (m *Menu) login(ctx context.Context) (l *ledger.Ledger, ok bool) {
	id, ok, valid := m.promptID()
	if !ok || !valid {
		return nil, ok
	}
	l, err := m.svc.Open(ctx, id)
	if err != nil {
		m.report(ledger.Outcome{}, err)
		return nil, true
	}
	if !l.Exists() {
		m.rejected.Fprintln(m.out, "Account not found. Please register first")
		return nil, true
	}
	if !l.HasPIN() {
		m.rejected.Fprintln(m.out, "No PIN set. Please set a PIN first")
		if !m.changePIN(ctx, l) {
			return nil, false
		}
		if !l.HasPIN() {
			return nil, true
		}
	}
	pin, ok := m.promptSecret("Please enter your PIN: ")
	if !ok {
		return nil, false
	}
	out := l.ValidatePIN(pin)
	m.report(out, nil)
	if out.Rejected() {
		return nil, true
	}
	return l, true
}

func (m *Menu) session(ctx context.Context, l *ledger.Ledger) {
	for {
		m.title.Fprintln(m.out, "\nATM System")
		fmt.Fprintln(m.out, "1. Check Balance")
		fmt.Fprintln(m.out, "2. Deposit Money")
		fmt.Fprintln(m.out, "3. Withdraw Money")
		fmt.Fprintln(m.out, "4. Generate/Change PIN")
		fmt.Fprintln(m.out, "5. Exit")

		choice, ok := m.prompt("Enter your choice (1-5): ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.accepted.Fprintln(m.out, l.CheckBalance())
		case "2":
			if !m.transact(ctx, "Enter the amount to deposit: ", l.Deposit) {
				return
			}
		case "3":
			if !m.transact(ctx, "Enter the amount to withdraw: ", l.Withdraw) {
				return
			}
		case "4":
			if !m.changePIN(ctx, l) {
				return
			}
		case "5":
			m.goodbye()
			return
		default:
			m.rejected.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) transact(
	ctx context.Context,
	label string,
	op func(context.Context, decimal.Decimal) (ledger.Outcome, error),
) bool {
	raw, ok := m.prompt(label)
	if !ok {
		return false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		m.rejected.Fprintln(m.out, invalidNumber)
		return true
	}
	m.report(op(ctx, amount))
	return true
}

func (m *Menu) changePIN(ctx context.Context, l *ledger.Ledger) bool {
	pin, ok := m.promptSecret("Enter a new 4-digit PIN: ")
	if !ok {
		return false
	}
	m.report(l.SetPIN(ctx, pin))
	return true
}

func (m *Menu) report(out ledger.Outcome, err error) {
	switch {
	case err != nil && ledger.IsRejection(err):
		m.rejected.Fprintln(m.out, ledger.RejectionMessage(err))
	case err != nil:
		m.logger.Error("operation failed", "error", err)
		m.rejected.Fprintf(m.out, "Error: %v\n", err)
	case out.Accepted():
		m.accepted.Fprintln(m.out, out.Message)
	default:
		m.rejected.Fprintln(m.out, out.Message)
	}
}

func (m *Menu) goodbye() {
	fmt.Fprintln(m.out, "Thank you for using the ATM. Goodbye!")
}

// promptID reads a user id. valid is false when the input was not a number.
func (m *Menu) promptID() (id int64, ok, valid bool) {
	raw, ok := m.prompt("Enter user ID: ")
	if !ok {
		return 0, false, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		m.rejected.Fprintln(m.out, invalidNumber)
		return 0, true, false
	}
	return id, true, true
}

func (m *Menu) prompt(label string) (string, bool) {
	line, ok := m.readLine(label)
	return strings.TrimSpace(line), ok
}

func (m *Menu) readLine(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSuffix(m.in.Text(), "\r"), true
}

// promptSecret reads a PIN verbatim; surrounding spaces make it invalid.
func (m *Menu) promptSecret(label string) (string, bool) {
	if m.secretFd < 0 {
		return m.readLine(label)
	}
	fmt.Fprint(m.out, label)
	b, err := term.ReadPassword(m.secretFd)
	fmt.Fprintln(m.out)
	if err != nil {
		return "", false
	}
	return string(b), true
}
