package menu_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/amirasaad/atm/infra/repository/memory"
	"github.com/amirasaad/atm/internal/menu"
	"github.com/amirasaad/atm/pkg/config"
	"github.com/amirasaad/atm/pkg/ledger"
	"github.com/amirasaad/atm/pkg/repository"
	accountsvc "github.com/amirasaad/atm/pkg/service/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newService(t *testing.T, dir repository.Directory) *accountsvc.Service {
	t.Helper()
	svc, err := accountsvc.NewService(config.Deps{
		Directory: dir,
		Logger:    discard,
		Config:    &config.App{Ledger: &config.Ledger{PINCost: bcrypt.MinCost}},
	})
	require.NoError(t, err)
	return svc
}

func run(t *testing.T, svc menu.Service, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	m := menu.New(svc, in, &out, menu.WithoutColor(), menu.WithLogger(discard))
	require.NoError(t, m.Run(context.Background()))
	return out.String()
}

// assertInOrder checks that each want appears in got after the previous one.
func assertInOrder(t *testing.T, got string, wants ...string) {
	t.Helper()
	rest := got
	for _, want := range wants {
		i := strings.Index(rest, want)
		if !assert.GreaterOrEqual(t, i, 0, "missing %q after previous output", want) {
			return
		}
		rest = rest[i+len(want):]
	}
}

func TestMenu_RegisterLoginAndTransact(t *testing.T) {
	t.Parallel()
	dir := memory.New()
	out := run(t, newService(t, dir),
		"1", "7", "100.00", "1234",
		"2", "7", "1234",
		"1",
		"2", "50",
		"3", "30",
		"3", "500",
		"4", "12",
		"2", "abc",
		"9",
		"1",
		"5",
	)

	assertInOrder(t, out,
		"User registered successfully!",
		"PIN accepted",
		"Your current balance is: $100.00",
		"$50.00 has been deposited to your account",
		"$30.00 has been withdrawn from your account",
		"Insufficient funds. Transaction declined",
		"Invalid PIN. Please enter a 4-digit number",
		"Invalid input. Please enter a valid number",
		"Invalid choice. Please try again.",
		"Your current balance is: $120.00",
		"Thank you for using the ATM. Goodbye!",
	)

	rec, err := dir.Load(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(12000), rec.Balance)
}

func TestMenu_StartScreenRejections(t *testing.T) {
	t.Parallel()
	dir := memory.New()
	svc := newService(t, dir)
	_, err := svc.Register(context.Background(), 7, decimal.NewFromInt(10), "1234")
	require.NoError(t, err)

	out := run(t, svc,
		"1", "7", "5", "9999",
		"1", "abc",
		"1", "8", "ten",
		"2", "9",
		"2", "7", "0000",
		"2", "-1",
		"3",
	)

	assertInOrder(t, out,
		"User ID already exists",
		"Invalid input. Please enter a valid number",
		"Invalid input. Please enter a valid number",
		"Account not found. Please register first",
		"Invalid PIN. Access denied",
		"Invalid user ID. Please enter a positive number",
		"Thank you for using the ATM. Goodbye!",
	)
	assert.Equal(t, 1, dir.Len())
}

func TestMenu_FirstPIN(t *testing.T) {
	t.Parallel()
	svc := newService(t, memory.New())

	out := run(t, svc,
		"1", "3", "0", "",
		"2", "3", "5678", "5678",
		"1",
	)

	assertInOrder(t, out,
		"User registered successfully!",
		"No PIN set. Please set a PIN first",
		"Your PIN has been set/updated successfully",
		"PIN accepted",
		"Your current balance is: $0.00",
	)
}

func TestMenu_EndOfInput(t *testing.T) {
	t.Parallel()
	out := run(t, newService(t, memory.New()))
	assert.Contains(t, out, "Enter your choice (1-3): ")
	assert.NotContains(t, out, "Goodbye")
}

type failingService struct{}

func (failingService) Register(context.Context, int64, decimal.Decimal, string) (ledger.Outcome, error) {
	return ledger.Outcome{}, errors.New("database is locked")
}

func (failingService) Open(context.Context, int64) (*ledger.Ledger, error) {
	return nil, errors.New("database is locked")
}

func TestMenu_InfrastructureFailure(t *testing.T) {
	t.Parallel()
	out := run(t, failingService{},
		"1", "1", "10", "1234",
		"2", "1",
		"3",
	)
	assert.Equal(t, 2, strings.Count(out, "Error: database is locked"))
	assert.Contains(t, out, "Goodbye")
}
