package account_test

import (
	"math"
	"testing"
	"time"

	"github.com/amirasaad/atm/pkg/domain/account"
	"github.com/amirasaad/atm/pkg/money"
	"github.com/shopspring/decimal"
)

// FuzzAccountDeposit tests Account.Deposit invariants with random input.
func FuzzAccountDeposit(f *testing.F) {
	f.Add(int64(10000), 100.0)
	f.Add(int64(0), -50.0)
	f.Add(int64(500), 0.0)
	f.Add(int64(1), 1e12)
	f.Add(int64(1<<62), 1e17)
	f.Fuzz(func(t *testing.T, balance int64, amount float64) {
		if balance < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
			t.Skip()
		}
		acc, err := account.New().WithID(1).WithBalance(money.FromCents(balance)).Build()
		if err != nil {
			t.Skip()
		}
		m, err := account.ParseAmount(decimal.NewFromFloat(amount))
		if err != nil {
			t.Skip()
		}
		before := acc.Balance
		if err := acc.Deposit(m, account.Rules{}, time.Now()); err != nil {
			if !acc.Balance.Equals(before) {
				t.Errorf("rejected deposit changed balance: %v -> %v", before, acc.Balance)
			}
			return
		}
		if acc.Balance.IsNegative() {
			t.Errorf("balance is negative after deposit: %v (amount=%v)", acc.Balance, amount)
		}
		if got, want := acc.Balance.Amount(), before.Amount()+m.Amount(); got != want {
			t.Errorf("balance = %d, want %d", got, want)
		}
	})
}

// FuzzAccountWithdraw tests Account.Withdraw invariants with random input.
func FuzzAccountWithdraw(f *testing.F) {
	f.Add(int64(10000), 100.0)
	f.Add(int64(10000), 100.01)
	f.Add(int64(0), -50.0)
	f.Add(int64(500), 0.0)
	f.Fuzz(func(t *testing.T, balance int64, amount float64) {
		if balance < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
			t.Skip()
		}
		acc, err := account.New().WithID(1).WithBalance(money.FromCents(balance)).Build()
		if err != nil {
			t.Skip()
		}
		m, err := account.ParseAmount(decimal.NewFromFloat(amount))
		if err != nil {
			t.Skip()
		}
		before := acc.Balance
		if err := acc.Withdraw(m, account.Rules{}, time.Now()); err != nil {
			if !acc.Balance.Equals(before) {
				t.Errorf("rejected withdrawal changed balance: %v -> %v", before, acc.Balance)
			}
			return
		}
		if acc.Balance.IsNegative() {
			t.Errorf("balance is negative after withdrawal: %v (amount=%v)", acc.Balance, amount)
		}
		if got, want := acc.Balance.Amount(), before.Amount()-m.Amount(); got != want {
			t.Errorf("balance = %d, want %d", got, want)
		}
	})
}
