package account

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const pinLength = 4

var (
	// ErrInvalidPIN is returned when a new PIN is not exactly 4 ASCII digits.
	ErrInvalidPIN = errors.New("pin must be exactly 4 digits")

	// ErrNoPIN is returned when a PIN check is attempted before any PIN was set.
	ErrNoPIN = errors.New("no pin set")

	// ErrPINMismatch is returned when the entered PIN differs from the stored one.
	ErrPINMismatch = errors.New("invalid pin")
)

// IsValidPIN reports whether pin is exactly 4 ASCII decimal digits.
func IsValidPIN(pin string) bool {
	if len(pin) != pinLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

// HashPIN hashes a validated PIN with bcrypt. A cost below bcrypt.MinCost
// falls back to bcrypt.DefaultCost.
func HashPIN(pin string, cost int) (string, error) {
	if !IsValidPIN(pin) {
		return "", ErrInvalidPIN
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), cost)
	return string(bytes), err
}

// HasPIN reports whether a PIN has been set.
func (a *Account) HasPIN() bool {
	return a.PINHash != ""
}

// SetPIN replaces the PIN. The current PIN is kept when pin is malformed.
func (a *Account) SetPIN(pin string, cost int) error {
	hash, err := HashPIN(pin, cost)
	if err != nil {
		return err
	}
	a.PINHash = hash
	return nil
}

// CheckPIN compares entered with the stored PIN. Only a well formed PIN can
// match: bcrypt ignores input after a NUL byte and past 72 bytes.
func (a *Account) CheckPIN(entered string) error {
	if !a.HasPIN() {
		return ErrNoPIN
	}
	if !IsValidPIN(entered) {
		return ErrPINMismatch
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PINHash), []byte(entered)) != nil {
		return ErrPINMismatch
	}
	return nil
}
