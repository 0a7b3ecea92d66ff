package ledger

import (
	"errors"

	"github.com/amirasaad/atm/pkg/domain/account"
	"github.com/amirasaad/atm/pkg/repository"
)

// Status tags an Outcome as accepted or rejected.
type Status int

const (
	// StatusAccepted marks an operation whose effect was applied.
	StatusAccepted Status = iota + 1
	// StatusRejected marks an operation refused by a validation rule.
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome is the result of a ledger operation as shown to the user.
// A rejected Outcome carries the rule that refused it in Reason.
type Outcome struct {
	Status  Status
	Message string
	Reason  error
}

// Accept returns an accepted Outcome with the given display message.
func Accept(message string) Outcome {
	return Outcome{Status: StatusAccepted, Message: message}
}

// Reject returns a rejected Outcome for reason with its display message.
func Reject(reason error) Outcome {
	return Outcome{Status: StatusRejected, Message: RejectionMessage(reason), Reason: reason}
}

// Accepted reports whether the operation was applied.
func (o Outcome) Accepted() bool {
	return o.Status == StatusAccepted
}

// Rejected reports whether the operation was refused.
func (o Outcome) Rejected() bool {
	return o.Status == StatusRejected
}

func (o Outcome) String() string {
	return o.Message
}

var rejections = []struct {
	err     error
	message string
}{
	{account.ErrInvalidAmount, "Invalid amount. Please enter a positive number"},
	{account.ErrAmountPrecision, "Invalid amount. Please enter at most two decimal places"},
	{account.ErrAmountTooLarge, "Invalid amount. Amount exceeds the maximum supported value"},
	{account.ErrDenomination, "Invalid amount. Please enter a multiple of the allowed denomination"},
	{account.ErrInsufficientFunds, "Insufficient funds. Transaction declined"},
	{account.ErrInvalidPIN, "Invalid PIN. Please enter a 4-digit number"},
	{account.ErrNoPIN, "No PIN set. Please set a PIN first"},
	{account.ErrPINMismatch, "Invalid PIN. Access denied"},
	{account.ErrInvalidID, "Invalid user ID. Please enter a positive number"},
	{account.ErrNegativeBalance, "Invalid initial balance. Please enter a non-negative number"},
	{repository.ErrAlreadyExists, "User ID already exists"},
	{repository.ErrNotFound, "Account not found. Please register first"},
}

// IsRejection reports whether err is a validation rule violation rather than
// an infrastructure failure.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return true
		}
	}
	return false
}

// RejectionMessage returns the display message for a rule violation.
func RejectionMessage(err error) string {
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return r.message
		}
	}
	return "Request declined"
}
