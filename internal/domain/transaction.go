package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidAmount indicates an unparseable amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates a zero or negative amount.
	ErrNegativeAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds indicates that the sender balance does not cover the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrSelfTransfer indicates a transfer where sender and receiver are the same account.
	ErrSelfTransfer = errors.New("cannot transfer to own account")
)

// TransactionKind is the direction of a transaction from the sender's perspective.
type TransactionKind string

// Supported transaction kinds.
const (
	KindDebit  TransactionKind = "debit"
	KindCredit TransactionKind = "credit"
)

// Transaction is an immutable record of a completed transfer.
// Amount is always the positive magnitude; direction is implied by
// sender/receiver and the viewing account.
type Transaction struct {
	ID          string          `json:"id"`
	SenderID    string          `json:"senderId"`
	ReceiverID  string          `json:"receiverId"`
	Amount      string          `json:"amount"`
	Kind        TransactionKind `json:"type"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"timestamp"`
}

// CreateTransferParams is the input data for a transfer request.
// The sender is always the currently authenticated account.
type CreateTransferParams struct {
	ReceiverID  string `json:"receiverId"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}
