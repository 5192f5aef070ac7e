package domain

import "time" // Transaction timestamps

// Ledger messages recorded by BankAccount
const (
	MessageAccountCreated      = "Bank Account Created"
	MessageDeposit             = "Deposit"
	MessageWithdraw            = "Withdraw"
	MessageInterestRateChanged = "Interest Rate changed"
)

// LedgerEntry is the read-only view of one transaction in an account ledger.
type LedgerEntry interface {
	ID() int
	Timestamp() time.Time
	Message() string
	Amount() float64
}

// Transaction Model. Immutable once constructed.
type Transaction struct {
	id        int       // Position in the owning ledger, starting at 1
	timestamp time.Time // Time of construction
	message   string    // Human readable description
	amount    float64   // Signed amount: negative for withdrawals
}

// NewTransaction validates the id and message and stamps the transaction with the current time
func NewTransaction(id int, message string, amount float64) (*Transaction, error) {
	if id <= 0 {
		return nil, ErrInvalidTransactionID
	}
	if message == "" {
		return nil, ErrInvalidTransactionMessage
	}
	return &Transaction{
		id:        id,
		timestamp: time.Now(),
		message:   message,
		amount:    amount,
	}, nil
}

// ID returns the position of the transaction in its ledger
func (t *Transaction) ID() int { return t.id }

// Timestamp returns the time the transaction was created
func (t *Transaction) Timestamp() time.Time { return t.timestamp }

// Message returns the transaction description
func (t *Transaction) Message() string { return t.message }

// Amount returns the signed amount
func (t *Transaction) Amount() float64 { return t.amount }
