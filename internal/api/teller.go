package api

import (
	"bank_account/internal/domain" // Importing domain models
	"sync"                         // Serializes access to the account
	"time"                         // Timestamps in views

	"github.com/sirupsen/logrus" // Logging library
)

// DepositRequest represents a deposit request
type DepositRequest struct {
	Amount float64 `json:"amount"` // Deposit amount
}

// WithdrawRequest represents a withdraw request
type WithdrawRequest struct {
	Amount float64 `json:"amount"` // Withdraw amount
}

// InterestRateRequest represents an interest rate change request
type InterestRateRequest struct {
	Rate float64 `json:"rate"` // New interest rate
}

// Response is returned by every successful teller operation
type Response struct {
	Message       string  `json:"message"`                  // Human readable outcome
	AccountNumber int     `json:"account_number"`           // Account the operation ran on
	Balance       float64 `json:"balance"`                  // Balance after the operation
	InterestRate  float64 `json:"interest_rate"`            // Interest rate after the operation
	TransactionID int     `json:"transaction_id,omitempty"` // Ledger entry written, if any
}

// EntryView is a serializable copy of one ledger entry
type EntryView struct {
	ID        int       `json:"id"`        // Ledger position
	Timestamp time.Time `json:"timestamp"` // Time of the entry
	Message   string    `json:"message"`   // Transaction message
	Amount    float64   `json:"amount"`    // Signed amount
}

// Teller serves requests against a single account. It is safe for concurrent use.
type Teller struct {
	mu      sync.Mutex         // Guards every call into acc
	acc     domain.Account     // The account being served
	log     logrus.FieldLogger // Structured logger
	nowFunc func() time.Time   // Clock used for log timestamps
}

// NewTeller wraps acc. A nil logger falls back to the logrus standard logger.
func NewTeller(acc domain.Account, log logrus.FieldLogger) *Teller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Teller{acc: acc, log: log, nowFunc: time.Now}
}

// Deposit adds funds to the account
func (t *Teller) Deposit(req DepositRequest) (Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.acc.Deposit(req.Amount); err != nil {
		t.reject("deposit", req.Amount, err) // Log rejected deposit
		return Response{}, err
	}
	return t.accept("deposit", req.Amount, "Deposit successful"), nil
}

// Withdraw removes funds from the account
func (t *Teller) Withdraw(req WithdrawRequest) (Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.acc.Withdraw(req.Amount); err != nil {
		t.reject("withdraw", req.Amount, err) // Log rejected withdraw
		return Response{}, err
	}
	return t.accept("withdraw", req.Amount, "Withdraw successful"), nil
}

// SetInterestRate changes the account's interest rate
func (t *Teller) SetInterestRate(req InterestRateRequest) (Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.acc.SetInterestRate(req.Rate); err != nil {
		t.reject("interest_rate", req.Rate, err) // Log rejected rate change
		return Response{}, err
	}
	return t.accept("interest_rate", req.Rate, "Interest rate changed"), nil
}

// Balance reports the current state without touching the ledger
func (t *Teller) Balance() Response {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot("Balance")
}

// Ledger returns the account's transactions in order
func (t *Teller) Ledger() []EntryView {
	t.mu.Lock()
	defer t.mu.Unlock()
	txs := t.acc.Transactions()
	out := make([]EntryView, 0, len(txs))
	for _, tr := range txs {
		out = append(out, EntryView{
			ID:        tr.ID(),
			Timestamp: tr.Timestamp(),
			Message:   tr.Message(),
			Amount:    tr.Amount(),
		})
	}
	return out
}

// snapshot builds a Response from the current account state. Caller holds mu.
func (t *Teller) snapshot(message string) Response {
	return Response{
		Message:       message,
		AccountNumber: t.acc.AccountNumber(),
		Balance:       t.acc.Balance(),
		InterestRate:  t.acc.InterestRate(),
	}
}

// accept logs a successful mutation and reports the entry it wrote. Caller holds mu.
func (t *Teller) accept(kind string, amount float64, message string) Response {
	resp := t.snapshot(message)
	if txs := t.acc.Transactions(); len(txs) > 0 {
		resp.TransactionID = txs[len(txs)-1].ID()
	}
	t.log.WithFields(logrus.Fields{
		"account_number": resp.AccountNumber,               // Account number
		"amount":         amount,                           // Requested amount or rate
		"type":           kind,                             // Transaction type
		"balance":        resp.Balance,                     // Balance after the operation
		"transaction_id": resp.TransactionID,               // Ledger entry written
		"timestamp":      t.nowFunc().Format(time.RFC3339), // Current timestamp
	}).Info("Account transaction") // Log success
	return resp
}

// reject logs a request the account refused. Caller holds mu.
func (t *Teller) reject(kind string, amount float64, err error) {
	t.log.WithFields(logrus.Fields{
		"account_number": t.acc.AccountNumber(), // Account number
		"amount":         amount,                // Requested amount or rate
		"type":           kind,                  // Transaction type
		"error":          err.Error(),           // Error message
	}).Warn("Account transaction rejected") // Log failure
}
