package domain

import "math" // Non-finite checks

const (
	DefaultInterestRate = 0.01 // Interest rate of a newly opened account
	MaxInterestRate     = 0.10 // Highest accepted interest rate
)

// Account is the capability contract consumed by callers of a bank account.
type Account interface {
	AccountNumber() int
	Balance() float64
	InterestRate() float64
	SetInterestRate(rate float64) error
	Transactions() []LedgerEntry
	Deposit(amount float64) error
	Withdraw(amount float64) error
}

// BankAccount Model
//
// BankAccount is not safe for concurrent use; callers sharing an account
// across goroutines must serialize access themselves.
type BankAccount struct {
	accountNumber int            // Fixed at construction
	balance       float64        // Never negative
	interestRate  float64        // Within [0, MaxInterestRate]
	transactions  []*Transaction // Append-only ledger
}

// NewBankAccount opens an account with a zero balance
func NewBankAccount(accountNumber int) (*BankAccount, error) {
	return NewBankAccountWithBalance(accountNumber, 0.0)
}

// NewBankAccountWithBalance opens an account and records its creation in the ledger
func NewBankAccountWithBalance(accountNumber int, initialBalance float64) (*BankAccount, error) {
	if accountNumber <= 0 {
		return nil, ErrInvalidAccountNumber
	}
	if !(initialBalance >= 0) || math.IsInf(initialBalance, 0) {
		return nil, ErrInvalidInitialBalance
	}
	a := &BankAccount{
		accountNumber: accountNumber,
		balance:       initialBalance,
		interestRate:  DefaultInterestRate, // Assigned directly, not recorded in the ledger
	}
	t, err := a.nextTransaction(MessageAccountCreated, a.balance)
	if err != nil {
		return nil, err
	}
	a.transactions = append(a.transactions, t)
	return a, nil
}

// AccountNumber returns the number fixed at construction
func (a *BankAccount) AccountNumber() int { return a.accountNumber }

// Balance returns the current balance
func (a *BankAccount) Balance() float64 { return a.balance }

// InterestRate returns the current interest rate
func (a *BankAccount) InterestRate() float64 { return a.interestRate }

// SetInterestRate changes the rate and records the new value in the ledger
func (a *BankAccount) SetInterestRate(rate float64) error {
	if !(rate >= 0 && rate <= MaxInterestRate) { // NaN fails both comparisons
		return ErrInvalidInterestRate
	}
	t, err := a.nextTransaction(MessageInterestRateChanged, rate)
	if err != nil {
		return err
	}
	a.interestRate = rate
	a.transactions = append(a.transactions, t)
	return nil
}

// Transactions returns a copy of the ledger in insertion order
func (a *BankAccount) Transactions() []LedgerEntry {
	out := make([]LedgerEntry, len(a.transactions))
	for i, t := range a.transactions {
		out[i] = t
	}
	return out
}

// Deposit adds amount to the balance
func (a *BankAccount) Deposit(amount float64) error {
	if !validAmount(amount) {
		return ErrInvalidAmount
	}
	t, err := a.nextTransaction(MessageDeposit, amount)
	if err != nil {
		return err
	}
	a.balance += amount
	a.transactions = append(a.transactions, t)
	return nil
}

// Withdraw removes amount from the balance and records it as a negative amount
func (a *BankAccount) Withdraw(amount float64) error {
	if !validAmount(amount) {
		return ErrInvalidAmount
	}
	if amount > a.balance {
		return ErrInsufficientFunds
	}
	t, err := a.nextTransaction(MessageWithdraw, -amount)
	if err != nil {
		return err
	}
	a.balance -= amount
	a.transactions = append(a.transactions, t)
	return nil
}

// nextTransaction builds the entry that would be appended next. It does not touch the ledger.
func (a *BankAccount) nextTransaction(message string, amount float64) (*Transaction, error) {
	return NewTransaction(len(a.transactions)+1, message, amount)
}

// validAmount reports whether amount is finite and greater than zero
func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 1)
}
