package domain

import "errors" // Sentinel errors

// Domain errors. The messages are part of the public contract and must not change.
var (
	ErrInvalidAccountNumber      = errors.New("Invalid Account Number")                  // accountNumber <= 0
	ErrInvalidInitialBalance     = errors.New("Invalid Initial Balance")                 // initialBalance < 0
	ErrInvalidInterestRate       = errors.New("Invalid Interest Rate")                   // rate outside [0, 0.10]
	ErrInvalidAmount             = errors.New("Amount must be greater than zero")        // amount <= 0
	ErrInsufficientFunds         = errors.New("Amount to withdraw exceeds the balance")  // amount > balance
	ErrInvalidTransactionID      = errors.New("Invalid Transaction Id")                  // id <= 0
	ErrInvalidTransactionMessage = errors.New("Transaction Message is missing or empty") // empty message
)
