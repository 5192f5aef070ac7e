package api

import (
	"strings"
	"testing"
	"time"

	"bank_account/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	tl, _ := newTeller(t, 100)

	tests := []struct {
		line    string
		balance float64
		rate    float64
		txID    int
	}{
		{"deposit 50", 150, 0.01, 2},
		{"  WITHDRAW   25 ", 125, 0.01, 3},
		{"rate 0.1", 125, 0.1, 4},
		{"balance", 125, 0.1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			resp, err := tl.Execute(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.balance, resp.Balance)
			assert.Equal(t, tt.rate, resp.InterestRate)
			assert.Equal(t, tt.txID, resp.TransactionID)
		})
	}
}

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		line    string
		wantErr error
	}{
		{"", ErrUnknownCommand},
		{"   ", ErrUnknownCommand},
		{"transfer 10", ErrUnknownCommand},
		{"deposit", ErrInvalidArgument},
		{"deposit ten", ErrInvalidArgument},
		{"withdraw 1 2", ErrInvalidArgument},
		{"rate", ErrInvalidArgument},
		{"rate NaN", ErrInvalidArgument},
		{"deposit NaN", ErrInvalidArgument},
		{"deposit +Inf", ErrInvalidArgument},
		{"withdraw NaN", ErrInvalidArgument},
		{"withdraw -inf", ErrInvalidArgument},
		{"deposit 0", domain.ErrInvalidAmount},
		{"withdraw -1", domain.ErrInvalidAmount},
		{"withdraw 10.01", domain.ErrInsufficientFunds},
		{"rate 0.101", domain.ErrInvalidInterestRate},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tl, _ := newTeller(t, 10)
			_, err := tl.Execute(tt.line)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, tl.Ledger(), 1)
			assert.Equal(t, 10.0, tl.Balance().Balance)
			assert.Equal(t, domain.DefaultInterestRate, tl.Balance().InterestRate)
		})
	}
}

func TestExecuteLedgerAndHelp(t *testing.T) {
	tl, _ := newTeller(t, 0)
	_, err := tl.Execute("deposit 23.45")
	require.NoError(t, err)

	resp, err := tl.Execute("ledger")
	require.NoError(t, err)
	lines := strings.Split(resp.Message, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "#1")
	assert.Contains(t, lines[0], "Bank Account Created")
	assert.Contains(t, lines[1], "Deposit")
	assert.Contains(t, lines[1], "23.45")
	assert.Equal(t, resp.Message, resp.String())

	resp, err = tl.Execute("help")
	require.NoError(t, err)
	assert.Equal(t, Usage, resp.Message)
}

func TestFormatLedger(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	out := FormatLedger([]EntryView{
		{ID: 1, Timestamp: ts, Message: "Bank Account Created", Amount: 0},
		{ID: 2, Timestamp: ts, Message: "Withdraw", Amount: -1.5},
	})

	assert.Equal(t, "#1 2024-05-06 07:08:09 Bank Account Created   0.00\n"+
		"#2 2024-05-06 07:08:09 Withdraw               -1.50", out)
	assert.Empty(t, FormatLedger(nil))
}

func TestResponseString(t *testing.T) {
	r := Response{Message: "Deposit successful", AccountNumber: 1, Balance: 23.45, InterestRate: 0.01, TransactionID: 2}
	assert.Equal(t, "Deposit successful: account 1 balance 23.45 rate 0.0100 (transaction #2)", r.String())

	r.TransactionID = 0
	assert.Equal(t, "Deposit successful: account 1 balance 23.45 rate 0.0100", r.String())
}
