package api

import (
	"errors"  // Sentinel errors
	"fmt"     // Error wrapping and formatting
	"math"    // Non-finite checks
	"strconv" // Argument parsing
	"strings" // Command tokenizing
)

// Command errors
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Usage lists the commands understood by Execute
const Usage = `commands:
  deposit <amount>   add funds
  withdraw <amount>  remove funds
  rate <value>       set the interest rate (0 to 0.10)
  balance            show balance and interest rate
  ledger             list all transactions
  help               show this message`

// Execute parses one command line and runs it against the account.
// Domain errors are returned unwrapped so callers can match them with errors.Is.
func (t *Teller) Execute(line string) (Response, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Response{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "deposit":
		amount, err := parseNumber(name, args)
		if err != nil {
			return Response{}, err
		}
		return t.Deposit(DepositRequest{Amount: amount})
	case "withdraw":
		amount, err := parseNumber(name, args)
		if err != nil {
			return Response{}, err
		}
		return t.Withdraw(WithdrawRequest{Amount: amount})
	case "rate":
		rate, err := parseNumber(name, args)
		if err != nil {
			return Response{}, err
		}
		return t.SetInterestRate(InterestRateRequest{Rate: rate})
	case "balance":
		return t.Balance(), nil
	case "ledger":
		return Response{Message: FormatLedger(t.Ledger())}, nil
	case "help":
		return Response{Message: Usage}, nil
	default:
		return Response{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
}

// parseNumber expects exactly one numeric argument
func parseNumber(cmd string, args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s takes exactly one number", ErrInvalidArgument, cmd)
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidArgument, args[0])
	}
	return v, nil
}

// FormatLedger renders ledger entries one per line
func FormatLedger(entries []EntryView) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "#%d %s %-22s %.2f", e.ID, e.Timestamp.Format("2006-01-02 15:04:05"), e.Message, e.Amount)
	}
	return b.String()
}

// String renders a response for terminal output
func (r Response) String() string {
	if r.AccountNumber == 0 {
		return r.Message
	}
	s := fmt.Sprintf("%s: account %d balance %.2f rate %.4f", r.Message, r.AccountNumber, r.Balance, r.InterestRate)
	if r.TransactionID > 0 {
		s += fmt.Sprintf(" (transaction #%d)", r.TransactionID)
	}
	return s
}
