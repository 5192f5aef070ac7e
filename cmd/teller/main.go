package main

import (
	"bank_account/internal/api"    // Teller command layer
	"bank_account/internal/config" // Custom package for configuration
	"bank_account/internal/domain" // Importing domain models
	"bufio"                        // Line scanning
	"fmt"                          // Output formatting
	"io"                           // Reader and writer interfaces
	"os"                           // Standard streams
	"strings"                      // Input trimming

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to open an account and serve commands from stdin
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	setupLogger(cfg)

	// Open the account served by this session
	acc, err := domain.NewBankAccountWithBalance(cfg.AccountNumber, cfg.InitialBalance)
	if err != nil {
		logrus.Fatalf("failed to open account: %v", err) // Fatal error if the configured account is invalid
	}
	logrus.WithFields(logrus.Fields{
		"account_number": acc.AccountNumber(), // Account number
		"balance":        acc.Balance(),       // Opening balance
		"interest_rate":  acc.InterestRate(),  // Default interest rate
	}).Info("Bank account opened")

	tl := api.NewTeller(acc, logrus.StandardLogger())
	if err := run(os.Stdin, os.Stdout, tl); err != nil {
		logrus.Fatalf("failed to read input: %v", err)
	}
}

// setupLogger applies the formatter and level from cfg to the standard logger
func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr) // Keep stdout for command output
}

// run reads commands from r until EOF or quit and writes each result to w
func run(r io.Reader, w io.Writer, tl *api.Teller) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue // Ignore blank lines
		case "quit", "exit":
			return nil
		}
		resp, err := tl.Execute(line)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(w, resp)
	}
	return scanner.Err()
}
