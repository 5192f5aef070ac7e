package config

import (
	"os"      // For environment variables
	"strconv" // For string to number conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Defaults used when a variable is unset or cannot be parsed
const (
	DefaultAccountNumber = 1
	DefaultLogLevel      = "info"
)

// Config holds the application configuration
type Config struct {
	AccountNumber  int     // Number of the account opened at startup
	InitialBalance float64 // Opening balance of that account
	LogLevel       string  // logrus level name
	IsProd         bool    // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only
func FromEnv() *Config {
	accountNumber, err := strconv.Atoi(os.Getenv("ACCOUNT_NUMBER"))
	if err != nil {
		accountNumber = DefaultAccountNumber
	}
	initialBalance, err := strconv.ParseFloat(os.Getenv("INITIAL_BALANCE"), 64)
	if err != nil {
		initialBalance = 0
	}
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}
	return &Config{
		AccountNumber:  accountNumber,                  // Account number
		InitialBalance: initialBalance,                 // Opening balance
		LogLevel:       logLevel,                       // Log level
		IsProd:         os.Getenv("IS_PROD") == "true", // Is production environment
	}
}
