package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v6"
	"github.com/ghodss/yaml"
	"github.com/joho/godotenv"

	"notion-backup/internal/domain"
)

// Config holds the settings of one conversion run.
type Config struct {
	SourceRoot      string   `json:"sourceRoot" env:"NOTION_BACKUP_SOURCE_ROOT"`
	BackendDir      string   `json:"backendDir" env:"NOTION_BACKUP_BACKEND_DIR"`
	OutputDir       string   `json:"outputDir" env:"NOTION_BACKUP_OUTPUT_DIR"`
	Currency        string   `json:"currency" env:"NOTION_BACKUP_CURRENCY"`
	ImportTagPrefix string   `json:"importTagPrefix" env:"NOTION_BACKUP_IMPORT_TAG_PREFIX"`
	WalletBrands    []string `json:"walletBrands" env:"NOTION_BACKUP_WALLET_BRANDS" envSeparator:","`
	LogLevel        string   `json:"logLevel" env:"NOTION_BACKUP_LOG_LEVEL"`
	Tables          Tables   `json:"tables"`
}

// Tables holds the export file name of every source table.
type Tables struct {
	Accounts          string `json:"accounts"`
	ExpenseCategories string `json:"expenseCategories"`
	IncomeCategories  string `json:"incomeCategories"`
	Expenses          string `json:"expenses"`
	Incomes           string `json:"incomes"`
	Transfers         string `json:"transfers"`
	Goals             string `json:"goals"`
}

// Default returns the settings used for anything not configured elsewhere.
func Default() Config {
	return Config{
		SourceRoot:      "notion-finance",
		BackendDir:      "Backend",
		OutputDir:       "data-imports",
		Currency:        "BDT",
		ImportTagPrefix: "notion-import",
		WalletBrands:    []string{"bkash"},
		LogLevel:        "info",
		Tables: Tables{
			Accounts:          "Accounts 27dafa332ea9811cb674fe2ae259752e_all.csv",
			ExpenseCategories: "Expense Categories 27dafa332ea9815d8feacb7303011bf2_all.csv",
			IncomeCategories:  "Income Categories 27dafa332ea9817495fad2b59c236338_all.csv",
			Expenses:          "Expenses 27dafa332ea981fe9979ef1782b08fcf_all.csv",
			Incomes:           "Incomes 27dafa332ea98179a326ede0adae6664_all.csv",
			Transfers:         "Transfers 27dafa332ea9814dad12eaa099856fa9_all.csv",
			Goals:             "Savings Goal 27dafa332ea98181b2c6c33c8c9c29a5_all.csv",
		},
	}
}

// Load reads the YAML file at path (skipped when path is empty), applies
// NOTION_BACKUP_* environment overrides and fills the rest from Default.
func Load(path string) (*Config, error) {
	cfg := Config{}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	if err := mergo.Merge(&cfg, Default()); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	return &cfg, nil
}

// LoadEnvFile exports the variables of a dotenv file that are not already set.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// TableFiles maps every source table to its configured file name.
func (c *Config) TableFiles() map[domain.TableKind]string {
	return map[domain.TableKind]string{
		domain.TableAccounts:          c.Tables.Accounts,
		domain.TableExpenseCategories: c.Tables.ExpenseCategories,
		domain.TableIncomeCategories:  c.Tables.IncomeCategories,
		domain.TableExpenses:          c.Tables.Expenses,
		domain.TableIncomes:           c.Tables.Incomes,
		domain.TableTransfers:         c.Tables.Transfers,
		domain.TableGoals:             c.Tables.Goals,
	}
}
