package domain

// AccountType classifies where the money of an account lives.
type AccountType string

const (
	AccountTypeCash   AccountType = "cash"
	AccountTypeWallet AccountType = "wallet"
	AccountTypeBank   AccountType = "bank"
)

// CategoryType is the polarity of a category: money going out or coming in.
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// TransactionType carries the direction of a transaction. Amounts are always positive.
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

// BackupVersion is the format version understood by the target importer.
const BackupVersion = 1

// Account represents a money container in the target application.
type Account struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	Balance   float64     `json:"balance"`
	Currency  string      `json:"currency"`
	Archived  bool        `json:"archived"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
}

// Category represents a flat expense or income category.
type Category struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	ParentID  *string      `json:"parentId"`
	Archived  bool         `json:"archived"`
	CreatedAt string       `json:"createdAt"`
	UpdatedAt string       `json:"updatedAt"`
}

// Budget is a monthly spending limit for one expense category.
type Budget struct {
	ID         string  `json:"id"`
	Month      string  `json:"month"` // YYYY-MM
	CategoryID string  `json:"categoryId"`
	Amount     float64 `json:"amount"`
	Spent      float64 `json:"spent"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// Transaction is the unified record for expenses, incomes and transfers.
// CounterpartyAccountID is only set for transfers, CategoryID only for the rest.
type Transaction struct {
	ID                    string          `json:"id"`
	Date                  string          `json:"date"`
	Type                  TransactionType `json:"type"`
	Amount                float64         `json:"amount"`
	AccountID             string          `json:"accountId"`
	CounterpartyAccountID *string         `json:"counterpartyAccountId"`
	CategoryID            *string         `json:"categoryId"`
	Notes                 *string         `json:"notes"`
	Tags                  []string        `json:"tags"`
	CreatedAt             string          `json:"createdAt"`
	UpdatedAt             string          `json:"updatedAt"`
}

// Goal is a savings goal.
type Goal struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	TargetAmount     float64 `json:"targetAmount"`
	TargetDate       *string `json:"targetDate"`
	CurrentAllocated float64 `json:"currentAllocated"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// Snapshot is reserved by the target schema. The converter never produces one.
type Snapshot struct{}

// BackupData groups every entity list of a backup document.
type BackupData struct {
	Accounts     []Account     `json:"accounts"`
	Categories   []Category    `json:"categories"`
	Budgets      []Budget      `json:"budgets"`
	Transactions []Transaction `json:"transactions"`
	Goals        []Goal        `json:"goals"`
	Snapshots    []Snapshot    `json:"snapshots"`
}

// Backup is the top-level document consumed by the target application's import.
type Backup struct {
	Version    int        `json:"version"`
	ExportedAt string     `json:"exportedAt"`
	Data       BackupData `json:"data"`
}
