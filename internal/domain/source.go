package domain

import "strings"

// TableKind identifies one of the fixed source tables of the export.
type TableKind string

const (
	TableAccounts          TableKind = "accounts"
	TableExpenseCategories TableKind = "expenseCategories"
	TableIncomeCategories  TableKind = "incomeCategories"
	TableExpenses          TableKind = "expenses"
	TableIncomes           TableKind = "incomes"
	TableTransfers         TableKind = "transfers"
	TableGoals             TableKind = "goals"
)

// TableKinds lists every source table in the order they are read.
var TableKinds = []TableKind{
	TableAccounts,
	TableExpenseCategories,
	TableIncomeCategories,
	TableExpenses,
	TableIncomes,
	TableTransfers,
	TableGoals,
}

// Column names used by the export.
const (
	ColName           = "Name"
	ColAccountType    = "Account Type"
	ColCurrentBalance = "Current Balance"
	ColMonthlyBudget  = "Monthly Budget"
	ColAmount         = "Amount"
	ColAccount        = "Account"
	ColCategory       = "Category"
	ColDate           = "Date"
	ColNotes          = "Notes"
	ColTransferAmount = "Transfer Amount"
	ColFrom           = "From"
	ColTo             = "To"
	ColTargetAmount   = "Target Amount"
	ColCurrentSavings = "Current Savings"
	ColTargetDate     = "Target Date"
	ColStartDate      = "Start Date"
	ColAchieved       = "Achieved"
)

// RequiredColumns is the header schema every present source file must satisfy.
var RequiredColumns = map[TableKind][]string{
	TableAccounts:          {ColName, ColCurrentBalance},
	TableExpenseCategories: {ColName, ColMonthlyBudget},
	TableIncomeCategories:  {ColName},
	TableExpenses:          {ColName, ColAmount, ColAccount, ColCategory, ColDate},
	TableIncomes:           {ColName, ColAmount, ColAccount, ColCategory, ColDate},
	TableTransfers:         {ColTransferAmount, ColFrom, ColTo, ColDate},
	TableGoals:             {ColName, ColTargetAmount, ColCurrentSavings, ColTargetDate, ColStartDate},
}

// Row is one source record keyed by trimmed column name.
type Row map[string]string

// Get returns the raw cell for column, or "" when the column is absent.
func (r Row) Get(column string) string {
	return r[column]
}

// Table is a fully loaded source file.
type Table struct {
	Kind   TableKind
	File   string
	Header []string
	Rows   []Row
}

// MissingColumns returns the required columns absent from the table header.
func (t *Table) MissingColumns() []string {
	present := make(map[string]bool, len(t.Header))
	for _, h := range t.Header {
		present[strings.TrimSpace(h)] = true
	}

	var missing []string
	for _, col := range RequiredColumns[t.Kind] {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// SourceTables holds the rows of every source table for one conversion run.
type SourceTables struct {
	Accounts          []Row
	ExpenseCategories []Row
	IncomeCategories  []Row
	Expenses          []Row
	Incomes           []Row
	Transfers         []Row
	Goals             []Row
}

// Set stores rows under the field matching kind.
func (s *SourceTables) Set(kind TableKind, rows []Row) {
	switch kind {
	case TableAccounts:
		s.Accounts = rows
	case TableExpenseCategories:
		s.ExpenseCategories = rows
	case TableIncomeCategories:
		s.IncomeCategories = rows
	case TableExpenses:
		s.Expenses = rows
	case TableIncomes:
		s.Incomes = rows
	case TableTransfers:
		s.Transfers = rows
	case TableGoals:
		s.Goals = rows
	}
}
