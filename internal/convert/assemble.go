package convert

import (
	"slices"
	"strings"
	"time"

	"notion-backup/internal/domain"
)

// Assemble runs every builder in dependency order and wraps the result in a
// backup document exported at now.
func Assemble(src domain.SourceTables, opts Options, now time.Time) (*domain.Backup, domain.Summary) {
	opts = opts.withDefaults()
	skipped := make(domain.SkipTally)

	targetMonth := InferTargetMonth(now, src.Expenses, src.Incomes, src.Transfers)
	run := NewRunContext(targetMonth, opts.ImportTagPrefix, now)

	accounts, accountIndex := BuildAccounts(src.Accounts, opts, run, skipped)
	expenseCategories, expenseIndex := BuildCategories(src.ExpenseCategories, domain.CategoryTypeExpense, run, skipped)
	incomeCategories, incomeIndex := BuildCategories(src.IncomeCategories, domain.CategoryTypeIncome, run, skipped)
	budgets := BuildBudgets(src.ExpenseCategories, expenseIndex, run, skipped)

	expenses := BuildExpenseTransactions(src.Expenses, accountIndex, expenseIndex, run, skipped)
	incomes := BuildIncomeTransactions(src.Incomes, accountIndex, incomeIndex, run, skipped)
	transfers := BuildTransferTransactions(src.Transfers, accountIndex, run, skipped)

	goals := BuildGoals(src.Goals, run, skipped)

	txns := make([]domain.Transaction, 0, len(expenses)+len(incomes)+len(transfers))
	txns = append(txns, expenses...)
	txns = append(txns, incomes...)
	txns = append(txns, transfers...)
	slices.SortStableFunc(txns, func(a, b domain.Transaction) int {
		return strings.Compare(a.Date, b.Date)
	})

	categories := make([]domain.Category, 0, len(expenseCategories)+len(incomeCategories))
	categories = append(categories, expenseCategories...)
	categories = append(categories, incomeCategories...)

	backup := &domain.Backup{
		Version:    domain.BackupVersion,
		ExportedAt: run.Timestamp,
		Data: domain.BackupData{
			Accounts:     accounts,
			Categories:   categories,
			Budgets:      budgets,
			Transactions: txns,
			Goals:        goals,
			Snapshots:    []domain.Snapshot{},
		},
	}

	summary := domain.Summary{
		TargetMonth: run.TargetMonth,
		ImportTag:   run.ImportTag,
		Accounts:    len(accounts),
		Categories:  len(categories),
		Budgets:     len(budgets),
		Txns:        len(txns),
		Goals:       len(goals),
		Skipped:     skipped,
	}
	return backup, summary
}
