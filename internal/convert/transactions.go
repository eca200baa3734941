package convert

import (
	"strings"

	"notion-backup/internal/domain"
)

// txnColumns describes where a source table keeps the parts of a transaction.
// A table with a counterparty column is a transfer and has no category.
type txnColumns struct {
	kind         domain.TransactionType
	prefix       string
	amount       string
	account      string
	counterparty string
	category     string
	notes        string
}

var (
	expenseColumns = txnColumns{
		kind:     domain.TransactionTypeExpense,
		prefix:   PrefixExpense,
		amount:   domain.ColAmount,
		account:  domain.ColAccount,
		category: domain.ColCategory,
		notes:    domain.ColNotes,
	}
	incomeColumns = txnColumns{
		kind:     domain.TransactionTypeIncome,
		prefix:   PrefixIncome,
		amount:   domain.ColAmount,
		account:  domain.ColAccount,
		category: domain.ColCategory,
		notes:    domain.ColNotes,
	}
	transferColumns = txnColumns{
		kind:         domain.TransactionTypeTransfer,
		prefix:       PrefixTransfer,
		amount:       domain.ColTransferAmount,
		account:      domain.ColFrom,
		counterparty: domain.ColTo,
	}
)

type txnBuilder struct {
	cols       txnColumns
	accounts   NameIndex
	categories NameIndex
	run        RunContext
	used       IDSet
}

// BuildExpenseTransactions converts expense rows whose account and expense category resolve.
func BuildExpenseTransactions(rows []domain.Row, accounts, categories NameIndex, run RunContext, skipped domain.SkipTally) []domain.Transaction {
	b := &txnBuilder{cols: expenseColumns, accounts: accounts, categories: categories, run: run, used: NewIDSet()}
	return b.buildAll(rows, skipped)
}

// BuildIncomeTransactions converts income rows whose account and income category resolve.
func BuildIncomeTransactions(rows []domain.Row, accounts, categories NameIndex, run RunContext, skipped domain.SkipTally) []domain.Transaction {
	b := &txnBuilder{cols: incomeColumns, accounts: accounts, categories: categories, run: run, used: NewIDSet()}
	return b.buildAll(rows, skipped)
}

// BuildTransferTransactions converts transfer rows whose "From" and "To" accounts both resolve.
// Both sides may name the same account.
func BuildTransferTransactions(rows []domain.Row, accounts NameIndex, run RunContext, skipped domain.SkipTally) []domain.Transaction {
	b := &txnBuilder{cols: transferColumns, accounts: accounts, run: run, used: NewIDSet()}
	return b.buildAll(rows, skipped)
}

func (b *txnBuilder) buildAll(rows []domain.Row, skipped domain.SkipTally) []domain.Transaction {
	txns := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txn, reason, ok := b.build(row)
		if !ok {
			skipped.Add(domain.EntityTransactions, reason)
			continue
		}
		txns = append(txns, txn)
	}
	return txns
}

// build converts one row, stopping at the first step that cannot produce a value.
func (b *txnBuilder) build(row domain.Row) (domain.Transaction, domain.SkipReason, bool) {
	amount, ok := ParseAmount(row.Get(b.cols.amount))
	if !ok || amount <= 0 {
		return domain.Transaction{}, domain.SkipInvalidAmount, false
	}

	accountName := ResolveReference(row.Get(b.cols.account))
	accountID, ok := b.accounts.Lookup(accountName)
	if !ok {
		return domain.Transaction{}, domain.SkipUnresolvedAccount, false
	}

	slugParts := []string{accountName}
	var counterpartyID, categoryID *string
	if b.cols.counterparty != "" {
		toName := ResolveReference(row.Get(b.cols.counterparty))
		toID, ok := b.accounts.Lookup(toName)
		if !ok {
			return domain.Transaction{}, domain.SkipUnresolvedAccount, false
		}
		counterpartyID = &toID
		slugParts = append(slugParts, toName)
	} else {
		catID, ok := b.categories.Lookup(ResolveReference(row.Get(b.cols.category)))
		if !ok {
			return domain.Transaction{}, domain.SkipUnresolvedCategory, false
		}
		categoryID = &catID
		slugParts = append(slugParts, NormalizeText(row.Get(domain.ColName)))
	}

	rawDate := row.Get(domain.ColDate)
	date, ok := ToInstant(rawDate, b.run.TargetMonth)
	if !ok {
		return domain.Transaction{}, domain.SkipInvalidDate, false
	}
	slugParts = append(slugParts, rawDate)

	var notes string
	if b.cols.notes != "" {
		notes = row.Get(b.cols.notes)
	}

	return domain.Transaction{
		ID:                    claim(b.used, b.cols.prefix, Slugify(strings.Join(slugParts, "-"))),
		Date:                  date,
		Type:                  b.cols.kind,
		Amount:                amount,
		AccountID:             accountID,
		CounterpartyAccountID: counterpartyID,
		CategoryID:            categoryID,
		Notes:                 DisplayNote(row.Get(domain.ColName), notes),
		Tags:                  []string{b.run.ImportTag},
		CreatedAt:             date,
		UpdatedAt:             date,
	}, "", true
}
