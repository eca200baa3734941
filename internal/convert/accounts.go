package convert

import (
	"strings"

	"notion-backup/internal/domain"
)

// accountTypeRule maps a lower-cased account name and source type to an account type.
type accountTypeRule struct {
	name  string
	match func(name, sourceType string, walletBrands []string) bool
	kind  domain.AccountType
}

// accountTypeRules are evaluated top to bottom; the first match wins.
var accountTypeRules = []accountTypeRule{
	{name: "cash in name", match: nameHasCash, kind: domain.AccountTypeCash},
	{name: "wallet brand in name", match: nameHasWalletBrand, kind: domain.AccountTypeWallet},
	{name: "wallet source type", match: sourceTypeIsWallet, kind: domain.AccountTypeWallet},
	{name: "checking or savings", match: sourceTypeIsBank, kind: domain.AccountTypeBank},
}

func nameHasCash(name, _ string, _ []string) bool {
	return strings.Contains(name, "cash")
}

func nameHasWalletBrand(name, _ string, walletBrands []string) bool {
	for _, brand := range walletBrands {
		if brand != "" && strings.Contains(name, strings.ToLower(brand)) {
			return true
		}
	}
	return false
}

func sourceTypeIsWallet(_, sourceType string, _ []string) bool {
	return strings.Contains(sourceType, "wallet")
}

func sourceTypeIsBank(_, sourceType string, _ []string) bool {
	return sourceType == "checking" || sourceType == "savings"
}

// InferAccountType classifies an account from its name and the exported "Account Type".
// Anything no rule recognises is a bank account.
func InferAccountType(name, sourceType string, walletBrands []string) domain.AccountType {
	name = strings.ToLower(strings.TrimSpace(name))
	sourceType = strings.ToLower(strings.TrimSpace(sourceType))
	for _, rule := range accountTypeRules {
		if rule.match(name, sourceType, walletBrands) {
			return rule.kind
		}
	}
	return domain.AccountTypeBank
}

// BuildAccounts turns account rows into accounts and a name index.
// When two rows share a name the later one owns the index entry.
func BuildAccounts(rows []domain.Row, opts Options, run RunContext, skipped domain.SkipTally) ([]domain.Account, NameIndex) {
	opts = opts.withDefaults()
	accounts := make([]domain.Account, 0, len(rows))
	index := make(NameIndex, len(rows))
	used := NewIDSet()

	for _, row := range rows {
		name := NormalizeText(row.Get(domain.ColName))
		if name == "" {
			skipped.Add(domain.EntityAccounts, domain.SkipMissingName)
			continue
		}

		balance, _ := ParseAmount(row.Get(domain.ColCurrentBalance))
		id := claim(used, PrefixAccount, Slugify(name))
		accounts = append(accounts, domain.Account{
			ID:        id,
			Name:      name,
			Type:      InferAccountType(name, row.Get(domain.ColAccountType), opts.WalletBrands),
			Balance:   balance,
			Currency:  opts.Currency,
			CreatedAt: run.Timestamp,
			UpdatedAt: run.Timestamp,
		})
		index[name] = id
	}
	return accounts, index
}
