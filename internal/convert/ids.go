package convert

import "fmt"

// Identifier prefixes, one scope per entity kind.
const (
	PrefixAccount         = "acct-notion"
	PrefixExpenseCategory = "cat-expense"
	PrefixIncomeCategory  = "cat-income"
	PrefixBudget          = "bdg-notion"
	PrefixExpense         = "txn-exp"
	PrefixIncome          = "txn-inc"
	PrefixTransfer        = "txn-xfer"
	PrefixGoal            = "goal-notion"
)

// IDSet holds the identifiers already handed out within one prefix scope.
type IDSet map[string]struct{}

// NewIDSet returns a set seeded with ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// MintID returns "prefix-base", or "prefix-base-n" with the smallest n >= 2
// not present in used. It never modifies used; the caller records the result.
func MintID(used IDSet, prefix, base string) string {
	candidate := fmt.Sprintf("%s-%s", prefix, base)
	for n := 2; used.Has(candidate); n++ {
		candidate = fmt.Sprintf("%s-%s-%d", prefix, base, n)
	}
	return candidate
}

// claim mints an identifier for base and records it in used.
func claim(used IDSet, prefix, base string) string {
	id := MintID(used, prefix, base)
	used.Add(id)
	return id
}
