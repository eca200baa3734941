package convert

import "notion-backup/internal/domain"

// BuildBudgets emits one budget for the run's target month per expense
// category row declaring a non-zero "Monthly Budget".
func BuildBudgets(rows []domain.Row, categories NameIndex, run RunContext, skipped domain.SkipTally) []domain.Budget {
	budgets := make([]domain.Budget, 0)
	used := NewIDSet()

	for _, row := range rows {
		name := NormalizeText(row.Get(domain.ColName))
		if name == "" {
			continue
		}
		amount, ok := ParseAmount(row.Get(domain.ColMonthlyBudget))
		if !ok || amount == 0 {
			continue
		}
		categoryID, ok := categories.Lookup(name)
		if !ok {
			skipped.Add(domain.EntityBudgets, domain.SkipUnresolvedCategory)
			continue
		}

		budgets = append(budgets, domain.Budget{
			ID:         claim(used, PrefixBudget, Slugify(name)),
			Month:      run.TargetMonth,
			CategoryID: categoryID,
			Amount:     amount,
			CreatedAt:  run.Timestamp,
			UpdatedAt:  run.Timestamp,
		})
	}
	return budgets
}
