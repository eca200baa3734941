package convert

import "notion-backup/internal/domain"

// BuildCategories turns category rows of one polarity into categories and a name index.
func BuildCategories(rows []domain.Row, kind domain.CategoryType, run RunContext, skipped domain.SkipTally) ([]domain.Category, NameIndex) {
	prefix := PrefixExpenseCategory
	if kind == domain.CategoryTypeIncome {
		prefix = PrefixIncomeCategory
	}

	categories := make([]domain.Category, 0, len(rows))
	index := make(NameIndex, len(rows))
	used := NewIDSet()

	for _, row := range rows {
		name := NormalizeText(row.Get(domain.ColName))
		if name == "" {
			skipped.Add(domain.EntityCategories, domain.SkipMissingName)
			continue
		}

		id := claim(used, prefix, Slugify(name))
		categories = append(categories, domain.Category{
			ID:        id,
			Name:      name,
			Type:      kind,
			CreatedAt: run.Timestamp,
			UpdatedAt: run.Timestamp,
		})
		index[name] = id
	}
	return categories, index
}
