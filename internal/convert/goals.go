package convert

import (
	"strings"

	"notion-backup/internal/domain"
)

// goalAchievedMarker is appended by Notion to the target date of reached goals.
const goalAchievedMarker = "Goal Achieved!"

// BuildGoals converts savings goal rows. An achieved goal with a target date
// reports that date as its last update; every other goal reports the run time.
func BuildGoals(rows []domain.Row, run RunContext, skipped domain.SkipTally) []domain.Goal {
	goals := make([]domain.Goal, 0, len(rows))
	used := NewIDSet()

	for _, row := range rows {
		name := NormalizeText(row.Get(domain.ColName))
		if name == "" {
			skipped.Add(domain.EntityGoals, domain.SkipMissingName)
			continue
		}

		targetAmount, _ := ParseAmount(row.Get(domain.ColTargetAmount))
		saved, _ := ParseAmount(row.Get(domain.ColCurrentSavings))

		var targetDate *string
		rawTarget := strings.ReplaceAll(row.Get(domain.ColTargetDate), goalAchievedMarker, "")
		if iso, ok := ToInstant(rawTarget, ""); ok {
			targetDate = &iso
		}

		createdAt, ok := ToInstant(row.Get(domain.ColStartDate), run.TargetMonth)
		if !ok {
			createdAt = MonthStart(run.TargetMonth)
		}

		updatedAt := run.Timestamp
		achieved := strings.ToLower(strings.TrimSpace(row.Get(domain.ColAchieved))) == "yes"
		if achieved && targetDate != nil {
			updatedAt = *targetDate
		}

		goals = append(goals, domain.Goal{
			ID:               claim(used, PrefixGoal, Slugify(name)),
			Name:             name,
			TargetAmount:     targetAmount,
			TargetDate:       targetDate,
			CurrentAllocated: saved,
			CreatedAt:        createdAt,
			UpdatedAt:        updatedAt,
		})
	}
	return goals
}
