// Package points implements the daily gamification score over nutrition
// progress, with debounced persistence and day rollover.
package points

import "github.com/fitweek/fitweek/internal/nutrition"

// Each nutrient has a fixed point budget split across four progress
// thresholds. Reaching a threshold awards its tier cumulatively, so meeting
// the full target collects the whole budget.
var progressThresholds = [4]float64{25, 50, 75, 100}

var (
	caloriesTiers = [4]int{7, 8, 7, 8} // 30 total
	proteinTiers  = [4]int{6, 6, 6, 7} // 25 total
	carbsTiers    = [4]int{4, 4, 3, 4} // 15 total
	fatTiers      = [4]int{3, 2, 2, 3} // 10 total
)

const (
	perfectDayBonus = 10
	maxScore        = 100
)

// Score computes the bounded daily score for the given progress. The four
// budgets total 80, so a fully met day scores 90 with the bonus; the 100
// ceiling only matters as a clamp.
func Score(progress nutrition.Progress) int {
	score := nutrientPoints(progress.Totals.Calories, progress.Goals.Calories, caloriesTiers) +
		nutrientPoints(progress.Totals.Protein, progress.Goals.Protein, proteinTiers) +
		nutrientPoints(progress.Totals.Carbs, progress.Goals.Carbs, carbsTiers) +
		nutrientPoints(progress.Totals.Fat, progress.Goals.Fat, fatTiers)

	if isPerfectDay(progress) {
		score += perfectDayBonus
	}
	score -= unhealthyPenalty(progress.UnhealthyCount)

	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

func nutrientPoints(actual, target float64, tiers [4]int) int {
	if target <= 0 {
		return 0
	}
	percent := actual / target * 100
	points := 0
	for i, threshold := range progressThresholds {
		if percent >= threshold {
			points += tiers[i]
		}
	}
	return points
}

func isPerfectDay(progress nutrition.Progress) bool {
	return metTarget(progress.Totals.Calories, progress.Goals.Calories) &&
		metTarget(progress.Totals.Protein, progress.Goals.Protein) &&
		metTarget(progress.Totals.Carbs, progress.Goals.Carbs) &&
		metTarget(progress.Totals.Fat, progress.Goals.Fat)
}

func metTarget(actual, target float64) bool {
	return target > 0 && actual >= target
}

// unhealthyPenalty maps the unhealthy-entry count to a score penalty. The
// mapping is deliberately non-linear: repeated indulgence costs more than a
// single lapse.
func unhealthyPenalty(count int) int {
	switch {
	case count <= 0:
		return 0
	case count == 1:
		return 2
	case count == 2:
		return 5
	default:
		return 10
	}
}
