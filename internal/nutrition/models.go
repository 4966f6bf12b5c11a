// Package nutrition tracks logged food entries and daily macro goals.
package nutrition

import (
	"time"

	"github.com/fitweek/fitweek/internal/keywords"
)

// FoodEntry is a single logged food item with its macros.
type FoodEntry struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
}

// Totals are the summed macros of a day's entries.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Goals are the user's daily macro targets.
type Goals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DefaultGoals are used until the user sets their own targets.
func DefaultGoals() Goals {
	return Goals{
		Calories: 2000,
		Protein:  150,
		Carbs:    250,
		Fat:      70,
	}
}

// Progress is a day's totals against the goals, plus the count of unhealthy
// entries. It is derived on demand and never persisted.
type Progress struct {
	Totals         Totals `json:"totals"`
	Goals          Goals  `json:"goals"`
	UnhealthyCount int    `json:"unhealthyCount"`
}

var unhealthyKeywords = keywords.NewSet(
	"fried", "chips", "soda", "candy", "fast food",
	"pizza", "burger", "donut", "milkshake", "ice cream",
)

// IsUnhealthy reports whether a food name keyword-matches the unhealthy list.
func IsUnhealthy(name string) bool {
	return unhealthyKeywords.MatchesAny(name)
}
