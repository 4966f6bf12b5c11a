// Package plan implements the weekly workout plan pipeline: generation
// through a text-completion service, normalization of the raw candidate, and
// a consistency check before the plan is delivered.
package plan

import "strings"

// ExerciseEntry is a single exercise slot in a day's workout.
//
// "Rest" is a reserved sentinel name: a rest entry carries no sets, reps,
// calories, or video link.
type ExerciseEntry struct {
	Exercise       string   `json:"exercise"`
	Sets           *int     `json:"sets"`
	Reps           *string  `json:"reps"`
	Notes          string   `json:"notes"`
	VideoLink      *string  `json:"videoLink"`
	CaloriesBurned *float64 `json:"caloriesBurned"`
}

// IsRest reports whether the entry is the reserved Rest sentinel.
func (e ExerciseEntry) IsRest() bool {
	return strings.EqualFold(strings.TrimSpace(e.Exercise), "rest")
}

// WeeklyPlan is a full Monday-to-Sunday workout plan. Every day must map to a
// non-empty ordered list of entries; the consistency checker enforces this.
type WeeklyPlan struct {
	Monday    []ExerciseEntry `json:"Monday"`
	Tuesday   []ExerciseEntry `json:"Tuesday"`
	Wednesday []ExerciseEntry `json:"Wednesday"`
	Thursday  []ExerciseEntry `json:"Thursday"`
	Friday    []ExerciseEntry `json:"Friday"`
	Saturday  []ExerciseEntry `json:"Saturday"`
	Sunday    []ExerciseEntry `json:"Sunday"`
}

// namedDay pairs a weekday name with a mutable reference to its entries so
// the pipeline passes can iterate the week in order.
type namedDay struct {
	name    string
	entries *[]ExerciseEntry
}

func (p *WeeklyPlan) daysInOrder() []namedDay {
	return []namedDay{
		{name: "Monday", entries: &p.Monday},
		{name: "Tuesday", entries: &p.Tuesday},
		{name: "Wednesday", entries: &p.Wednesday},
		{name: "Thursday", entries: &p.Thursday},
		{name: "Friday", entries: &p.Friday},
		{name: "Saturday", entries: &p.Saturday},
		{name: "Sunday", entries: &p.Sunday},
	}
}

// Day returns the entries for the named weekday, matching case-insensitively.
func (p *WeeklyPlan) Day(name string) ([]ExerciseEntry, bool) {
	for _, day := range p.daysInOrder() {
		if strings.EqualFold(day.name, name) {
			return *day.entries, true
		}
	}
	return nil, false
}

const videoSearchURLPrefix = "https://www.youtube.com/results?search_query="

// SearchURL builds the canonical tutorial search link for an exercise name.
// The exact shape is part of the delivered plan contract.
func SearchURL(exerciseName string) string {
	return videoSearchURLPrefix + strings.ReplaceAll(exerciseName, " ", "+") + "+tutorial"
}
