package plan

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fitweek/fitweek/internal/keywords"
	"github.com/fitweek/fitweek/internal/ptr"
)

const (
	defaultSets         = 3
	fallbackReps        = "12"
	unknownExerciseName = "Unknown Exercise"
)

// Calorie bands per entry category. Stretch-type entries burn very little;
// everything else lands in the normal band.
const (
	stretchCaloriesMin     = 2
	stretchCaloriesMax     = 4
	stretchCaloriesDefault = 3
	normalCaloriesMin      = 6
	normalCaloriesMax      = 30
	normalCaloriesDefault  = 15
)

var stretchKeywords = keywords.NewSet(
	"stretch", "warm-up", "cool-down", "flexibility", "yoga",
)

// IsStretchType reports whether the exercise name marks a low-intensity
// stretch-type entry, by case-insensitive substring match against a fixed
// keyword set.
func IsStretchType(name string) bool {
	return stretchKeywords.MatchesAny(name)
}

// rawEntry mirrors ExerciseEntry but accepts whatever JSON types the
// completion service produced. Field-level type errors are repaired during
// decoding instead of failing the whole plan.
type rawEntry struct {
	Exercise       any `json:"exercise"`
	Sets           any `json:"sets"`
	Reps           any `json:"reps"`
	Notes          any `json:"notes"`
	VideoLink      any `json:"videoLink"`
	CaloriesBurned any `json:"caloriesBurned"`
}

type rawPlan struct {
	Monday    []rawEntry `json:"Monday"`
	Tuesday   []rawEntry `json:"Tuesday"`
	Wednesday []rawEntry `json:"Wednesday"`
	Thursday  []rawEntry `json:"Thursday"`
	Friday    []rawEntry `json:"Friday"`
	Saturday  []rawEntry `json:"Saturday"`
	Sunday    []rawEntry `json:"Sunday"`
}

// decodePlan parses a candidate plan leniently. The document must be valid
// JSON with the seven day keys, but entry fields of the wrong type are
// coerced rather than rejected.
func decodePlan(data []byte) (*WeeklyPlan, error) {
	var raw rawPlan
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode plan candidate: %w", err)
	}

	decodeDay := func(entries []rawEntry) []ExerciseEntry {
		day := make([]ExerciseEntry, 0, len(entries))
		for _, e := range entries {
			day = append(day, decodeEntry(e))
		}
		return day
	}

	return &WeeklyPlan{
		Monday:    decodeDay(raw.Monday),
		Tuesday:   decodeDay(raw.Tuesday),
		Wednesday: decodeDay(raw.Wednesday),
		Thursday:  decodeDay(raw.Thursday),
		Friday:    decodeDay(raw.Friday),
		Saturday:  decodeDay(raw.Saturday),
		Sunday:    decodeDay(raw.Sunday),
	}, nil
}

func decodeEntry(raw rawEntry) ExerciseEntry {
	return ExerciseEntry{
		Exercise:       stringOrEmpty(raw.Exercise),
		Sets:           intOrNil(raw.Sets),
		Reps:           stringOrNil(raw.Reps),
		Notes:          stringOrEmpty(raw.Notes),
		VideoLink:      stringOrNil(raw.VideoLink),
		CaloriesBurned: floatOrNil(raw.CaloriesBurned),
	}
}

func stringOrEmpty(v any) string {
	if s := stringOrNil(v); s != nil {
		return *s
	}
	return ""
}

func stringOrNil(v any) *string {
	switch s := v.(type) {
	case string:
		return ptr.Ref(s)
	case float64:
		return ptr.Ref(strconv.FormatFloat(s, 'f', -1, 64))
	default:
		return nil
	}
}

func intOrNil(v any) *int {
	switch n := v.(type) {
	case float64:
		return ptr.Ref(int(n))
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return nil
		}
		return ptr.Ref(parsed)
	default:
		return nil
	}
}

func floatOrNil(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return ptr.Ref(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil
		}
		return ptr.Ref(parsed)
	default:
		return nil
	}
}

// Normalize repairs every entry of the plan in place and returns the plan.
// It is total and idempotent: it never fails, and running it on an already
// normalized plan changes nothing.
func Normalize(p *WeeklyPlan) *WeeklyPlan {
	for _, day := range p.daysInOrder() {
		entries := *day.entries
		for i := range entries {
			entries[i] = NormalizeEntry(entries[i])
		}
	}
	return p
}

// NormalizeEntry applies the soft repair rules to a single entry. Harder
// violations are left for the consistency checker, which has a stricter
// failure policy.
func NormalizeEntry(e ExerciseEntry) ExerciseEntry {
	e.Exercise = strings.TrimSpace(e.Exercise)
	if e.Exercise == "" {
		e.Exercise = unknownExerciseName
	}

	// Rest carries no workout data at all.
	if e.IsRest() {
		e.Sets = nil
		e.Reps = nil
		e.CaloriesBurned = nil
		e.VideoLink = nil
		return e
	}

	// "To failure" is not a useful stored value.
	if e.Reps != nil && strings.Contains(strings.ToLower(*e.Reps), "failure") {
		e.Reps = ptr.Ref(fallbackReps)
	}

	if e.Sets == nil {
		e.Sets = ptr.Ref(defaultSets)
	}

	min, max, fallback := calorieBand(e.Exercise)
	if e.CaloriesBurned == nil {
		e.CaloriesBurned = ptr.Ref(fallback)
	} else {
		e.CaloriesBurned = ptr.Ref(clamp(*e.CaloriesBurned, min, max))
	}

	return e
}

func calorieBand(name string) (min, max, fallback float64) {
	if IsStretchType(name) {
		return stretchCaloriesMin, stretchCaloriesMax, stretchCaloriesDefault
	}
	return normalCaloriesMin, normalCaloriesMax, normalCaloriesDefault
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
