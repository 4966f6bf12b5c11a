package plan

import (
	"fmt"
	"strings"

	"github.com/fitweek/fitweek/internal/profile"
	"github.com/fitweek/fitweek/internal/ptr"
)

const minExerciseNameLength = 3

// ConsistencyError is a fatal plan defect found by the checker. Reaching one
// means the generation contract was broken, so the plan is rejected rather
// than patched.
type ConsistencyError struct {
	Day    string
	Reason string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("inconsistent plan: %s: %s", e.Day, e.Reason)
}

// MinimumWorkoutDays returns how many workout days per week the activity
// level calls for. Preferring fewer rest days bumps the target by one, capped
// at six so there is always at least one rest day.
func MinimumWorkoutDays(level profile.ActivityLevel, preferFewerRestDays bool) int {
	days := map[profile.ActivityLevel]int{
		profile.ActivitySedentary:        3,
		profile.ActivityLightlyActive:    3,
		profile.ActivityModeratelyActive: 4,
		profile.ActivityVeryActive:       5,
		profile.ActivityExtraActive:      5,
	}[level]
	if preferFewerRestDays {
		days = min(days+1, 6)
	}
	return days
}

// Checker is the strict second pass over a normalized plan. Unlike the
// normalizer it can reject the plan outright.
type Checker struct {
	catalog *Catalog
}

// NewChecker creates a consistency checker backed by the given exercise
// catalog. A nil catalog disables the unknown-exercise warning.
func NewChecker(catalog *Catalog) *Checker {
	return &Checker{catalog: catalog}
}

// Check validates the normalized plan against the profile, repairing what it
// safely can in place. It returns soft warnings for anomalies that do not
// block delivery, and a ConsistencyError for defects that do.
func (c *Checker) Check(p *WeeklyPlan, prof profile.Profile) ([]string, error) {
	var warnings []string
	restDays := 0

	for _, day := range p.daysInOrder() {
		entries := *day.entries
		if len(entries) == 0 {
			return nil, &ConsistencyError{Day: day.name, Reason: "no exercises generated"}
		}
		if len(entries) == 1 && entries[0].IsRest() {
			restDays++
		}

		for i := range entries {
			entry := &entries[i]

			name := strings.TrimSpace(entry.Exercise)
			if !entry.IsRest() && len(name) < minExerciseNameLength {
				return nil, &ConsistencyError{
					Day:    day.name,
					Reason: fmt.Sprintf("exercise name %q is too short", entry.Exercise),
				}
			}

			if requiresVideoLink(name) {
				c.repairVideoLink(entry, day.name, &warnings)
			} else if entry.VideoLink != nil {
				entry.VideoLink = nil
			}

			if entry.IsRest() {
				entry.Sets = nil
				entry.Reps = nil
			}

			// A duration-based entry should not also carry a set count.
			if entry.Reps != nil && strings.Contains(strings.ToLower(*entry.Reps), "min") && entry.Sets != nil {
				entry.Sets = nil
			}

			if c.catalog != nil && !entry.IsRest() && !c.catalog.Contains(name) {
				warnings = append(warnings,
					fmt.Sprintf("%s: %q is not in the exercise catalog", day.name, name))
			}
		}
	}

	minimum := MinimumWorkoutDays(prof.ActivityLevel, prof.PreferFewerRestDays)
	if restDays > 7-minimum {
		warnings = append(warnings, fmt.Sprintf(
			"plan has %d rest days but the %s activity level calls for at least %d workout days",
			restDays, prof.ActivityLevel, minimum))
	}

	return warnings, nil
}

// requiresVideoLink reports whether an entry must carry a tutorial link.
// Rest, warm-up and cool-down match exactly; any stretch variant is exempt by
// substring.
func requiresVideoLink(name string) bool {
	lower := strings.ToLower(name)
	switch lower {
	case "rest", "warm-up", "cool-down":
		return false
	}
	return !strings.Contains(lower, "stretch")
}

// repairVideoLink fixes a missing or malformed required link. A value with no
// URL scheme is replaced with the canonical search URL; a value that is a URL
// with the wrong prefix is kept as-is and only flagged.
func (c *Checker) repairVideoLink(entry *ExerciseEntry, dayName string, warnings *[]string) {
	if entry.VideoLink != nil && strings.HasPrefix(*entry.VideoLink, videoSearchURLPrefix) {
		return
	}
	if entry.VideoLink == nil || !looksLikeURL(*entry.VideoLink) {
		entry.VideoLink = ptr.Ref(SearchURL(entry.Exercise))
		return
	}
	*warnings = append(*warnings,
		fmt.Sprintf("%s: %q links to an unexpected video URL", dayName, entry.Exercise))
}

func looksLikeURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
