package profile

import (
	"fmt"
	"strings"

	"github.com/fitweek/fitweek/internal/errors"
)

// ErrMissingFields is returned when the profile is too incomplete to request
// a workout plan. The caller gets a single aggregate error rather than
// per-field errors.
var ErrMissingFields = errors.NewSentinel("profile is missing required fields")

// Validate checks that the profile carries everything plan generation needs.
// PreferFewerRestDays is optional and defaults to false.
func Validate(p Profile) error {
	var missing []string
	if p.WeightKg <= 0 {
		missing = append(missing, "weight")
	}
	if p.Age <= 0 {
		missing = append(missing, "age")
	}
	if !p.ActivityLevel.Valid() {
		missing = append(missing, "activityLevel")
	}
	if !p.FitnessGoal.Valid() {
		missing = append(missing, "fitnessGoal")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}
