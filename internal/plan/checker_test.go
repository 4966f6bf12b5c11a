package plan_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fitweek/fitweek/internal/plan"
	"github.com/fitweek/fitweek/internal/profile"
	"github.com/fitweek/fitweek/internal/ptr"
)

func workoutEntry(name string) plan.ExerciseEntry {
	return plan.ExerciseEntry{
		Exercise:       name,
		Sets:           ptr.Ref(3),
		Reps:           ptr.Ref("8-12"),
		VideoLink:      ptr.Ref(plan.SearchURL(name)),
		CaloriesBurned: ptr.Ref(15.0),
	}
}

func restDay() []plan.ExerciseEntry {
	return []plan.ExerciseEntry{{Exercise: "Rest"}}
}

// week builds a plan with the given number of workout days at the start of
// the week and rest days after.
func week(workoutDays int) *plan.WeeklyPlan {
	var days [7][]plan.ExerciseEntry
	for i := range days {
		if i < workoutDays {
			days[i] = []plan.ExerciseEntry{workoutEntry("Bench Press")}
		} else {
			days[i] = restDay()
		}
	}
	return &plan.WeeklyPlan{
		Monday:    days[0],
		Tuesday:   days[1],
		Wednesday: days[2],
		Thursday:  days[3],
		Friday:    days[4],
		Saturday:  days[5],
		Sunday:    days[6],
	}
}

func moderateProfile() profile.Profile {
	return profile.Profile{
		WeightKg:      80,
		Age:           30,
		ActivityLevel: profile.ActivityModeratelyActive,
		FitnessGoal:   profile.GoalMuscleBuilding,
	}
}

func TestCheck_ValidPlanPasses(t *testing.T) {
	checker := plan.NewChecker(plan.DefaultCatalog())

	warnings, err := checker.Check(week(4), moderateProfile())
	if err != nil {
		t.Fatalf("Check() unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Check() warnings = %v, want none", warnings)
	}
}

func TestCheck_EmptyDayIsFatal(t *testing.T) {
	checker := plan.NewChecker(plan.DefaultCatalog())

	p := week(4)
	p.Wednesday = nil

	_, err := checker.Check(p, moderateProfile())
	var consistencyErr *plan.ConsistencyError
	if !errors.As(err, &consistencyErr) {
		t.Fatalf("Check() error = %v, want ConsistencyError", err)
	}
	if consistencyErr.Day != "Wednesday" {
		t.Errorf("ConsistencyError.Day = %q, want Wednesday", consistencyErr.Day)
	}
}

func TestCheck_ShortNameIsFatal(t *testing.T) {
	checker := plan.NewChecker(plan.DefaultCatalog())

	p := week(4)
	p.Monday = append(p.Monday, workoutEntry("Ab"))

	_, err := checker.Check(p, moderateProfile())
	var consistencyErr *plan.ConsistencyError
	if !errors.As(err, &consistencyErr) {
		t.Fatalf("Check() error = %v, want ConsistencyError", err)
	}
	if !strings.Contains(consistencyErr.Reason, "too short") {
		t.Errorf("ConsistencyError.Reason = %q, want a too-short name reason", consistencyErr.Reason)
	}
}

func TestCheck_RepairsMissingVideoLink(t *testing.T) {
	checker := plan.NewChecker(plan.DefaultCatalog())

	p := week(4)
	entry := workoutEntry("Bench Press")
	entry.VideoLink = nil
	p.Monday = []plan.ExerciseEntry{entry}

	warnings, err := checker.Check(p, moderateProfile())
	if err != nil {
		t.Fatalf("Check() unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Check() warnings = %v, want none", warnings)
	}

	want := "https://www.youtube.com/results?search_query=Bench+Press+tutorial"
	if p.Monday[0].VideoLink == nil || *p.Monday[0].VideoLink != want {
		t.Errorf("videoLink = %v, want %q", p.Monday[0].VideoLink, want)
	}
}

func TestCheck_RepairsNonURLVideoLink(t *testing.T) {
	checker := plan.NewChecker(plan.DefaultCatalog())

	p := week(4)
	entry := workoutEntry("Squat")
	entry.VideoLink = ptr.Ref("search for squat videos")
	p.Monday = []plan.ExerciseEntry{entry}

	warnings, err := checker.Check(p, moderateProfile())
	if err != nil {
		t.Fatalf("Check() unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Check() warnings = %v, want none", warnings)
	}
	if p.Monday[0].VideoLink == nil || *p.Monday[0].VideoLink != plan.SearchURL("Squat") {
		t.Errorf("videoLink = %v, want repaired search URL", p.Monday[0].VideoLink)
	}
}

func TestCheck_WarnsOnWrongPrefixVideoLink(t *testing.T) {
	checker := plan.NewChecker(plan.DefaultCatalog())

	p := week(4)
	wrongLink := "https://vimeo.com/123456"
	entry := workoutEntry("Squat")
	entry.VideoLink = ptr.Ref(wrongLink)
	p.Monday = []plan.ExerciseEntry{entry}

	warnings, err := checker.Check(p, moderateProfile())
	if err != nil {
		t.Fatalf("Check() unexpected error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("Check() warnings = %v, want exactly one", warnings)
	}

	// A wrong-prefix link is flagged but deliberately not rewritten.
	if p.Monday[0].VideoLink == nil || *p.Monday[0].VideoLink != wrongLink {
		t.Errorf("videoLink = %v, want the original %q", p.Monday[0].VideoLink, wrongLink)
	}
}

func TestCheck_ClearsUnneededVideoLink(t *testing.T) {
	checker := plan.NewChecker(plan.DefaultCatalog())

	p := week(4)
	entry := plan.ExerciseEntry{
		Exercise:       "Hamstring Stretch",
		Sets:           ptr.Ref(1),
		Reps:           ptr.Ref("2 min"),
		VideoLink:      ptr.Ref(plan.SearchURL("Hamstring Stretch")),
		CaloriesBurned: ptr.Ref(3.0),
	}
	p.Monday = []plan.ExerciseEntry{entry}

	if _, err := checker.Check(p, moderateProfile()); err != nil {
		t.Fatalf("Check() unexpected error: %v", err)
	}
	if p.Monday[0].VideoLink != nil {
		t.Errorf("videoLink = %q, want nil for a stretch entry", *p.Monday[0].VideoLink)
	}
}

func TestCheck_ForcesRestAndDurationFields(t *testing.T) {
	checker := plan.NewChecker(plan.DefaultCatalog())

	p := week(4)
	p.Saturday = []plan.ExerciseEntry{{
		Exercise: "Rest",
		Sets:     ptr.Ref(3),
		Reps:     ptr.Ref("8-12"),
	}}
	duration := workoutEntry("Running")
	duration.Reps = ptr.Ref("30 min")
	p.Monday = []plan.ExerciseEntry{duration}

	if _, err := checker.Check(p, moderateProfile()); err != nil {
		t.Fatalf("Check() unexpected error: %v", err)
	}

	if p.Saturday[0].Sets != nil || p.Saturday[0].Reps != nil {
		t.Errorf("rest entry kept sets/reps: %+v", p.Saturday[0])
	}
	if p.Monday[0].Sets != nil {
		t.Errorf("duration entry kept sets = %d, want nil", *p.Monday[0].Sets)
	}
}

func TestCheck_TooManyRestDaysIsSoftWarning(t *testing.T) {
	checker := plan.NewChecker(plan.DefaultCatalog())

	prof := moderateProfile()
	prof.ActivityLevel = profile.ActivityVeryActive

	// 4 workout days is below the 5 a very active profile calls for.
	warnings, err := checker.Check(week(4), prof)
	if err != nil {
		t.Fatalf("Check() unexpected error: %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "rest days") {
		t.Errorf("Check() warnings = %v, want one rest-day warning", warnings)
	}
}

func TestCheck_UnknownExerciseIsSoftWarning(t *testing.T) {
	checker := plan.NewChecker(plan.DefaultCatalog())

	p := week(4)
	p.Monday = []plan.ExerciseEntry{workoutEntry("Underwater Basket Weaving")}

	warnings, err := checker.Check(p, moderateProfile())
	if err != nil {
		t.Fatalf("Check() unexpected error: %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "catalog") {
		t.Errorf("Check() warnings = %v, want one catalog warning", warnings)
	}
}

func TestMinimumWorkoutDays(t *testing.T) {
	tests := []struct {
		level               profile.ActivityLevel
		preferFewerRestDays bool
		want                int
	}{
		{profile.ActivitySedentary, false, 3},
		{profile.ActivityLightlyActive, false, 3},
		{profile.ActivityModeratelyActive, false, 4},
		{profile.ActivityVeryActive, false, 5},
		{profile.ActivityExtraActive, false, 5},
		{profile.ActivitySedentary, true, 4},
		{profile.ActivityVeryActive, true, 6},
		{profile.ActivityExtraActive, true, 6},
	}

	for _, tt := range tests {
		got := plan.MinimumWorkoutDays(tt.level, tt.preferFewerRestDays)
		if got != tt.want {
			t.Errorf("MinimumWorkoutDays(%s, %v) = %d, want %d",
				tt.level, tt.preferFewerRestDays, got, tt.want)
		}
	}
}
