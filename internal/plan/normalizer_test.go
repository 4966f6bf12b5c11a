package plan_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fitweek/fitweek/internal/plan"
	"github.com/fitweek/fitweek/internal/ptr"
)

func TestNormalizeEntry(t *testing.T) {
	tests := []struct {
		name string
		in   plan.ExerciseEntry
		want plan.ExerciseEntry
	}{
		{
			name: "rest entry loses all workout data",
			in: plan.ExerciseEntry{
				Exercise:       "REST",
				Sets:           ptr.Ref(3),
				Reps:           ptr.Ref("8-12"),
				Notes:          "take it easy",
				VideoLink:      ptr.Ref("https://example.com"),
				CaloriesBurned: ptr.Ref(10.0),
			},
			want: plan.ExerciseEntry{
				Exercise: "REST",
				Notes:    "take it easy",
			},
		},
		{
			name: "to-failure reps become a moderate count",
			in: plan.ExerciseEntry{
				Exercise:       "Bicep Curl",
				Sets:           ptr.Ref(3),
				Reps:           ptr.Ref("3 sets to FAILURE"),
				CaloriesBurned: ptr.Ref(12.0),
			},
			want: plan.ExerciseEntry{
				Exercise:       "Bicep Curl",
				Sets:           ptr.Ref(3),
				Reps:           ptr.Ref("12"),
				CaloriesBurned: ptr.Ref(12.0),
			},
		},
		{
			name: "low calorie estimate clamps up to the normal band",
			in: plan.ExerciseEntry{
				Exercise:       "Squat",
				Sets:           ptr.Ref(4),
				Reps:           ptr.Ref("6-10"),
				CaloriesBurned: ptr.Ref(1.0),
			},
			want: plan.ExerciseEntry{
				Exercise:       "Squat",
				Sets:           ptr.Ref(4),
				Reps:           ptr.Ref("6-10"),
				CaloriesBurned: ptr.Ref(6.0),
			},
		},
		{
			name: "high calorie estimate clamps down to the normal band",
			in: plan.ExerciseEntry{
				Exercise:       "Burpees",
				Sets:           ptr.Ref(3),
				Reps:           ptr.Ref("15"),
				CaloriesBurned: ptr.Ref(500.0),
			},
			want: plan.ExerciseEntry{
				Exercise:       "Burpees",
				Sets:           ptr.Ref(3),
				Reps:           ptr.Ref("15"),
				CaloriesBurned: ptr.Ref(30.0),
			},
		},
		{
			name: "stretch entry clamps into the stretch band",
			in: plan.ExerciseEntry{
				Exercise:       "Hamstring Stretch",
				Sets:           ptr.Ref(1),
				Reps:           ptr.Ref("2 min"),
				CaloriesBurned: ptr.Ref(10.0),
			},
			want: plan.ExerciseEntry{
				Exercise:       "Hamstring Stretch",
				Sets:           ptr.Ref(1),
				Reps:           ptr.Ref("2 min"),
				CaloriesBurned: ptr.Ref(4.0),
			},
		},
		{
			name: "missing stretch calories default to the band midpoint",
			in: plan.ExerciseEntry{
				Exercise: "Yoga Flow",
				Sets:     ptr.Ref(1),
				Reps:     ptr.Ref("20 min"),
			},
			want: plan.ExerciseEntry{
				Exercise:       "Yoga Flow",
				Sets:           ptr.Ref(1),
				Reps:           ptr.Ref("20 min"),
				CaloriesBurned: ptr.Ref(3.0),
			},
		},
		{
			name: "missing fields are defaulted",
			in: plan.ExerciseEntry{
				Exercise: "  ",
			},
			want: plan.ExerciseEntry{
				Exercise:       "Unknown Exercise",
				Sets:           ptr.Ref(3),
				CaloriesBurned: ptr.Ref(15.0),
			},
		},
		{
			name: "well-formed entry is untouched",
			in: plan.ExerciseEntry{
				Exercise:       "Bench Press",
				Sets:           ptr.Ref(4),
				Reps:           ptr.Ref("8-12"),
				Notes:          "pause at the bottom",
				VideoLink:      ptr.Ref(plan.SearchURL("Bench Press")),
				CaloriesBurned: ptr.Ref(18.0),
			},
			want: plan.ExerciseEntry{
				Exercise:       "Bench Press",
				Sets:           ptr.Ref(4),
				Reps:           ptr.Ref("8-12"),
				Notes:          "pause at the bottom",
				VideoLink:      ptr.Ref(plan.SearchURL("Bench Press")),
				CaloriesBurned: ptr.Ref(18.0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plan.NormalizeEntry(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NormalizeEntry() mismatch (-want +got):\n%s", diff)
			}

			// Normalization must be idempotent.
			again := plan.NormalizeEntry(got)
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("NormalizeEntry() not idempotent (-first +second):\n%s", diff)
			}
		})
	}
}

func TestIsStretchType(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Hamstring Stretch", true},
		{"STRETCHING routine", true},
		{"Warm-Up", true},
		{"Cool-Down", true},
		{"Flexibility drills", true},
		{"Morning Yoga", true},
		{"Bench Press", false},
		{"Rest", false},
		{"Running", false},
	}

	for _, tt := range tests {
		if got := plan.IsStretchType(tt.name); got != tt.want {
			t.Errorf("IsStretchType(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
