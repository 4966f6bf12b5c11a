package points_test

import (
	"testing"

	"github.com/fitweek/fitweek/internal/nutrition"
	"github.com/fitweek/fitweek/internal/points"
)

func progressWith(percent float64, unhealthy int) nutrition.Progress {
	goals := nutrition.DefaultGoals()
	return nutrition.Progress{
		Totals: nutrition.Totals{
			Calories: goals.Calories * percent / 100,
			Protein:  goals.Protein * percent / 100,
			Carbs:    goals.Carbs * percent / 100,
			Fat:      goals.Fat * percent / 100,
		},
		Goals:          goals,
		UnhealthyCount: unhealthy,
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		progress nutrition.Progress
		want     int
	}{
		{
			name:     "meeting every target collects every budget plus the bonus",
			progress: progressWith(100, 0),
			want:     90, // 30+25+15+10 plus the perfect day bonus
		},
		{
			name:     "no progress scores zero",
			progress: progressWith(0, 0),
			want:     0,
		},
		{
			name:     "penalty never drives the score negative",
			progress: progressWith(0, 3),
			want:     0,
		},
		{
			name:     "quarter progress awards the first tier of each budget",
			progress: progressWith(25, 0),
			want:     7 + 6 + 4 + 3,
		},
		{
			name:     "half progress awards two tiers of each budget",
			progress: progressWith(50, 0),
			want:     15 + 12 + 8 + 5,
		},
		{
			name:     "overshooting the targets awards nothing extra",
			progress: progressWith(250, 0),
			want:     90,
		},
		{
			name:     "a single lapse costs two points",
			progress: progressWith(100, 1),
			want:     88,
		},
		{
			name:     "two lapses cost five points",
			progress: progressWith(100, 2),
			want:     85,
		},
		{
			name:     "three or more lapses cost ten points",
			progress: progressWith(100, 5),
			want:     80,
		},
		{
			name: "uneven progress scores each nutrient separately",
			progress: nutrition.Progress{
				Totals: nutrition.Totals{
					Calories: 2000, // 100% of target: 30
					Protein:  75,   // 50%: 12
					Carbs:    0,    // 0
					Fat:      17.5, // 25%: 3
				},
				Goals: nutrition.DefaultGoals(),
			},
			want: 30 + 12 + 3,
		},
		{
			name: "zero targets award no points",
			progress: nutrition.Progress{
				Totals: nutrition.Totals{Calories: 500},
				Goals:  nutrition.Goals{},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := points.Score(tt.progress); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}
