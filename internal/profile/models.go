// Package profile manages the user fitness profile that drives plan generation.
package profile

// ActivityLevel describes how active the user already is.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtraActive      ActivityLevel = "extra_active"
)

// Valid reports whether the activity level is one of the known values.
func (l ActivityLevel) Valid() bool {
	switch l {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive,
		ActivityVeryActive, ActivityExtraActive:
		return true
	default:
		return false
	}
}

// Goal describes what the user wants out of their training.
type Goal string

const (
	GoalWeightLoss     Goal = "weight_loss"
	GoalWeightGain     Goal = "weight_gain"
	GoalMuscleBuilding Goal = "muscle_building"
	GoalRecomposition  Goal = "recomposition"
	GoalToning         Goal = "toning"
)

// Valid reports whether the goal is one of the known values.
func (g Goal) Valid() bool {
	switch g {
	case GoalWeightLoss, GoalWeightGain, GoalMuscleBuilding, GoalRecomposition, GoalToning:
		return true
	default:
		return false
	}
}

// Profile is the user fitness profile. It is read once per generation request
// and never mutated by the plan pipeline.
type Profile struct {
	WeightKg            float64       `json:"weightKg"`
	Age                 int           `json:"age"`
	ActivityLevel       ActivityLevel `json:"activityLevel"`
	FitnessGoal         Goal          `json:"fitnessGoal"`
	PreferFewerRestDays bool          `json:"preferFewerRestDays"`
}
