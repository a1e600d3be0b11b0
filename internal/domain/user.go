package domain

// Goal is a fitness-goal tag from the fixed set offered by the client UI.
type Goal string

// Define constants for goals
const (
	GoalLoseWeight          Goal = "lose_weight"
	GoalBuildMuscle         Goal = "build_muscle"
	GoalImproveEndurance    Goal = "improve_endurance"
	GoalIncreaseFlexibility Goal = "increase_flexibility"
	GoalGeneralFitness      Goal = "general_fitness"
)

// ValidGoals lists every goal tag the application accepts.
var ValidGoals = []Goal{
	GoalLoseWeight,
	GoalBuildMuscle,
	GoalImproveEndurance,
	GoalIncreaseFlexibility,
	GoalGeneralFitness,
}

// IsValidGoal reports whether g is one of the known goal tags.
func IsValidGoal(g Goal) bool {
	for _, v := range ValidGoals {
		if v == g {
			return true
		}
	}
	return false
}

// User represents the single locally-active account.
// Age, Weight and Height are optional profile attributes (height in inches,
// weight in pounds), each independently settable.
type User struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"passwordHash,omitempty"` // Never verified; login is fabricated by design.
	Age          *int        `json:"age,omitempty"`
	Weight       *float64    `json:"weight,omitempty"`
	Height       *float64    `json:"height,omitempty"`
	Goals        []Goal      `json:"goals,omitempty"`
	SavedPlans   []SavedPlan `json:"savedPlans"`
}

// ProfileUpdate carries the fields of a partial profile edit. Nil fields are
// left untouched by the merge.
type ProfileUpdate struct {
	Name   *string  `json:"name,omitempty"`
	Email  *string  `json:"email,omitempty"`
	Age    *int     `json:"age,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Goals  *[]Goal  `json:"goals,omitempty"`
}

// Clone returns a deep copy so callers cannot mutate the store's record
// behind its back.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.Age != nil {
		age := *u.Age
		cp.Age = &age
	}
	if u.Weight != nil {
		w := *u.Weight
		cp.Weight = &w
	}
	if u.Height != nil {
		h := *u.Height
		cp.Height = &h
	}
	if u.Goals != nil {
		cp.Goals = append([]Goal(nil), u.Goals...)
	}
	if u.SavedPlans != nil {
		cp.SavedPlans = append([]SavedPlan(nil), u.SavedPlans...)
	}
	return &cp
}
