package domain

// WorkoutRequest describes one workout-plan generation request. Pure input
// value object; validation of required fields happens at the API layer.
type WorkoutRequest struct {
	Goal        string   `json:"goal"`
	Duration    string   `json:"duration"` // Minutes, kept as the client submits it.
	Level       string   `json:"level"`
	Equipment   []string `json:"equipment,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
}

// DietRequest describes one diet-plan generation request. Age/Weight/Height
// are optional; absent values are substituted with explicit placeholders when
// the prompt is built.
type DietRequest struct {
	Goal        string   `json:"goal"`
	Meals       string   `json:"meals"`
	DietType    string   `json:"dietType"`
	Allergies   []string `json:"allergies,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
	Age         *int     `json:"age,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Height      *float64 `json:"height,omitempty"`
}
