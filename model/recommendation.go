package model

// Recommendation types accepted by the regenerate endpoint.
const (
	RecommendationMeal     = "meal"
	RecommendationActivity = "activity"
	RecommendationSleep    = "sleep"
)

// CheckinRequest is the payload of POST /api/recommendations/checkin.
type CheckinRequest struct {
	Date      string  `json:"date,omitempty"`
	Weight    float64 `json:"weight,omitempty"`
	Mood      string  `json:"mood,omitempty"`
	Completed bool    `json:"completed"`
	Notes     string  `json:"notes,omitempty"`
}
