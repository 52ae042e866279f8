package model

// ProfileRequest is the payload of profile setup and update. Only set fields are sent.
type ProfileRequest struct {
	Name          string   `json:"name,omitempty"`
	Age           int      `json:"age,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	Height        float64  `json:"height,omitempty"`
	Weight        float64  `json:"weight,omitempty"`
	ActivityLevel string   `json:"activity_level,omitempty"`
	Goal          string   `json:"goal,omitempty"`
	Allergies     []string `json:"allergies,omitempty"`
}
