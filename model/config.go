package model

import "time"

// Config holds the environment-level configuration of a MealMind client.
type Config struct {
	APIURL      string        `envconfig:"API_URL" default:"http://localhost:5000"`
	LoginPath   string        `envconfig:"LOGIN_PATH" default:"/login"`
	SessionFile string        `envconfig:"SESSION_FILE"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
	Debug       bool          `envconfig:"DEBUG"`
}
