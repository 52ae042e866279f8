package constant

// Header names and values used on outgoing requests
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-Id"

	// ContentTypeJSON is sent on every request unless overridden per call
	ContentTypeJSON = "application/json"

	// BearerPrefix precedes the session token in the Authorization header
	BearerPrefix = "Bearer "
)

// API paths, relative to the configured origin
const (
	PathAuthSignup = "/api/auth/signup"
	PathAuthLogin  = "/api/auth/login"
	PathAuthMe     = "/api/auth/me"
	PathCORSTest   = "/api/cors-test"

	PathProfileSetup  = "/api/profile/setup"
	PathProfileGet    = "/api/profile/get"
	PathProfileUpdate = "/api/profile/update"

	PathRecommendationsToday      = "/api/recommendations/today"
	PathRecommendationsRegenerate = "/api/recommendations/regenerate/"
	PathRecommendationsCheckin    = "/api/recommendations/checkin"
	PathRecommendationsHistory    = "/api/recommendations/history"

	// APIPrefix is the path prefix the dev proxy forwards to the backend
	APIPrefix = "/api"
)

// DefaultLoginPath is where the client navigates after a 401
const DefaultLoginPath = "/login"
