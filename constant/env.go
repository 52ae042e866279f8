package constant

// Environment variable names
const (
	// EnvPrefix is the prefix shared by every MealMind environment variable
	EnvPrefix = "MEALMIND"

	// EnvAPIURL is the origin relative API paths resolve against
	EnvAPIURL = "MEALMIND_API_URL"

	// EnvLoginPath is the location the client navigates to when the session expires
	EnvLoginPath = "MEALMIND_LOGIN_PATH"

	// EnvSessionFile is the path of the file-backed session store
	EnvSessionFile = "MEALMIND_SESSION_FILE"

	// EnvHTTPTimeout bounds a single request; zero means no timeout
	EnvHTTPTimeout = "MEALMIND_HTTP_TIMEOUT"

	// EnvDebug enables debug logging
	EnvDebug = "MEALMIND_DEBUG"
)

// Defaults applied when the environment leaves a value unset
const (
	// DefaultAPIURL is the backend's default listen address
	DefaultAPIURL = "http://localhost:5000"

	// DefaultSessionDir is the directory under the user's home holding the session file
	DefaultSessionDir = ".mealmind"

	// DefaultSessionFileName is the session file name inside DefaultSessionDir
	DefaultSessionFileName = "session.json"
)

// Dev proxy defaults
const (
	// DefaultProxyListen is where the dev proxy accepts requests
	DefaultProxyListen = "127.0.0.1:5173"

	// EnvProxyListen overrides DefaultProxyListen
	EnvProxyListen = "MEALMIND_PROXY_LISTEN"
)
