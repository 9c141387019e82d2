package httpapi

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods = []string{"GET", "HEAD", "OPTIONS"}
	corsAllowedHeaders = []string{"Accept", "Content-Type", "X-Request-Id"}
)

// SetCORSOptions configures CORS behavior for the HTTP server. Empty
// methods or headers keep the read-only defaults.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	if len(methods) > 0 {
		corsAllowedMethods = append([]string(nil), methods...)
	}
	if len(headers) > 0 {
		corsAllowedHeaders = append([]string(nil), headers...)
	}
}
