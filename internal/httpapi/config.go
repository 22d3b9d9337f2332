package httpapi

import "nyxventure/pkg/types"

// maxBodyBytes controls the maximum allowed request body size for JSON endpoints.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes allows configuring the maximum request body size.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}

// scriptsDir is scanned by the /scripts endpoints. Empty disables them.
var scriptsDir string

// SetScriptsDir sets the directory holding edit scripts.
func SetScriptsDir(dir string) { scriptsDir = dir }

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server. Empty method
// and header lists select GET, POST, OPTIONS and Content-Type.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}

// EventSource reads persisted events in id order.
type EventSource interface {
	Since(after string, limit int) ([]types.Event, error)
}

// archive backs GET /events/archive. Nil answers 404.
var archive EventSource

// SetArchive sets the source served under /events/archive.
func SetArchive(src EventSource) { archive = src }
