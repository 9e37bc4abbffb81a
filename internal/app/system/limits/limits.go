// internal/app/system/limits/limits.go
package limits

// Request body size limits for various features.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxCategoryFormSize bounds the parts-page dialog submissions. A name
	// and description at their rune limits fit with room to spare.
	MaxCategoryFormSize = 64 << 10 // 64 KB

	// MaxBackendBody bounds how much of a backend response is read.
	MaxBackendBody = 4 << 20 // 4 MB
)
