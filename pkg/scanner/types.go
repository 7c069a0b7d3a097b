// Package scanner performs batch ingestion: it discovers component source
// files under a root directory and registers each one with the registry.
package scanner

// ScanConfig configures discovery and scan behavior.
type ScanConfig struct {
	// Include glob patterns for file matching.
	Include []string
	// Exclude glob patterns.
	Exclude []string
	// Workers overrides the worker count (0 = CPU-derived default).
	Workers int
}

// DefaultScanConfig returns the default scan configuration, skipping
// dependency, build, test, story and mock files.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Include: []string{
			"**/*.ts",
			"**/*.tsx",
			"**/*.js",
			"**/*.jsx",
		},
		Exclude: []string{
			"node_modules/**",
			".git/**",
			"dist/**",
			"build/**",
			"coverage/**",
			"**/*.test.*",
			"**/*.spec.*",
			"**/*.stories.*",
			"__tests__/**",
			"**/__tests__/**",
			"**/__mocks__/**",
		},
	}
}

// ScanStats tracks scan results and timing.
type ScanStats struct {
	FilesDiscovered int
	Registered      int
	Failed          int
	Fallbacks       int
	DurationMs      int64
}
