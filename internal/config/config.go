// Package config defines CLI configuration structures and loading hooks.
package config

// Config contains process configuration for the page generator CLI.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataPath locates the profile document (file path or URL).
	DataPath string `koanf:"data"`

	// PagePath locates the host HTML page to populate.
	PagePath string `koanf:"page"`

	// OutputPath names the file the populated page is written to. Empty means
	// stdout.
	OutputPath string `koanf:"output"`

	// MapPath optionally points at a directory of page-map documents that
	// replace the embedded defaults.
	MapPath string `koanf:"map"`

	// Theme and ThemeVariant select a base theme when a theme directory is
	// wired in by the caller.
	Theme        string `koanf:"theme"`
	ThemeVariant string `koanf:"theme_variant"`

	// Sanitize runs the rich-text bio fields through the UGC policy before
	// injection. Off by default: the profile document is first-party content.
	Sanitize bool `koanf:"sanitize"`

	// HTTPTimeoutSeconds caps remote document fetches.
	HTTPTimeoutSeconds int `koanf:"http_timeout_seconds"`
}

// New creates a Config with defaults applied.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		DataPath:           "data/profile-content.json",
		PagePath:           "index.html",
		HTTPTimeoutSeconds: 10,
	}
}
