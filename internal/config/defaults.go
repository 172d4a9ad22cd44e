package config

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".portfolio.yml"

// DefaultExcludes are glob patterns never copied from the assets directory.
var DefaultExcludes = []string{
	".git/**",
	"**/.DS_Store",
	"**/Thumbs.db",
	"**/*.psd",
	"**/*.xcf",
	"**/*.tmp",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentFile:  "portfolio.json",
		OutputDir:    "public",
		AssetsDir:    "assets",
		Exclude:      DefaultExcludes,
		DefaultTheme: ThemeLight,
		Port:         8080,
		LogLevel:     "info",
		PrefsDB:      ".portfolio/prefs.db",
	}
}
