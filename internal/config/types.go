package config

// Theme is the colour scheme used when a visitor has no stored preference
// and the platform gives no hint (static builds).
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config is the top-level portfolio configuration, corresponding to .portfolio.yml.
type Config struct {
	ContentFile  string   `yaml:"content_file" koanf:"content_file"`
	OutputDir    string   `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir    string   `yaml:"assets_dir" koanf:"assets_dir"`
	Exclude      []string `yaml:"exclude" koanf:"exclude"`
	DefaultTheme Theme    `yaml:"default_theme" koanf:"default_theme"`
	Port         int      `yaml:"port" koanf:"port"`
	LogLevel     string   `yaml:"log_level" koanf:"log_level"`
	LogFile      string   `yaml:"log_file" koanf:"log_file"`
	Production   bool     `yaml:"production" koanf:"production"`
	PrefsDB      string   `yaml:"prefs_db" koanf:"prefs_db"`
	Watch        bool     `yaml:"watch" koanf:"watch"`
}
