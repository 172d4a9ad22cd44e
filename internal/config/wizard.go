package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// Starter holds the identity answers used to seed a new content file.
type Starter struct {
	Name  string
	Title string
	Email string
}

// RunWizard runs an interactive setup wizard and returns the resulting
// Config and starter identity. It also saves the config to path.
func RunWizard(path string) (*Config, *Starter, error) {
	fmt.Println("Welcome to portfolio! Let's set up your site.")
	fmt.Println()

	cfg := DefaultConfig()
	st := &Starter{}

	// 1. Identity.
	prompts := []struct {
		label string
		dst   *string
		check func(string) error
	}{
		{"Your name", &st.Name, required("name")},
		{"Your title (e.g. Software Engineer)", &st.Title, nil},
		{"Contact email", &st.Email, validEmail},
	}
	for _, p := range prompts {
		prompt := promptui.Prompt{Label: p.label, Validate: p.check}
		v, err := prompt.Run()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", strings.ToLower(p.label), err)
		}
		*p.dst = strings.TrimSpace(v)
	}

	// 2. Content file.
	contentPrompt := promptui.Prompt{
		Label:   "Content file",
		Default: cfg.ContentFile,
	}
	contentFile, err := contentPrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("content file: %w", err)
	}
	cfg.ContentFile = contentFile

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 4. Default theme.
	themePrompt := promptui.Select{
		Label: "Default theme for visitors without a preference",
		Items: []string{string(ThemeLight), string(ThemeDark)},
	}
	_, theme, err := themePrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.DefaultTheme = Theme(theme)

	// 5. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra asset exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Exclude = append(append([]string{}, DefaultExcludes...), splitAndTrim(excludeStr)...)
	}

	if err := cfg.Save(path); err != nil {
		return nil, nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, st, nil
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if at := strings.Index(s, "@"); at <= 0 || at == len(s)-1 {
		return fmt.Errorf("%q is not an email address", s)
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
