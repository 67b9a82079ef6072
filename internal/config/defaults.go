package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options
func GetDefaultConfigTemplate() string {
	return `# changelog configuration
# Values can be overridden with CHANGELOG_* environment variables and flags.

line_width: 80                        # Wrap column for change messages (0 = terminal width)
exclude: []                           # Filename patterns to skip, e.g. [".gitkeep", "*.md"]
log_level: warn                       # Diagnostics on stderr: debug | info | warn | error
no_color: false                       # Disable colored output
`
}

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"line_width": 80,
		"exclude":    []string{},
		"log_level":  "warn",
		"no_color":   false,
	}
}
