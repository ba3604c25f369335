package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"preset":              "default",
		"stop_on_first_error": false,
		"severities":          []string{},
		"check_references":    false,
		"code_prefix":         "Q",
		"output":              "text",
		"color":               "auto",
	}
}
