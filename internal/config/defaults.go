package config

// GetDefaults returns the default configuration values. These mirror
// the zero-flag behavior of the notification builder.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"title":    "Notification",
		"timeout":  5000,
		"icon":     "dialog-information",
		"urgency":  "normal",
		"subtitle": "",
		"sound":    "default",
		"backend":  "",
		"quiet":    false,
	}
}
