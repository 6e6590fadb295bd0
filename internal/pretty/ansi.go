// ANSI escape codes
package pretty

var colorEnabled = true

// SetColorEnabled controls whether ANSI color codes are output
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// GetColorEnabled returns whether ANSI color codes are currently enabled
func GetColorEnabled() bool {
	return colorEnabled
}

const resetCode string = "\x1b[0m"
const boldCode string = "\x1b[1m"

func code(c string) string {
	if colorEnabled {
		return c
	}
	return ""
}

// Reset returns the reset ANSI code if colors are enabled, empty string otherwise
func Reset() string {
	return code(resetCode)
}

// Bold returns the bold ANSI code if colors are enabled, empty string otherwise
func Bold() string {
	return code(boldCode)
}
