package render

import (
	"strings"

	"github.com/fatih/color"
)

// FormatError formats an error message with the error icon
func FormatError(err error) string {
	msg := err.Error()

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✔ %s", message)
}
