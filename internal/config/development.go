package config

import (
	"os"
	"strings"
)

// Development reports whether DEVELOPMENT is set to anything but "", "0" or
// "false".
func Development() bool {
	switch strings.ToLower(os.Getenv("DEVELOPMENT")) {
	case "", "0", "false":
		return false
	default:
		return true
	}
}
