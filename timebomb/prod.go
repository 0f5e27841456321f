package timebomb

import (
	"os"
	"strings"
)

var prodEnvKeys = []string{"ENV", "APP_ENV"}

// IsProduction reports whether ENV or APP_ENV names a production environment.
func IsProduction() bool {
	for _, key := range prodEnvKeys {
		switch strings.ToLower(os.Getenv(key)) {
		case "production", "prod":
			return true
		}
	}
	return false
}
