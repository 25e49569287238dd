package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort       = ":8080"
	defaultSessionTTL = 30 * time.Minute
)

// Load reads a .env file from the working directory into the environment.
// Variables already set win, and a missing file is not an error.
func Load(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("unable to load env file: %w", err)
	}
	return nil
}

func Port() string {
	return PortAddr(os.Getenv("APP_PORT"))
}

// PortAddr turns "8080" or ":8080" into a listen address. Empty means the
// default port.
func PortAddr(port string) string {
	if port == "" {
		return defaultPort
	}
	if port[0] != ':' {
		port = ":" + port
	}
	return port
}

// SessionTTL is how long an untouched game session is kept in memory.
func SessionTTL() (time.Duration, error) {
	ttlStr, ok := os.LookupEnv("SESSION_TTL")
	if !ok {
		return defaultSessionTTL, nil
	}
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return 0, fmt.Errorf("unable to parse SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("SESSION_TTL must be positive")
	}
	return ttl, nil
}

// CorsOrigins lists origins allowed to make credentialed requests. Nil means
// any origin, and is returned only in development.
func CorsOrigins() []string {
	originsStr, ok := os.LookupEnv("CORS_ORIGINS")
	if !ok || originsStr == "" {
		if Development() {
			return nil
		}
		return []string{}
	}
	origins := []string{}
	for _, o := range strings.Split(originsStr, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
