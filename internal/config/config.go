package config

import (
	"os"
	"path/filepath"
	"strings"

	"flowcast/internal/stats"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	// TerminalStatuses is the set of workflow states treated as finished.
	// Matching is case-sensitive; see stats.ClassifierConfig.
	TerminalStatuses map[string]bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try the binary's directory first, then fall back to the working
	// directory (useful for development/go run).
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	cfg := &AppConfig{
		TerminalStatuses: ParseTerminalStatuses(os.Getenv("FLOWCAST_TERMINAL_STATUSES")),
	}

	return cfg, nil
}

// ParseTerminalStatuses splits a comma-separated status list into the
// terminal set, preserving case. An empty value yields the default set.
func ParseTerminalStatuses(value string) map[string]bool {
	if strings.TrimSpace(value) == "" {
		return stats.DefaultTerminalStatuses()
	}

	set := make(map[string]bool)
	for _, part := range strings.Split(value, ",") {
		name := strings.TrimSpace(part)
		if name != "" {
			set[name] = true
		}
	}
	if len(set) == 0 {
		return stats.DefaultTerminalStatuses()
	}
	return set
}
