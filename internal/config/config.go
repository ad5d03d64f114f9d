package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	APIKey       string
	APIBase      string
	Model        string
	WorkspaceDir string
	LogLevel     string
	NatsURL      string
	NatsToken    string
	DatabaseURL  string
}

func Load() Config {
	return Config{
		Port:         envInt("ANDERSON_PORT", 8760),
		APIKey:       envStr("OPENAI_API_KEY", ""),
		APIBase:      envStr("OPENAI_API_BASE", ""),
		Model:        envStr("MODEL_NAME", envStr("MODEL", "omni-1")),
		WorkspaceDir: envStr("ANDERSON_WORKSPACE", "./workspace"),
		LogLevel:     envStr("LOG_LEVEL", "info"),
		NatsURL:      envStr("NATS_URL", ""),
		NatsToken:    envStr("NATS_TOKEN", ""),
		DatabaseURL:  envStr("DATABASE_URL", ""),
	}
}

// Validate reports missing gateway settings. The remote call cannot work
// without all three, so main fails fast instead of erroring per request.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.APIBase == "" {
		return fmt.Errorf("OPENAI_API_BASE is required")
	}
	if c.Model == "" {
		return fmt.Errorf("MODEL_NAME is required")
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
