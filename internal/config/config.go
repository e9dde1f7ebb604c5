package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIBase is returned by Validate when no backend host is configured.
var ErrMissingAPIBase = errors.New("API_BASE is not set (use --api-base or the API_BASE env var)")

// Config holds runtime settings. Values come from the environment (and an
// optional .env file); cmd/itemdash overrides them with flags.
type Config struct {
	APIBase    string        // backend host, e.g. "localhost:8000"
	Timeout    time.Duration // per-request timeout; 0 means none
	Theme      string        // classic | neon | mono
	NoColor    bool
	ForceColor bool
	Debug      bool // write a debug log to DebugLogPath
}

// DebugLogPath is where the debug log goes when Debug is set.
const DebugLogPath = "itemdash-debug.log"

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	timeout, err := time.ParseDuration(getenv("ITEMDASH_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid ITEMDASH_TIMEOUT: %w", err)
	}

	return Config{
		APIBase:    strings.TrimSpace(os.Getenv("API_BASE")),
		Timeout:    timeout,
		Theme:      getenv("ITEMDASH_THEME", "classic"),
		NoColor:    os.Getenv("NO_COLOR") != "",
		ForceColor: os.Getenv("CLICOLOR_FORCE") != "",
		Debug:      os.Getenv("ITEMDASH_DEBUG") != "",
	}, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIBase) == "" {
		return ErrMissingAPIBase
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// HealthURL is the liveness probe endpoint.
func (c Config) HealthURL() string { return c.baseURL() + "/healthz" }

// ItemsURL is the item listing endpoint.
func (c Config) ItemsURL() string { return c.baseURL() + "/api/items" }

// baseURL turns a bare host into http://host. A value that already has a
// scheme is kept as is.
func (c Config) baseURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.APIBase), "/")
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	return base
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
