package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
)

// Session store kinds
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// DataDirectory is where sessions are kept when no explicit location is configured
var DataDirectory = filepath.Join(xdg.DataHome, "boggle")

// Settings holds process-level settings read from the environment. Command
// line flags default to these values.
type Settings struct {
	Host           string `env:"HOST"            envDefault:"localhost"`
	Port           int    `env:"PORT"            envDefault:"8080"`
	ConfigDir      string `env:"CONFIG_DIR"      envDefault:"configs"`
	DictionaryFile string `env:"DICTIONARY_FILE"`
	SessionStore   string `env:"SESSION_STORE"   envDefault:"file"`
	SessionsDir    string `env:"SESSIONS_DIR"`
	SQLitePath     string `env:"SQLITE_PATH"`
	LogLevel       string `env:"LOG_LEVEL"       envDefault:"info"`
	LogPretty      bool   `env:"LOG_PRETTY"`
	APIURL         string `env:"API_URL"         envDefault:"http://localhost:8080"`

	NgrokEnabled   bool   `env:"NGROK_ENABLED"`
	NgrokAuthToken string `env:"NGROK_AUTHTOKEN"`
	NgrokDomain    string `env:"NGROK_DOMAIN"`
}

// LoadSettings parses Settings from the process environment
func LoadSettings() (*Settings, error) {
	return parseSettings(env.Options{})
}

// LoadSettingsFrom parses Settings from the given variables instead of the process environment
func LoadSettingsFrom(vars map[string]string) (*Settings, error) {
	return parseSettings(env.Options{Environment: vars})
}

func parseSettings(opts env.Options) (*Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.applyDefaults()
	return &s, nil
}

// Validate checks settings that cannot be defaulted
func (s *Settings) Validate() error {
	switch s.SessionStore {
	case StoreFile, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("%w: SESSION_STORE must be %s, %s or %s, got %q",
			ErrInvalidSettings, StoreFile, StoreSQLite, StoreMemory, s.SessionStore)
	}
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("%w: PORT out of range: %d", ErrInvalidSettings, s.Port)
	}
	return nil
}

// applyDefaults fills storage locations under the XDG data directory
func (s *Settings) applyDefaults() {
	if s.SessionsDir == "" {
		s.SessionsDir = filepath.Join(DataDirectory, "sessions")
	}
	if s.SQLitePath == "" {
		s.SQLitePath = filepath.Join(DataDirectory, "sessions.db")
	}
}

// Addr returns host:port
func (s *Settings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
