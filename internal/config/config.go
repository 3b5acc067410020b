// Package config loads runtime settings for the safekeep CLI.
package config

import "time"

// Storage backend selectors.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config holds runtime settings for the safekeep CLI.
//
// Fields:
//   - DataFile: path of the JSON state file (file backend).
//   - Storage: account store backend, "file" or "sqlite".
//   - DatabaseDSN: SQLite DSN (sqlite backend).
//   - MaxLoginAttempts: failed logins tolerated before a lockout.
//   - LockoutDuration: how long a lockout lasts.
//   - KDFIterations: PBKDF2 iteration count for hashing and key
//     derivation. Changing it invalidates previously stored state.
//   - KDFSalt: overrides the built-in shared salt. Changing it likewise
//     invalidates previously stored state.
type Config struct {
	DataFile         string
	Storage          string
	DatabaseDSN      string
	MaxLoginAttempts int
	LockoutDuration  time.Duration
	KDFIterations    int
	KDFSalt          string
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.DataFile = "secure_data.json"
	c.Storage = StorageFile
	c.DatabaseDSN = "safekeep.db"
	c.MaxLoginAttempts = 3
	c.LockoutDuration = 60 * time.Second
	c.KDFIterations = 100000
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
