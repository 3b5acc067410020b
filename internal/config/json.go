package config

import (
	"encoding/json"
	"os"

	"github.com/dkrasnov/safekeep/internal/flagx"
	"github.com/dkrasnov/safekeep/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so the lockout can be written either as a string
// like "60s" or as integer nanoseconds.
type JsonConfig struct {
	DataFile         string         `json:"data_file"`
	Storage          string         `json:"storage"`
	DatabaseDSN      string         `json:"database_dsn"`
	MaxLoginAttempts int            `json:"max_login_attempts"`
	LockoutDuration  timex.Duration `json:"lockout_duration"`
	KDFIterations    int            `json:"kdf_iterations"`
	KDFSalt          string         `json:"kdf_salt"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent flag means no JSON stage. Only fields present
// in the file (non-zero after unmarshalling) override the defaults.
// Read or unmarshal errors panic; the config stage runs before any state
// is touched, so failing loudly is fine.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataFile != "" {
		cfg.DataFile = jc.DataFile
	}
	if jc.Storage != "" {
		cfg.Storage = jc.Storage
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.MaxLoginAttempts != 0 {
		cfg.MaxLoginAttempts = jc.MaxLoginAttempts
	}
	if jc.LockoutDuration.Duration != 0 {
		cfg.LockoutDuration = jc.LockoutDuration.Duration
	}
	if jc.KDFIterations != 0 {
		cfg.KDFIterations = jc.KDFIterations
	}
	if jc.KDFSalt != "" {
		cfg.KDFSalt = jc.KDFSalt
	}
}
