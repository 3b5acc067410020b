package config

import (
	"flag"
	"os"
	"time"

	"github.com/dkrasnov/safekeep/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-f string   path of the JSON state file
//	-s string   storage backend: file or sqlite
//	-d string   SQLite DSN
//	-l int      lockout duration in seconds
//
// Only the flags handled here are parsed (via flagx.FilterArgs), so the
// config-file flags of parseJson do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-s", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataFile, "f", cfg.DataFile, "path of the JSON state file")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend: file or sqlite")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite DSN")
	lockoutSeconds := fs.Int("l", int(cfg.LockoutDuration.Seconds()), "lockout duration (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.LockoutDuration = time.Duration(*lockoutSeconds) * time.Second
}
