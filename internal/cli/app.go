package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dkrasnov/safekeep/internal/config"
	"github.com/dkrasnov/safekeep/internal/cryptox"
	"github.com/dkrasnov/safekeep/internal/logging"
	"github.com/dkrasnov/safekeep/internal/repositories/accounts"
	"github.com/dkrasnov/safekeep/internal/services"
	"github.com/dkrasnov/safekeep/internal/session"

	_ "modernc.org/sqlite"
)

// App holds the wired-up client: configuration, services, the current
// session, and the input reader shared by all interactive prompts.
type App struct {
	config       *config.Config
	authService  services.AuthService
	vaultService services.VaultService
	session      *session.Session
	reader       *bufio.Reader
	db           *sql.DB
	log          logging.Logger
}

// NewApp builds an App from the given configuration. The account store
// backend is selected by cfg.Storage: "file" keeps state in a JSON file,
// "sqlite" opens (and migrates) a SQLite database.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	params := cryptox.DefaultParams()
	params.Iterations = cfg.KDFIterations
	if cfg.KDFSalt != "" {
		params.Salt = []byte(cfg.KDFSalt)
	}

	var (
		repo accounts.Repository
		db   *sql.DB
	)

	switch cfg.Storage {
	case config.StorageFile:
		repo = accounts.NewFileRepository(cfg.DataFile)
	case config.StorageSQLite:
		var err error
		db, err = accounts.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Error(ctx, "error initializing database", "error", err)
			return nil, err
		}
		repo = accounts.NewSQLiteRepository(db)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage)
	}

	as := services.NewAuthService(repo, params, cfg.MaxLoginAttempts, cfg.LockoutDuration, log)
	vs := services.NewVaultService(repo, params, log)

	return &App{
		config:       cfg,
		authService:  as,
		vaultService: vs,
		session:      session.New(),
		reader:       bufio.NewReader(os.Stdin),
		db:           db,
		log:          log,
	}, nil
}

// Run starts the interactive shell and blocks until the user exits or
// stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Println("safekeep CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runShell(ctx, a, a.getStatus, scanner)
}

// Close releases the database handle when the sqlite backend is in use.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error(context.Background(), "error closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if a.session.IsAuthenticated() {
		return fmt.Sprintf("(%s)", a.session.AuthenticatedUser)
	}
	if a.session.Locked() {
		return "(locked)"
	}
	return ""
}
