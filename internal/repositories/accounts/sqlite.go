package accounts

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/dkrasnov/safekeep/internal/common"
	"github.com/dkrasnov/safekeep/internal/dbx"
	"github.com/dkrasnov/safekeep/internal/models"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Open opens (or creates) the SQLite database at dsn and applies pending
// migrations. The caller owns the returned handle.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dsn, err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	return db, nil
}

// SQLiteRepository stores accounts and their entry tokens in a local
// SQLite database. Entry order is preserved through an explicit position
// column.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, username string) (*models.Account, error) {
	acc := &models.Account{Username: username}

	err := r.db.QueryRowContext(ctx,
		`SELECT password_hash FROM accounts WHERE username = ?`, username,
	).Scan(&acc.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("selecting account: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT token FROM entries WHERE username = ? ORDER BY position`, username)
	if err != nil {
		return nil, fmt.Errorf("selecting entries: %w", err)
	}
	defer rows.Close()

	acc.Entries = []string{}
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		acc.Entries = append(acc.Entries, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	return acc, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, username string, passwordHash string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		exists, err := accountExists(ctx, tx, username)
		if err != nil {
			return err
		}
		if exists {
			return common.ErrAlreadyExists
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO accounts (username, password_hash) VALUES (?, ?)`,
			username, passwordHash); err != nil {
			return fmt.Errorf("inserting account: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) AppendEntry(ctx context.Context, username string, token string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		exists, err := accountExists(ctx, tx, username)
		if err != nil {
			return err
		}
		if !exists {
			return common.ErrNotFound
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO entries (id, username, position, token)
			VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM entries WHERE username = ?), ?)`,
			uuid.NewString(), username, username, token); err != nil {
			return fmt.Errorf("inserting entry: %w", err)
		}
		return nil
	})
}

func accountExists(ctx context.Context, tx dbx.DBTX, username string) (bool, error) {
	var n int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM accounts WHERE username = ?`, username).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking username: %w", err)
	}
	return n > 0, nil
}
