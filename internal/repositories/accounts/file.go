package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dkrasnov/safekeep/internal/common"
	"github.com/dkrasnov/safekeep/internal/models"
)

// record is the on-disk shape of one account.
type record struct {
	PasswordHash string   `json:"password_hash"`
	Entries      []string `json:"entries"`
}

// FileRepository keeps the whole account mapping in a single JSON file:
//
//	{"alice": {"password_hash": "…", "entries": ["…", "…"]}}
//
// Every mutation loads the full state, applies the change, and writes a
// complete snapshot back. A missing file is an empty mapping, not an
// error.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Get(ctx context.Context, username string) (*models.Account, error) {
	state, err := r.load()
	if err != nil {
		return nil, err
	}

	rec, ok := state[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &models.Account{
		Username:     username,
		PasswordHash: rec.PasswordHash,
		Entries:      rec.Entries,
	}, nil
}

func (r *FileRepository) Create(ctx context.Context, username string, passwordHash string) error {
	state, err := r.load()
	if err != nil {
		return err
	}

	if _, ok := state[username]; ok {
		return common.ErrAlreadyExists
	}
	state[username] = record{PasswordHash: passwordHash, Entries: []string{}}

	return r.save(state)
}

func (r *FileRepository) AppendEntry(ctx context.Context, username string, token string) error {
	state, err := r.load()
	if err != nil {
		return err
	}

	rec, ok := state[username]
	if !ok {
		return common.ErrNotFound
	}
	rec.Entries = append(rec.Entries, token)
	state[username] = rec

	return r.save(state)
}

func (r *FileRepository) load() (map[string]record, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]record{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", r.path, err)
	}

	state := map[string]record{}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", r.path, err)
	}
	return state, nil
}

// save writes a complete snapshot. The data goes to a temporary file in
// the same directory which is then renamed over the target, so a crash
// mid-write cannot leave a truncated state file behind.
func (r *FileRepository) save(state map[string]record) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, "safekeep-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("replacing %s: %w", r.path, err)
	}
	_ = os.Chmod(r.path, 0o600)

	return nil
}
