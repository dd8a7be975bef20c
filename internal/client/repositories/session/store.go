// Package session persists the current user of the client: a single slot
// holding the record of whoever logged in last on this machine.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/posclient/internal/client/models"
	"github.com/dmitrijs2005/posclient/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/posclient/internal/dbx"
)

const (
	userKey    = "auth_user"
	savedAtKey = "auth_saved_at"
)

var (
	ErrNoSession      = errors.New("no session")
	ErrCorruptSession = errors.New("corrupt session record")
)

// Store is the persisted session slot.
type Store interface {
	// Load returns ErrNoSession when nothing is stored and ErrCorruptSession
	// when the stored record cannot be decoded.
	Load(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, u *models.User) error
	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}

// SQLiteStore keeps the session in the metadata table.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) Load(ctx context.Context) (*models.User, error) {
	raw, err := metadata.NewSQLiteRepository(s.db).Get(ctx, userKey)
	if errors.Is(err, metadata.ErrNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var u *models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	if u == nil {
		return nil, ErrCorruptSession
	}
	return u, nil
}

func (s *SQLiteStore) Save(ctx context.Context, u *models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, userKey, raw); err != nil {
			return err
		}
		return repo.Set(ctx, savedAtKey, []byte(s.now().UTC().Format(time.RFC3339)))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, userKey); err != nil {
			return err
		}
		return repo.Delete(ctx, savedAtKey)
	})
}

// SavedAt returns when the current session was stored.
func (s *SQLiteStore) SavedAt(ctx context.Context) (time.Time, error) {
	raw, err := metadata.NewSQLiteRepository(s.db).Get(ctx, savedAtKey)
	if errors.Is(err, metadata.ErrNotFound) {
		return time.Time{}, ErrNoSession
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, string(raw))
}
