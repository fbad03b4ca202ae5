package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/repository"
)

var _ repository.PreferenceStore = (*PreferenceStore)(nil)

// Querier subconjunto de *pgxpool.Pool usado por el almacén.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PreferenceStore preferencias de UI en la tabla ui_preferences.
type PreferenceStore struct {
	db Querier
}

// NewPreferenceStore construye el adaptador de persistencia.
func NewPreferenceStore(db Querier) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// EnsureSchema crea la tabla si no existe.
func (s *PreferenceStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS ui_preferences (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create ui_preferences: %w", err)
	}
	return nil
}

// Load devuelve el valor guardado; ok=false si no existe.
func (s *PreferenceStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT value FROM ui_preferences WHERE key = $1`
	var value []byte
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load preference: %w", err)
	}
	return value, true, nil
}

// Save inserta o reemplaza el valor.
func (s *PreferenceStore) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO ui_preferences (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("save preference: %w", err)
	}
	return nil
}
