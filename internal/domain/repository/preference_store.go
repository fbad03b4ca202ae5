package repository

import "context"

// PreferenceStore persistencia del estado de UI por usuario (filtros, vistas).
// ok=false indica que la clave no existe.
type PreferenceStore interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
}
