// Package memory implementaciones en memoria para desarrollo y tests.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/lot-allocation-bff/internal/domain/repository"
)

var _ repository.PreferenceStore = (*PreferenceStore)(nil)

// PreferenceStore preferencias en un map; se pierden al reiniciar.
type PreferenceStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewPreferenceStore construye el almacén vacío.
func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{data: make(map[string][]byte)}
}

// Load devuelve una copia del valor.
func (s *PreferenceStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Save guarda una copia del valor.
func (s *PreferenceStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.data[key] = append([]byte(nil), value...)
	s.mu.Unlock()
	return nil
}
