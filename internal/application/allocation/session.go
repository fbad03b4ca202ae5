package allocation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/ports"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/inventory"
)

// Session estado de asignación de una pantalla abierta por un usuario.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	State *State
	Toast *Toast

	deps  Deps
	drag  *DragAssigner
	clock Clock

	mu       sync.Mutex
	filters  inventory.FilterSelection
	lastSeen time.Time
}

// Actions acciones de una línea; las notificaciones van al toast de la sesión.
func (s *Session) Actions(lineID, productID int64) *Actions {
	return NewActions(lineID, productID, s.deps)
}

// DragAssigner asignador manual de la sesión.
func (s *Session) DragAssigner() *DragAssigner { return s.drag }

// ReadContext ctx para lecturas cacheadas de la sesión: un fallo de
// re-lectura llega también al toast.
func (s *Session) ReadContext(ctx context.Context) context.Context {
	return cache.NotifyTo(ctx, s.Toast)
}

// Save envía las asignaciones en borrador de la línea y la marca committed.
func (s *Session) Save(ctx context.Context, lineID, productID int64) (*entity.AllocationResult, error) {
	if lineID <= 0 {
		return nil, domain.ErrNotReady
	}
	if s.State.Status(lineID) != StatusDraft {
		return nil, domain.ErrInvalidTransition
	}
	res, err := s.Actions(lineID, productID).CreateAllocation(ctx, s.State.AllocationInput(lineID))
	if err != nil {
		return nil, err
	}
	// Si la línea se reinició durante la escritura el backend ya confirmó:
	// se devuelve su resultado y el estado local queda como lo dejó el usuario.
	_ = s.State.MarkCommitted(lineID)
	return res, nil
}

// Cancel descarta el borrador; si la línea ya estaba confirmada cancela en el backend.
func (s *Session) Cancel(ctx context.Context, lineID, productID int64, in entity.CancelAllocationInput) (*entity.AllocationResult, error) {
	if lineID <= 0 {
		return nil, domain.ErrNotReady
	}
	if s.State.Status(lineID) != StatusCommitted {
		s.State.Reset(lineID)
		return nil, nil
	}
	res, err := s.Actions(lineID, productID).CancelAllocation(ctx, in)
	if err != nil {
		return nil, err
	}
	s.State.Reset(lineID)
	return res, nil
}

// Filters selección de filtros de la sesión.
func (s *Session) Filters() inventory.FilterSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetFilters reemplaza la selección de filtros.
func (s *Session) SetFilters(f inventory.FilterSelection) {
	s.mu.Lock()
	s.filters = f
	s.mu.Unlock()
}

// Reset reinicia asignaciones, toast y filtros (nueva carga de página).
func (s *Session) Reset() {
	s.State.ResetAll()
	s.Toast.Dismiss()
	s.SetFilters(inventory.FilterSelection{})
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = s.clock.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// StoreConfig parámetros de SessionStore.
type StoreConfig struct {
	Deps     Deps
	ToastTTL time.Duration
	IdleTTL  time.Duration
	Clock    Clock
}

// SessionStore sesiones en memoria indexadas por uuid.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	deps     Deps
	toastTTL time.Duration
	idleTTL  time.Duration
	clock    Clock
}

// NewSessionStore construye el almacén. El guard por línea se comparte entre sesiones.
func NewSessionStore(cfg StoreConfig) *SessionStore {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		deps:     cfg.Deps.withDefaults(),
		toastTTL: cfg.ToastTTL,
		idleTTL:  cfg.IdleTTL,
		clock:    cfg.Clock,
	}
}

// Create abre una sesión nueva para el usuario.
func (st *SessionStore) Create(userID string) *Session {
	now := st.clock.Now()
	toast := NewToast(st.toastTTL, st.clock)
	deps := st.deps
	deps.Notifier = ports.Multi(toast, st.deps.Notifier)
	deps.ReadNotifier = toast

	s := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		State:     NewState(),
		Toast:     toast,
		deps:      deps,
		drag:      NewDragAssigner(deps),
		clock:     st.clock,
		lastSeen:  now,
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get devuelve la sesión si pertenece al usuario.
func (st *SessionStore) Get(id, userID string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	if s.UserID != userID {
		return nil, domain.ErrForbidden
	}
	s.touch()
	return s, nil
}

// Delete cierra la sesión del usuario.
func (st *SessionStore) Delete(id, userID string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	if s.UserID != userID {
		return domain.ErrForbidden
	}
	s.Toast.Dismiss()
	delete(st.sessions, id)
	return nil
}

// Len número de sesiones abiertas.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep elimina sesiones inactivas más de idleTTL. Devuelve cuántas quitó.
func (st *SessionStore) Sweep() int {
	if st.idleTTL <= 0 {
		return 0
	}
	cutoff := st.clock.Now().Add(-st.idleTTL)
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if s.idleSince().Before(cutoff) {
			s.Toast.Dismiss()
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Run barre sesiones inactivas cada interval hasta que ctx termine.
func (st *SessionStore) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}
