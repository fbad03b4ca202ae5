package allocation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lot-allocation-bff/internal/application/allocation"
	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/ports"
	"github.com/jhoicas/lot-allocation-bff/internal/domain"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/inventory"
)

func newStore(repo *fakeRepo, clock *fakeClock) (*allocation.SessionStore, *recorder) {
	rec := &recorder{}
	deps, _ := newDeps(repo, rec)
	return allocation.NewSessionStore(allocation.StoreConfig{
		Deps:     deps,
		ToastTTL: 5 * time.Second,
		IdleTTL:  time.Hour,
		Clock:    clock,
	}), rec
}

func TestSessionStore_SesionPerteneceAlUsuario(t *testing.T) {
	store, _ := newStore(&fakeRepo{}, newFakeClock())
	s := store.Create("u1")

	got, err := store.Get(s.ID, "u1")
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = store.Get(s.ID, "u2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = store.Get("no-existe", "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, store.Delete(s.ID, "u2"), domain.ErrForbidden)
	require.NoError(t, store.Delete(s.ID, "u1"))
	assert.Zero(t, store.Len())
}

func TestSession_SaveConfirmaBorrador(t *testing.T) {
	repo := &fakeRepo{}
	store, rec := newStore(repo, newFakeClock())
	s := store.Create("u1")
	ctx := context.Background()

	_, err := s.Save(ctx, 10, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "sin borrador no hay nada que guardar")

	require.NoError(t, s.State.Assign(10, 2, d("4")))
	require.NoError(t, s.State.Assign(10, 1, d("1")))
	_, err = s.Save(ctx, 10, 5)
	require.NoError(t, err)

	assert.Equal(t, allocation.StatusCommitted, s.State.Status(10))
	require.Len(t, repo.created, 1)
	assert.EqualValues(t, 1, repo.created[0].Allocations[0].LotID)

	msg, ok := s.Toast.Current()
	require.True(t, ok)
	assert.Equal(t, "引当を登録しました", msg.Text)
	assert.Contains(t, rec.all(), "success:引当を登録しました", "también llega al notificador base")
}

func TestSession_SaveFallidoMantieneBorrador(t *testing.T) {
	repo := &fakeRepo{err: errors.New("boom")}
	store, _ := newStore(repo, newFakeClock())
	s := store.Create("u1")

	require.NoError(t, s.State.Assign(10, 1, d("1")))
	_, err := s.Save(context.Background(), 10, 5)
	require.Error(t, err)
	assert.Equal(t, allocation.StatusDraft, s.State.Status(10))

	msg, ok := s.Toast.Current()
	require.True(t, ok)
	assert.Equal(t, "引当の登録に失敗しました: boom", msg.Text)
}

func TestSession_CancelBorradorEsLocal(t *testing.T) {
	repo := &fakeRepo{}
	store, _ := newStore(repo, newFakeClock())
	s := store.Create("u1")

	require.NoError(t, s.State.Assign(10, 1, d("1")))
	res, err := s.Cancel(context.Background(), 10, 5, entity.CancelAllocationInput{})
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Empty(t, repo.cancelled)
	assert.Equal(t, allocation.StatusClean, s.State.Status(10))
}

func TestSession_CancelConfirmadoVaAlBackend(t *testing.T) {
	repo := &fakeRepo{}
	store, _ := newStore(repo, newFakeClock())
	s := store.Create("u1")
	ctx := context.Background()

	require.NoError(t, s.State.Assign(10, 1, d("1")))
	_, err := s.Save(ctx, 10, 5)
	require.NoError(t, err)

	_, err = s.Cancel(ctx, 10, 5, entity.CancelAllocationInput{AllocationIDs: []int64{7}})
	require.NoError(t, err)
	require.Len(t, repo.cancelled, 1)
	assert.Equal(t, []int64{7}, repo.cancelled[0].AllocationIDs)
	assert.Equal(t, allocation.StatusClean, s.State.Status(10))
}

func TestSession_ResetLimpiaTodo(t *testing.T) {
	store, _ := newStore(&fakeRepo{}, newFakeClock())
	s := store.Create("u1")
	require.NoError(t, s.State.Assign(10, 1, d("1")))
	s.SetFilters(inventory.FilterSelection{ProductID: "1"})
	s.Toast.Show("info", "hola")

	s.Reset()

	assert.Equal(t, allocation.StatusClean, s.State.Status(10))
	assert.Equal(t, inventory.FilterSelection{}, s.Filters())
	_, ok := s.Toast.Current()
	assert.False(t, ok)
}

func TestSessionStore_SweepQuitaInactivas(t *testing.T) {
	clock := newFakeClock()
	store, _ := newStore(&fakeRepo{}, clock)
	old := store.Create("u1")

	clock.Advance(30 * time.Minute)
	fresh := store.Create("u2")
	clock.Advance(45 * time.Minute)

	assert.Equal(t, 1, store.Sweep())
	_, err := store.Get(old.ID, "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.Get(fresh.ID, "u2")
	assert.NoError(t, err)
}

func TestSession_FalloDeRelecturaLlegaAlToast(t *testing.T) {
	repo := &fakeRepo{candidates: []entity.AllocationCandidate{{LotID: 1}}}
	deps, c := newDeps(repo, &recorder{})
	store := allocation.NewSessionStore(allocation.StoreConfig{Deps: deps, ToastTTL: 5 * time.Second, Clock: newFakeClock()})
	s := store.Create("u1")
	ctx := context.Background()

	_, err := s.Actions(10, 5).Candidates(ctx, entity.CandidateQuery{})
	require.NoError(t, err)
	_, shown := s.Toast.Current()
	assert.False(t, shown)

	c.Invalidate(cache.OrderLineKey(10))
	repo.err = errors.New("timeout")
	_, err = s.Actions(10, 5).Candidates(ctx, entity.CandidateQuery{})
	require.Error(t, err)

	msg, ok := s.Toast.Current()
	require.True(t, ok)
	assert.Equal(t, ports.LevelWarning, msg.Level)
	assert.Equal(t, "データの再取得に失敗しました: timeout", msg.Text)
}

func TestSession_ReadContextAvisaAlToast(t *testing.T) {
	store, _ := newStore(&fakeRepo{}, newFakeClock())
	s := store.Create("u1")
	c := cache.New()
	ctx := s.ReadContext(context.Background())

	_, err := cache.Fetch(ctx, c, "orders/7", func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)
	c.Invalidate("orders")

	// El primer fallo de carga no avisa; solo la re-lectura de datos ya mostrados.
	_, err = cache.Fetch(ctx, c, "orders/8", func(context.Context) (int, error) { return 0, errors.New("502") })
	require.Error(t, err)
	_, shown := s.Toast.Current()
	assert.False(t, shown)

	_, err = cache.Fetch(ctx, c, "orders/7", func(context.Context) (int, error) { return 0, errors.New("502") })
	require.Error(t, err)
	msg, ok := s.Toast.Current()
	require.True(t, ok)
	assert.Equal(t, "データの再取得に失敗しました: 502", msg.Text)
}

func TestSession_SaveConResetDuranteEscrituraDevuelveResultado(t *testing.T) {
	repo := &fakeRepo{block: make(chan struct{}), entered: make(chan struct{}, 1)}
	store, _ := newStore(repo, newFakeClock())
	s := store.Create("u1")
	require.NoError(t, s.State.Assign(10, 1, d("3")))

	type saved struct {
		res *entity.AllocationResult
		err error
	}
	done := make(chan saved, 1)
	go func() {
		res, err := s.Save(context.Background(), 10, 5)
		done <- saved{res, err}
	}()
	<-repo.entered

	s.State.Reset(10)
	close(repo.block)

	out := <-done
	require.NoError(t, out.err)
	require.NotNil(t, out.res)
	assert.EqualValues(t, 10, out.res.OrderLineID)
	assert.Equal(t, allocation.StatusClean, s.State.Status(10), "se respeta el reinicio local")
	assert.Len(t, repo.created, 1)
}
