package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lot-allocation-bff/internal/application/cache"
	"github.com/jhoicas/lot-allocation-bff/internal/application/ports"
)

type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) Notify(level ports.Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, string(level)+":"+msg)
}

func counter(value string, calls *int32) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		atomic.AddInt32(calls, 1)
		return value, nil
	}
}

func TestFetch_ReusaValorFresco(t *testing.T) {
	c := cache.New()
	var calls int32
	ctx := context.Background()

	v, err := cache.Fetch(ctx, c, "lots", counter("a", &calls))
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = cache.Fetch(ctx, c, "lots", counter("b", &calls))
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.EqualValues(t, 1, calls)
}

func TestInvalidate_PrefijoJerarquico(t *testing.T) {
	c := cache.New()
	ctx := context.Background()
	var calls int32

	for _, k := range []string{"order-lines/7", "order-lines/7/candidates/3", "order-lines/70", "lots"} {
		_, err := cache.Fetch(ctx, c, k, counter(k, &calls))
		require.NoError(t, err)
	}

	c.Invalidate(cache.OrderLineKey(7))

	assert.False(t, c.IsFresh("order-lines/7"))
	assert.False(t, c.IsFresh("order-lines/7/candidates/3"))
	assert.True(t, c.IsFresh("order-lines/70"), "no confunde 7 con 70")
	assert.True(t, c.IsFresh("lots"))

	v, err := cache.Fetch(ctx, c, "order-lines/7", counter("nuevo", &calls))
	require.NoError(t, err)
	assert.Equal(t, "nuevo", v)
}

func TestSubscribe_RecibeInvalidaciones(t *testing.T) {
	c := cache.New()
	var got []string
	unsubscribe := c.Subscribe(func(key string) { got = append(got, key) })

	c.Invalidate("lots")
	c.Invalidate("orders")
	unsubscribe()
	c.Invalidate("lots")

	assert.Equal(t, []string{"lots", "orders"}, got)
}

func TestFetch_PrimerFalloNoNotifica(t *testing.T) {
	rec := &recorder{}
	c := cache.New(cache.WithNotifier(rec))

	_, err := cache.Fetch(context.Background(), c, "lots", func(context.Context) (string, error) {
		return "", errors.New("boom")
	})
	require.Error(t, err)
	assert.Empty(t, rec.msgs)
}

func TestFetch_FalloDeRelecturaNotifica(t *testing.T) {
	rec := &recorder{}
	c := cache.New(cache.WithNotifier(rec))
	ctx := context.Background()

	_, err := cache.Fetch(ctx, c, "lots", func(context.Context) (string, error) { return "ok", nil })
	require.NoError(t, err)
	c.Invalidate("lots")

	_, err = cache.Fetch(ctx, c, "lots", func(context.Context) (string, error) {
		return "", errors.New("timeout")
	})
	require.Error(t, err)
	require.Len(t, rec.msgs, 1)
	assert.Contains(t, rec.msgs[0], "warning:")
	assert.Contains(t, rec.msgs[0], "timeout")
}

func TestFetch_FalloDeRelecturaAvisaAlNotifierDelContexto(t *testing.T) {
	global, screen := &recorder{}, &recorder{}
	c := cache.New(cache.WithNotifier(global))
	ctx := cache.NotifyTo(context.Background(), screen)

	_, err := cache.Fetch(ctx, c, "orders/7", func(context.Context) (string, error) { return "ok", nil })
	require.NoError(t, err)
	c.Invalidate("orders")

	_, err = cache.Fetch(ctx, c, "orders/7", func(context.Context) (string, error) {
		return "", errors.New("502")
	})
	require.Error(t, err)
	assert.Equal(t, []string{"warning:データの再取得に失敗しました: 502"}, global.msgs)
	assert.Equal(t, global.msgs, screen.msgs)

	// Sin NotifyTo solo avisa el Notifier de la caché.
	_, _ = cache.Fetch(context.Background(), c, "orders/7", func(context.Context) (string, error) {
		return "", errors.New("503")
	})
	assert.Len(t, global.msgs, 2)
	assert.Len(t, screen.msgs, 1)
}

func TestFetch_StaleTime(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := cache.New(cache.WithStaleTime(time.Minute), cache.WithClock(func() time.Time { return now }))
	ctx := context.Background()
	var calls int32

	_, _ = cache.Fetch(ctx, c, "orders", counter("x", &calls))
	now = now.Add(30 * time.Second)
	assert.True(t, c.IsFresh("orders"))
	now = now.Add(31 * time.Second)
	assert.False(t, c.IsFresh("orders"))

	_, _ = cache.Fetch(ctx, c, "orders", counter("y", &calls))
	assert.EqualValues(t, 2, calls)
}

// Una invalidación durante una lectura en vuelo deja el resultado marcado como obsoleto.
func TestFetch_InvalidacionDuranteLectura(t *testing.T) {
	c := cache.New()
	ctx := context.Background()

	_, err := cache.Fetch(ctx, c, "lots/list", func(context.Context) (string, error) {
		c.Invalidate("lots")
		return "viejo", nil
	})
	require.NoError(t, err)
	assert.False(t, c.IsFresh("lots/list"))
}

func TestFetch_LecturasConcurrentesSeAgrupan(t *testing.T) {
	c := cache.New()
	var calls int32
	release := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = cache.Fetch(context.Background(), c, "lots", func(context.Context) (string, error) {
				atomic.AddInt32(&calls, 1)
				<-release
				return "v", nil
			})
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(5))
	assert.True(t, c.IsFresh("lots"))
}

func TestFetch_TipoInesperado(t *testing.T) {
	c := cache.New()
	ctx := context.Background()
	_, err := cache.Fetch(ctx, c, "k", func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)

	_, err = cache.Fetch(ctx, c, "k", func(context.Context) (string, error) { return "", nil })
	assert.Error(t, err)
}
