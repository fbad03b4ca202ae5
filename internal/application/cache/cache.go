// Package cache implementa la caché de consultas del BFF.
//
// Las entradas se indexan por claves jerárquicas separadas por "/"
// ("lots", "orders/42", "order-lines/7/candidates/3"). Los datos solo se
// reemplazan por invalidación + nueva lectura al backend; no existe un Set
// directo, así la caché nunca diverge del estado del servidor.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/lot-allocation-bff/internal/application/ports"
	"golang.org/x/sync/singleflight"
)

// Claves raíz por recurso lógico.
const (
	KeyLots          = "lots"
	KeyOrders        = "orders"
	KeyOrderLines    = "order-lines"
	KeyReplenishment = "replenishment"
	KeyForecast      = "forecast"
)

// Key une segmentos en una clave jerárquica.
func Key(parts ...any) string {
	ss := make([]string, 0, len(parts))
	for _, p := range parts {
		ss = append(ss, fmt.Sprint(p))
	}
	return strings.Join(ss, "/")
}

// OrderKey clave del detalle de un pedido.
func OrderKey(orderID int64) string { return Key(KeyOrders, orderID) }

// OrderLineKey clave propia de una línea; cubre también sus candidatos.
func OrderLineKey(lineID int64) string { return Key(KeyOrderLines, lineID) }

// CandidatesKey clave de los candidatos de asignación de una línea y producto.
func CandidatesKey(lineID, productID int64) string {
	return Key(KeyOrderLines, lineID, "candidates", productID)
}

type entry struct {
	value     any
	fetchedAt time.Time
	stale     bool
}

// Cache caché de consultas con invalidación por clave y aviso a suscriptores.
type Cache struct {
	mu            sync.RWMutex
	entries       map[string]*entry
	invalidations map[string]uint64 // clave invalidada -> epoch
	epoch         uint64
	subs          map[int]func(key string)
	nextSub       int

	group     singleflight.Group
	staleTime time.Duration
	notifier  ports.Notifier
	now       func() time.Time
}

// Option configura la caché.
type Option func(*Cache)

// WithStaleTime fija cuánto tiempo un dato se considera fresco (0 = hasta invalidar).
func WithStaleTime(d time.Duration) Option { return func(c *Cache) { c.staleTime = d } }

// WithNotifier canal usado para avisar fallos de re-lectura.
func WithNotifier(n ports.Notifier) Option { return func(c *Cache) { c.notifier = n } }

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option { return func(c *Cache) { c.now = now } }

type notifierKey struct{}

// NotifyTo devuelve un ctx cuyas lecturas fallidas también se avisan a n,
// además del Notifier de la caché.
func NotifyTo(ctx context.Context, n ports.Notifier) context.Context {
	return context.WithValue(ctx, notifierKey{}, n)
}

// New construye una caché vacía.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries:       make(map[string]*entry),
		invalidations: make(map[string]uint64),
		subs:          make(map[int]func(string)),
		notifier:      ports.Discard,
		now:           time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Fetch devuelve el valor fresco de key o lo obtiene con fn.
// Lecturas concurrentes de la misma clave comparten una única llamada.
// Si una re-lectura falla sobre datos ya cargados se avisa al Notifier
// y al registrado en ctx con NotifyTo;
// el fallo de la primera carga solo se devuelve al llamador.
func Fetch[T any](ctx context.Context, c *Cache, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := c.fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: tipo inesperado para %q: %T", key, v)
	}
	return t, nil
}

func (c *Cache) fetch(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (any, error) {
	c.mu.RLock()
	e := c.entries[key]
	startEpoch := c.epoch
	if e != nil && c.freshLocked(e) {
		v := e.value
		c.mu.RUnlock()
		return v, nil
	}
	hadData := e != nil
	c.mu.RUnlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		if hadData {
			msg := "データの再取得に失敗しました: " + err.Error()
			c.notifier.Notify(ports.LevelWarning, msg)
			if n, ok := ctx.Value(notifierKey{}).(ports.Notifier); ok && n != nil {
				n.Notify(ports.LevelWarning, msg)
			}
		}
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = &entry{
		value:     v,
		fetchedAt: c.now(),
		// Si se invalidó mientras la lectura estaba en vuelo, el dato ya nace obsoleto.
		stale: c.invalidatedSinceLocked(key, startEpoch),
	}
	c.mu.Unlock()
	return v, nil
}

func (c *Cache) freshLocked(e *entry) bool {
	if e.stale {
		return false
	}
	if c.staleTime > 0 && c.now().Sub(e.fetchedAt) >= c.staleTime {
		return false
	}
	return true
}

func (c *Cache) invalidatedSinceLocked(key string, epoch uint64) bool {
	for prefix := key; prefix != ""; {
		if c.invalidations[prefix] > epoch {
			return true
		}
		i := strings.LastIndex(prefix, "/")
		if i < 0 {
			break
		}
		prefix = prefix[:i]
	}
	return false
}

// Invalidate marca como obsoletas key y todas las claves bajo key/ y avisa a los suscriptores.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	c.epoch++
	c.invalidations[key] = c.epoch
	for k, e := range c.entries {
		if matches(k, key) {
			e.stale = true
		}
	}
	subs := make([]func(string), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(key)
	}
}

// Subscribe registra fn para cada invalidación. Devuelve la función para darse de baja.
func (c *Cache) Subscribe(fn func(key string)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// IsFresh indica si key tiene un valor que Fetch devolvería sin ir al backend.
func (c *Cache) IsFresh(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e := c.entries[key]
	return e != nil && c.freshLocked(e)
}

func matches(k, prefix string) bool {
	return k == prefix || strings.HasPrefix(k, prefix+"/")
}
