package allocation

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/lot-allocation-bff/internal/application/ports"
)

// DefaultToastTTL tiempo de vida de un toast.
const DefaultToastTTL = 5 * time.Second

// Timer temporizador cancelable.
type Timer interface {
	Stop() bool
}

// Clock programa funciones diferidas; inyectable en tests.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
func (systemClock) Now() time.Time                            { return time.Now() }

// SystemClock reloj real.
var SystemClock Clock = systemClock{}

// Message toast activo.
type Message struct {
	ID        string      `json:"id"`
	Level     ports.Level `json:"level"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"created_at"`
}

// Toast como máximo un mensaje activo; se borra solo tras ttl.
// Un mensaje nuevo reemplaza al anterior y reinicia el temporizador.
type Toast struct {
	mu      sync.Mutex
	clock   Clock
	ttl     time.Duration
	current *Message
	timer   Timer
	gen     uint64
}

var _ ports.Notifier = (*Toast)(nil)

// NewToast construye el toast. ttl<=0 usa DefaultToastTTL; clock nil usa SystemClock.
func NewToast(ttl time.Duration, clock Clock) *Toast {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	if clock == nil {
		clock = SystemClock
	}
	return &Toast{clock: clock, ttl: ttl}
}

// Notify implementa ports.Notifier.
func (t *Toast) Notify(level ports.Level, message string) {
	t.Show(level, message)
}

// Show reemplaza el mensaje activo y reprograma el borrado.
func (t *Toast) Show(level ports.Level, text string) Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	msg := Message{ID: uuid.NewString(), Level: level, Text: text, CreatedAt: t.clock.Now()}
	t.current = &msg
	// El generation counter evita que un temporizador ya disparado borre un mensaje más nuevo.
	t.timer = t.clock.AfterFunc(t.ttl, func() { t.expire(gen) })
	return msg
}

func (t *Toast) expire(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.gen != gen {
		return
	}
	t.current = nil
	t.timer = nil
}

// Current devuelve el mensaje activo, si hay.
func (t *Toast) Current() (Message, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return Message{}, false
	}
	return *t.current, true
}

// Dismiss borra el mensaje activo y cancela su temporizador.
func (t *Toast) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	t.current = nil
	t.timer = nil
}
