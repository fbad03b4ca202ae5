package ports

// Level severidad de una notificación al usuario.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notifier canal compartido de notificaciones (toast). Las implementaciones
// deben ser seguras para uso concurrente.
type Notifier interface {
	Notify(level Level, message string)
}

// NotifierFunc adapta una función a Notifier.
type NotifierFunc func(level Level, message string)

func (f NotifierFunc) Notify(level Level, message string) { f(level, message) }

// Multi reenvía cada notificación a todos los destinos no nil.
func Multi(ns ...Notifier) Notifier {
	return NotifierFunc(func(level Level, message string) {
		for _, n := range ns {
			if n != nil {
				n.Notify(level, message)
			}
		}
	})
}

// Discard descarta las notificaciones.
var Discard Notifier = NotifierFunc(func(Level, string) {})
