// Package notify destinos de notificación fuera de la sesión.
package notify

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/lot-allocation-bff/internal/application/ports"
	"github.com/jhoicas/lot-allocation-bff/pkg/logger"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier escribe cada notificación en el log estructurado.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.Named("notify")}
}

// Notify implementa ports.Notifier.
func (n *LogNotifier) Notify(level ports.Level, message string) {
	n.event(level).Str("level_ui", string(level)).Msg(message)
}

func (n *LogNotifier) event(level ports.Level) *zerolog.Event {
	switch level {
	case ports.LevelError:
		return n.log.Error()
	case ports.LevelWarning:
		return n.log.Warn()
	case ports.LevelSuccess, ports.LevelInfo:
		return n.log.Info()
	}
	return n.log.Debug()
}
