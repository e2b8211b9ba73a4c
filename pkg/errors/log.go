package errors

import (
	"github.com/rs/zerolog"

	"github.com/go-mtrl/mtrl/pkg/logging"
)

// LogHandler is an ErrorHandler that writes errors to the global zerolog
// logger.
type LogHandler struct {
	// Verbose adds stack traces to panic and create errors.
	Verbose bool
}

func (h *LogHandler) logger() zerolog.Logger {
	return logging.For("errors")
}

// HandleError logs a ComponentError.
func (h *LogHandler) HandleError(err *ComponentError) {
	if err == nil {
		return
	}
	l := h.logger()
	l.Error().Err(err.Err).Str("op", err.Op).Stringer("kind", err.Kind).Msg("operation failed")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := h.logger()
	ev := l.Error().Str("op", err.Op).Interface("value", err.Value)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}

// HandleCreateError logs a CreateError.
func (h *LogHandler) HandleCreateError(err *CreateError) {
	if err == nil {
		return
	}
	l := h.logger()
	ev := l.Error().Str("widget", err.Widget)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg(err.Error())
}
