package wfclog

import (
	"io"
	"log"
	"os"
)

// Logger is the minimal event sink solver, backend, and orchestrator
// accept. A nil Logger is valid everywhere it is threaded and simply
// drops every call — callers only reach for Standard when they want
// output.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// stdLogger wraps the standard library *log.Logger.
type stdLogger struct {
	logger *log.Logger
}

// Standard returns a Logger that writes leveled, prefixed lines to w via
// the standard library logger.
func Standard(w io.Writer) Logger {
	return &stdLogger{logger: log.New(w, "", log.LstdFlags|log.Lmicroseconds)}
}

// StandardOut is Standard(os.Stderr), the default destination for a
// caller that wants output without configuring a writer.
func StandardOut() Logger {
	return Standard(os.Stderr)
}

func (l *stdLogger) Debugf(format string, args ...any) { l.logger.Printf("[DEBUG] "+format, args...) }
func (l *stdLogger) Infof(format string, args ...any)  { l.logger.Printf("[INFO] "+format, args...) }
func (l *stdLogger) Warnf(format string, args ...any)  { l.logger.Printf("[WARN] "+format, args...) }
func (l *stdLogger) Errorf(format string, args ...any) { l.logger.Printf("[ERROR] "+format, args...) }

// Debugf, Infof, Warnf, and Errorf below are nil-safe call sites: every
// package that accepts a Logger calls through these instead of checking
// for nil at every call site.
func Debugf(l Logger, format string, args ...any) {
	if l != nil {
		l.Debugf(format, args...)
	}
}

func Infof(l Logger, format string, args ...any) {
	if l != nil {
		l.Infof(format, args...)
	}
}

func Warnf(l Logger, format string, args ...any) {
	if l != nil {
		l.Warnf(format, args...)
	}
}

func Errorf(l Logger, format string, args ...any) {
	if l != nil {
		l.Errorf(format, args...)
	}
}
