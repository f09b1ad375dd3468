// Package logging is the leveled logger used by the host program and by the debugging
// switches in the settings package. It writes through github.com/jcgregorio/logger.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/jcgregorio/logger"
)

type Logger struct {
	logger *logger.Logger
	debug  bool
}

// New returns a Logger that writes to a SyncWriter, such as os.Stderr. Debug
// messages are only written if debug is true.
func New(dst logger.SyncWriter, debug bool) *Logger {
	return &Logger{
		logger: logger.NewFromOptions(&logger.Options{
			SyncWriter:   dst,
			DepthDelta:   2,
			IncludeDebug: debug,
		}),
		debug: debug,
	}
}

func (l *Logger) Debugf(format string, args ...any) {
	l.logger.Debugf(format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.logger.Infof(format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.logger.Errorf(format, args...)
}

func (l *Logger) DebugEnabled() bool {
	return l.debug
}

var (
	mu      sync.RWMutex
	current = New(os.Stderr, false)
)

// SetLogger replaces the package-level logger.
func SetLogger(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = l
}

func get() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func Debugf(format string, args ...any) {
	get().Debugf(format, args...)
}

func Infof(format string, args ...any) {
	get().Infof(format, args...)
}

// DebugEnabled reports whether debug messages are being written, so that callers can skip
// building them if they aren't.
func DebugEnabled() bool {
	return get().DebugEnabled()
}

func Errorf(format string, args ...any) {
	get().Errorf(format, args...)
}

// Wraps a plain writer, e.g. a bytes.Buffer, so that it can be logged to.
func SyncWriterOf(w io.Writer) logger.SyncWriter {
	if sw, ok := w.(logger.SyncWriter); ok {
		return sw
	}
	return nopSync{w}
}

type nopSync struct {
	io.Writer
}

func (nopSync) Sync() error { return nil }
