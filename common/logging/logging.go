// Package logging implements module scoped, leveled structured logging on
// top of go-kit/log.
//
// Loggers may be obtained at package initialization time, before the host
// program configured the backend with Initialize. Such loggers discard
// everything until then and are bound to the configured backend afterwards.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
)

var (
	backend = logBackend{
		baseLogger:   log.NewNopLogger(),
		defaultLevel: LevelError,
	}

	_ pflag.Value = (*Level)(nil)
	_ pflag.Value = (*Format)(nil)
)

// Format is a logging format.
type Format uint

const (
	// FmtLogfmt is the "logfmt" logging format.
	FmtLogfmt Format = iota
	// FmtJSON is the JSON logging format.
	FmtJSON
)

var formatNames = []string{
	FmtLogfmt: "logfmt",
	FmtJSON:   "JSON",
}

// String returns the string representation of a Format.
func (f *Format) String() string {
	if int(*f) >= len(formatNames) {
		return fmt.Sprintf("[unknown format: %d]", uint(*f))
	}
	return formatNames[*f]
}

// Set sets the Format to the value specified by the provided string.
func (f *Format) Set(s string) error {
	idx, ok := lookupName(formatNames, s)
	if !ok {
		return fmt.Errorf("logging: invalid log format: '%s'", s)
	}
	*f = Format(idx)
	return nil
}

// Type returns the list of supported Formats.
func (f *Format) Type() string {
	return "[" + strings.Join(formatNames, ",") + "]"
}

func (f Format) newLogger(w io.Writer) (log.Logger, error) {
	switch f {
	case FmtLogfmt:
		return log.NewLogfmtLogger(w), nil
	case FmtJSON:
		return log.NewJSONLogger(w), nil
	default:
		return nil, fmt.Errorf("logging: unsupported log format: %d", uint(f))
	}
}

// Level is a log level.
type Level uint32

const (
	// LevelDebug is the log level for debug messages.
	LevelDebug Level = iota
	// LevelInfo is the log level for informative messages.
	LevelInfo
	// LevelWarn is the log level for warning messages.
	LevelWarn
	// LevelError is the log level for error messages.
	LevelError
)

var levelNames = []string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// String returns the string representation of a Level.
func (l *Level) String() string {
	if int(*l) >= len(levelNames) {
		return fmt.Sprintf("[unknown level: %d]", uint32(*l))
	}
	return levelNames[*l]
}

// Set sets the Level to the value specified by the provided string.
func (l *Level) Set(s string) error {
	idx, ok := lookupName(levelNames, s)
	if !ok {
		return fmt.Errorf("logging: invalid log level: '%s'", s)
	}
	*l = Level(idx)
	return nil
}

// Type returns the list of supported Levels.
func (l *Level) Type() string {
	return "[" + strings.Join(levelNames, ",") + "]"
}

func (l Level) value() level.Value {
	switch l {
	case LevelDebug:
		return level.DebugValue()
	case LevelInfo:
		return level.InfoValue()
	case LevelWarn:
		return level.WarnValue()
	default:
		return level.ErrorValue()
	}
}

func lookupName(names []string, s string) (int, bool) {
	for i, v := range names {
		if strings.EqualFold(v, s) {
			return i, true
		}
	}
	return 0, false
}

// Logger is a logger instance.
type Logger struct {
	logger log.Logger
	module string

	// Updated when an early logger is bound to the backend.
	level uint32
}

func (l *Logger) setLevel(lvl Level) {
	atomic.StoreUint32(&l.level, uint32(lvl))
}

func (l *Logger) log(lvl Level, msg string, keyvals []interface{}) {
	if Level(atomic.LoadUint32(&l.level)) > lvl {
		return
	}
	kv := make([]interface{}, 0, len(keyvals)+4)
	kv = append(kv, level.Key(), lvl.value(), "msg", msg)
	_ = l.logger.Log(append(kv, keyvals...)...)
}

// Debug logs the message and key value pairs at the Debug log level.
func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.log(LevelDebug, msg, keyvals)
}

// Info logs the message and key value pairs at the Info log level.
func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.log(LevelInfo, msg, keyvals)
}

// Warn logs the message and key value pairs at the Warn log level.
func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.log(LevelWarn, msg, keyvals)
}

// Error logs the message and key value pairs at the Error log level.
func (l *Logger) Error(msg string, keyvals ...interface{}) {
	l.log(LevelError, msg, keyvals)
}

// With returns a clone of the logger with the provided key/value pairs
// added to every subsequent message.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{
		logger: log.With(l.logger, keyvals...),
		module: l.module,
		level:  atomic.LoadUint32(&l.level),
	}
}

// NewJSONLogger creates a new logger which logs JSON-serialized logs
// directly to the given writer, bypassing the global backend.
func NewJSONLogger(w io.Writer) *Logger {
	return &Logger{
		logger: log.NewJSONLogger(w),
	}
}

// GetLevel returns the current global log level.
func GetLevel() Level {
	backend.Lock()
	defer backend.Unlock()

	return backend.defaultLevel
}

// GetLogger creates a new logger instance with the specified module.
//
// This may be called from any point, including before Initialize is
// called, allowing for the construction of a package level Logger.
func GetLogger(module string) *Logger {
	return backend.getLogger(module)
}

// Initialize initializes the logging backend to write to the provided
// Writer with the given format. Modules use the level of the longest
// matching prefix in moduleLvls, or defaultLvl if there is none. If the
// Writer is nil, all log output will be silently discarded.
func Initialize(w io.Writer, format Format, defaultLvl Level, moduleLvls map[string]Level) error {
	backend.Lock()
	defer backend.Unlock()

	if backend.initialized {
		return fmt.Errorf("logging: already initialized")
	}

	logger := backend.baseLogger
	if w != nil {
		var err error
		if logger, err = format.newLogger(log.NewSyncWriter(w)); err != nil {
			return err
		}
	}

	backend.baseLogger = log.With(logger, "ts", log.DefaultTimestampUTC)
	backend.defaultLevel = defaultLvl
	backend.moduleLevels = moduleLvls
	backend.initialized = true

	for _, p := range backend.pending {
		p.swap.Swap(backend.baseLogger)
		p.logger.setLevel(backend.levelForLocked(p.logger.module))
	}
	backend.pending = nil

	return nil
}

type pendingLogger struct {
	swap   *log.SwapLogger
	logger *Logger
}

type logBackend struct {
	sync.Mutex

	baseLogger   log.Logger
	defaultLevel Level
	moduleLevels map[string]Level

	// Loggers handed out before Initialize.
	pending     []*pendingLogger
	initialized bool
}

func (b *logBackend) levelForLocked(module string) Level {
	lvl, longest := b.defaultLevel, -1
	for prefix, v := range b.moduleLevels {
		if len(prefix) > longest && strings.HasPrefix(module, prefix) {
			lvl, longest = v, len(prefix)
		}
	}
	return lvl
}

func (b *logBackend) getLogger(module string) *Logger {
	// Frames between the valuer and the call site: bindValues, the
	// go-kit context, Logger.log and the leveled method.
	const callerDepth = 5

	b.Lock()
	defer b.Unlock()

	var swap *log.SwapLogger
	logger := b.baseLogger
	if !b.initialized {
		swap = &log.SwapLogger{}
		logger = swap
	}

	keyvals := []interface{}{"caller", log.Caller(callerDepth)}
	if module != "" {
		keyvals = append([]interface{}{"module", module}, keyvals...)
	}
	l := &Logger{
		logger: log.WithPrefix(logger, keyvals...),
		module: module,
	}
	l.setLevel(b.levelForLocked(module))

	if swap != nil {
		b.pending = append(b.pending, &pendingLogger{swap: swap, logger: l})
	}

	return l
}
