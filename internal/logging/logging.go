package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

type Field struct {
	Key   string
	Value any
}

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Named(component string) Logger
	Enabled(level Level) bool
}

type logfmtLogger struct {
	out       io.Writer
	level     Level
	component string
	fields    []Field
	now       func() time.Time
	mu        *sync.Mutex
}

func New(out io.Writer, level Level) Logger {
	if out == nil {
		out = os.Stderr
	}
	return &logfmtLogger{out: out, level: level, now: time.Now, mu: &sync.Mutex{}}
}

func Nop() Logger {
	return &logfmtLogger{out: io.Discard, level: Error + 1, now: time.Now, mu: &sync.Mutex{}}
}

func (l *logfmtLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}
	return level >= l.level
}

func (l *logfmtLogger) With(fields ...Field) Logger {
	if l == nil {
		return Nop()
	}
	next := l.clone()
	next.fields = append(append([]Field{}, l.fields...), fields...)
	return next
}

// Named scopes the logger to a component; nested names are joined with dots.
func (l *logfmtLogger) Named(component string) Logger {
	if l == nil {
		return Nop()
	}
	next := l.clone()
	component = strings.TrimSpace(component)
	switch {
	case component == "":
	case next.component == "":
		next.component = component
	default:
		next.component = next.component + "." + component
	}
	return next
}

func (l *logfmtLogger) clone() *logfmtLogger {
	return &logfmtLogger{
		out:       l.out,
		level:     l.level,
		component: l.component,
		fields:    l.fields,
		now:       l.now,
		mu:        l.mu,
	}
}

func (l *logfmtLogger) Debug(msg string, fields ...Field) { l.log(Debug, msg, fields...) }
func (l *logfmtLogger) Info(msg string, fields ...Field)  { l.log(Info, msg, fields...) }
func (l *logfmtLogger) Warn(msg string, fields ...Field)  { l.log(Warn, msg, fields...) }
func (l *logfmtLogger) Error(msg string, fields ...Field) { l.log(Error, msg, fields...) }

func (l *logfmtLogger) log(level Level, msg string, fields ...Field) {
	if l == nil || level < l.level {
		return
	}
	all := make([]Field, 0, len(l.fields)+len(fields)+4)
	all = append(all, Field{Key: "ts", Value: l.now().UTC().Format(time.RFC3339Nano)})
	all = append(all, Field{Key: "level", Value: level.String()})
	if l.component != "" {
		all = append(all, Field{Key: "component", Value: l.component})
	}
	all = append(all, Field{Key: "msg", Value: msg})
	all = append(all, l.fields...)
	all = append(all, fields...)

	var b strings.Builder
	for i, field := range all {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(field.Key)
		b.WriteByte('=')
		b.WriteString(formatValue(field.Value))
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, b.String())
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return quoteIfNeeded(v)
	case error:
		return quoteIfNeeded(v.Error())
	case fmt.Stringer:
		return quoteIfNeeded(v.String())
	case bool:
		return strconv.FormatBool(v)
	case int, int64, int32, uint, uint64, uint32, float64, float32:
		return fmt.Sprintf("%v", v)
	default:
		return quoteIfNeeded(fmt.Sprintf("%v", v))
	}
}

func quoteIfNeeded(value string) string {
	if value == "" {
		return `""`
	}
	if strings.ContainsAny(value, " \t\n\r\"=") {
		return strconv.Quote(value)
	}
	return value
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel maps a config string to a level; unknown values fall back to info.
func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
