package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level define la severidad del log.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel acepta debug/info/warn/error (case-insensitive).
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format del output: texto key=value o JSON por línea.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// Logger estructurado simple, thread-safe.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	level  Level
	format Format
	app    string
	fields map[string]any
	now    func() time.Time
}

// New crea un Logger con el nivel y formato dados.
func New(out io.Writer, level Level, format Format, app string) *Logger {
	if out == nil {
		out = os.Stdout
	}
	return &Logger{
		out:    out,
		level:  level,
		format: format,
		app:    app,
		now:    time.Now,
	}
}

// NewFromEnv lee LOG_LEVEL, LOG_FORMAT y APP_NAME.
func NewFromEnv() *Logger {
	level := ParseLevel(os.Getenv("LOG_LEVEL"))
	format := FormatText
	if strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_FORMAT")), "json") {
		format = FormatJSON
	}
	app := strings.TrimSpace(os.Getenv("APP_NAME"))
	if app == "" {
		app = "husbandry-api"
	}
	return New(os.Stdout, level, format, app)
}

// With retorna un Logger hijo con campos fijos adicionales.
func (l *Logger) With(fields map[string]any) *Logger {
	child := &Logger{
		out:    l.out,
		level:  l.level,
		format: l.format,
		app:    l.app,
		now:    l.now,
		fields: make(map[string]any, len(l.fields)+len(fields)),
	}
	for k, v := range l.fields {
		child.fields[k] = v
	}
	for k, v := range fields {
		child.fields[k] = v
	}
	return child
}

func (l *Logger) Debug(msg string, fields map[string]any) { l.log(LevelDebug, msg, fields) }
func (l *Logger) Info(msg string, fields map[string]any)  { l.log(LevelInfo, msg, fields) }
func (l *Logger) Warn(msg string, fields map[string]any)  { l.log(LevelWarn, msg, fields) }
func (l *Logger) Error(msg string, fields map[string]any) { l.log(LevelError, msg, fields) }

func (l *Logger) log(level Level, msg string, fields map[string]any) {
	if level < l.level {
		return
	}

	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	ts := l.now().UTC().Format(time.RFC3339)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.format == FormatJSON {
		entry := map[string]any{
			"ts":    ts,
			"level": level.String(),
			"app":   l.app,
			"msg":   msg,
		}
		for k, v := range merged {
			entry[k] = v
		}
		b, err := json.Marshal(entry)
		if err != nil {
			fmt.Fprintf(l.out, `{"ts":%q,"level":"ERROR","app":%q,"msg":"logger marshal failed"}`+"\n", ts, l.app)
			return
		}
		l.out.Write(append(b, '\n'))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %-5s [%s] %s", ts, level.String(), l.app, msg)

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, merged[k])
	}
	b.WriteByte('\n')
	io.WriteString(l.out, b.String())
}
