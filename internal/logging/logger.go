// Package logging emits one JSON object per line on stderr. Entries carry
// a level, an RFC3339 timestamp and arbitrary structured fields, which is
// enough for log shippers without pulling in a logging framework.
package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

type Fields map[string]interface{}

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
	// exit is swappable so Fatal can be tested.
	exit = os.Exit
)

func emit(level, msg string, err error, fields Fields) {
	entry := make(Fields, len(fields)+4)
	for k, v := range fields {
		entry[k] = v
	}
	entry["level"] = level
	entry["ts"] = time.Now().UTC().Format(time.RFC3339)
	entry["msg"] = msg
	if err != nil {
		entry["error"] = err.Error()
	}

	b, jerr := json.Marshal(entry)
	if jerr != nil {
		quoted, _ := json.Marshal(msg)
		b = []byte(`{"level":"` + level + `","msg":` + string(quoted) + `}`)
	}
	mu.Lock()
	out.Write(append(b, '\n'))
	mu.Unlock()
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	emit("info", msg, nil, fields)
}

// Warn logs a warning message with optional fields.
func Warn(msg string, fields Fields) {
	emit("warn", msg, nil, fields)
}

// Error logs a failure, attaching the error text when present.
func Error(msg string, err error, fields Fields) {
	emit("error", msg, err, fields)
}

// Fatal logs a failure and terminates the process.
func Fatal(msg string, err error, fields Fields) {
	emit("fatal", msg, err, fields)
	exit(1)
}
