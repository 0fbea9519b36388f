// Package logging writes JSON lines for diagnostics. Output is discarded
// until Enable is called, so it never mixes with the race output.
package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"
)

type Fields map[string]interface{}

var logger = log.New(io.Discard, "", 0)

// Enable sends log lines to w.
func Enable(w io.Writer) {
	logger.SetOutput(w)
}

// output copies fields so callers may reuse their map.
func output(level, msg string, extra Fields) {
	fields := make(Fields, len(extra)+3)
	for k, v := range extra {
		fields[k] = v
	}
	fields["level"] = level
	fields["ts"] = time.Now().UTC().Format(time.RFC3339)
	fields["msg"] = msg
	b, err := json.Marshal(fields)
	if err != nil {
		logger.Printf("%s: %s (%v)\n", level, msg, fields)
		return
	}
	logger.Println(string(b))
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	output("info", msg, fields)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	if err != nil {
		fields = withError(fields, err)
	}
	output("error", msg, fields)
}

// Fatal logs to stderr regardless of Enable and exits with status 1.
func Fatal(msg string, err error, fields Fields) {
	logger.SetOutput(os.Stderr)
	if err != nil {
		fields = withError(fields, err)
	}
	output("fatal", msg, fields)
	os.Exit(1)
}

func withError(fields Fields, err error) Fields {
	out := make(Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["error"] = err.Error()
	return out
}
