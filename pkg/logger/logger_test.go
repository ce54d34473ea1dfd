package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		envLevel string
		want     LogLevel
	}{
		{"Debug level", "DEBUG", DEBUG},
		{"Info level", "INFO", INFO},
		{"Warn level", "WARN", WARN},
		{"Error level", "ERROR", ERROR},
		{"Empty defaults to Info", "", INFO},
		{"Invalid defaults to Info", "INVALID", INFO},
		{"Case insensitive", "debug", DEBUG},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("LOG_LEVEL", tt.envLevel)
			defer os.Unsetenv("LOG_LEVEL")

			if got := getLogLevel(); got != tt.want {
				t.Errorf("getLogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []interface{}
		want   string
	}{
		{"Simple message", "Hello", nil, "Hello"},
		{"Message with args", "Count: %d", []interface{}{42}, "Count: 42"},
		{"Percent without args", "100%", nil, "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.format, tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func captureOutput(f func()) string {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	f()
	return buf.String()
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name      string
		setLevel  string
		logFunc   func(string, string, ...interface{})
		message   string
		shouldLog bool
		wantLevel string
	}{
		{"Debug logs when Debug", "DEBUG", Debug, "debug message", true, "debug"},
		{"Debug doesn't log when Info", "INFO", Debug, "debug message", false, ""},
		{"Info logs when Info", "INFO", Info, "info message", true, "info"},
		{"Info doesn't log when Error", "ERROR", Info, "info message", false, ""},
		{"Warn logs when Warn", "WARN", Warn, "warn message", true, "warn"},
		{"Error always logs", "ERROR", Error, "error message", true, "error"},
		{"Error logs when Debug", "DEBUG", Error, "error message", true, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("LOG_LEVEL", tt.setLevel)
			defer os.Unsetenv("LOG_LEVEL")
			currentLevel = getLogLevel()
			defer func() { currentLevel = getLogLevel() }()

			output := strings.TrimSpace(captureOutput(func() {
				tt.logFunc("TEST", tt.message)
			}))

			if hasOutput := output != ""; hasOutput != tt.shouldLog {
				t.Fatalf("Expected log output: %v, got output: %q", tt.shouldLog, output)
			}
			if !tt.shouldLog {
				return
			}

			var entry map[string]interface{}
			if err := json.Unmarshal([]byte(output), &entry); err != nil {
				t.Fatalf("Failed to decode log line %q: %v", output, err)
			}
			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entry["level"], tt.wantLevel)
			}
			if entry["namespace"] != "TEST" {
				t.Errorf("namespace = %v, want TEST", entry["namespace"])
			}
			if entry["message"] != tt.message {
				t.Errorf("message = %v, want %v", entry["message"], tt.message)
			}
		})
	}
}

func TestFatal(t *testing.T) {
	output := captureOutput(func() {
		Fatal("TEST", "fatal error")
	})

	if !strings.Contains(output, `"level":"fatal"`) || !strings.Contains(output, "fatal error") {
		t.Errorf("Fatal() output = %q, want fatal level entry", output)
	}
}
