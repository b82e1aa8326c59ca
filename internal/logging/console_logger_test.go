package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_Prefixes(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		log     func(l *ConsoleLogger)
		want    string
	}{
		{
			name:    "verbose enabled",
			verbose: true,
			log:     func(l *ConsoleLogger) { l.Verbose("root %s", "/data") },
			want:    "[VERBOSE] root /data\n",
		},
		{
			name: "verbose disabled",
			log:  func(l *ConsoleLogger) { l.Verbose("root %s", "/data") },
			want: "",
		},
		{
			name: "info",
			log:  func(l *ConsoleLogger) { l.Info("counted %d files", 3) },
			want: "counted 3 files\n",
		},
		{
			name: "error",
			log:  func(l *ConsoleLogger) { l.Error("scan failed: %v", "boom") },
			want: "[ERROR] scan failed: boom\n",
		},
		{
			name: "no args leaves percent signs alone",
			log:  func(l *ConsoleLogger) { l.Info("100% done") },
			want: "100% done\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewWriterLogger(&buf, tt.verbose))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConsoleLogger_DefaultsToStderr(t *testing.T) {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	logger := NewConsoleLogger(false)
	logger.Info("hello")

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	assert.Equal(t, "hello\n", buf.String())
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 30)
	for i, line := range lines {
		if !strings.Contains(line, "message") && !strings.Contains(line, "verbose") && !strings.Contains(line, "error") {
			t.Errorf("Line %d appears corrupted: %q", i, line)
		}
	}
}

func TestNullLogger_ConcurrentSafety(t *testing.T) {
	logger := NewNullLogger()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()
}

func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewWriterLogger(io.Discard, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

func ExampleNewWriterLogger() {
	logger := NewWriterLogger(os.Stdout, true)
	logger.Verbose("max depth %d", 256)
	logger.Error("budget exceeded")
	fmt.Println("done")
	// Output:
	// [VERBOSE] max depth 256
	// [ERROR] budget exceeded
	// done
}
