package log

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	tests := []struct {
		name     string
		debug    bool
		fn       func()
		expected string
	}{
		{name: "Print", fn: func() { Print("test print") }, expected: "test print"},
		{name: "Printf", fn: func() { Printf("test printf %d", 123) }, expected: "test printf 123"},
		{name: "Println", fn: func() { Println("test println") }, expected: "test println"},
		{name: "Debugf", debug: true, fn: func() { Debugf("test debugf %s", "foo") }, expected: "[DEBUG] test debugf foo"},
		{name: "DebugfQuiet", fn: func() { Debugf("hidden") }, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			debug = tt.debug
			tt.fn()
			if tt.expected == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.True(t, strings.Contains(buf.String(), tt.expected), "got %q", buf.String())
		})
	}
	debug = false
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poster.log")
	closer := Setup(path, false)
	defer log.SetOutput(os.Stderr)

	Printf("hello %s", "file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}
