package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZapLogger(&buf, slog.LevelInfo)

	log.With("op", "nearby").Info(context.Background(), "users loaded", "count", 3)
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.Contains(t, out, `"msg":"users loaded"`)
	assert.Contains(t, out, `"op":"nearby"`)
	assert.Contains(t, out, `"count":3`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestZapLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZapLogger(&buf, slog.LevelWarn)

	log.Debug(context.Background(), "dbg")
	log.Info(context.Background(), "inf")
	log.Warn(context.Background(), "wrn")

	out := buf.String()
	assert.NotContains(t, out, "dbg")
	assert.NotContains(t, out, "inf")
	assert.Contains(t, out, "wrn")
}

func TestNew_Backends(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		level   string
		want    any
		wantErr bool
	}{
		{name: "default is slog", backend: "", level: "", want: &SlogLogger{}},
		{name: "slog", backend: BackendSlog, level: "debug", want: &SlogLogger{}},
		{name: "zap", backend: BackendZap, level: "warn", want: &ZapLogger{}},
		{name: "unknown backend", backend: "logrus", wantErr: true},
		{name: "bad level", backend: BackendSlog, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.backend, tt.level, &bytes.Buffer{})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, l)
		})
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	var l Logger = Nop{}
	assert.NotPanics(t, func() {
		l.With("a", 1).Error(context.TODO(), "x")
	})
}
