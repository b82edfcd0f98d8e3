package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"smart-quick-add/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "console debug", cfg: log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true}},
		{name: "json production", cfg: log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON}},
		{name: "invalid level", cfg: log.ZapConfig{Level: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			assert.NotNil(t, l)
			assert.NotPanics(t, func() {
				ctx := context.WithValue(context.Background(), log.RequestIDKey{}, "req-1")
				l.Debugf(ctx, "parsed %q", "buy milk")
				l.Info(ctx, "hello")
			})
		})
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	assert.NotPanics(t, func() {
		l.Warnf(context.Background(), "nothing %d", 1)
		l.Errorf(nil, "nil ctx is tolerated")
	})
}
