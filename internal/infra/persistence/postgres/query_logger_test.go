package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tasktrack/config"
	deliverycontext "tasktrack/internal/delivery/context"
	"tasktrack/internal/errors"
)

func newBufferedQueryLogger(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newQueryLogger(base, cfg), &buf
}

func statement() (string, int64) {
	return "SELECT * FROM tasks WHERE owner_id = $1", 3
}

func TestQueryLogger_Levels(t *testing.T) {
	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true

	tests := []struct {
		name      string
		cfg       *config.Config
		begin     time.Time
		err       error
		contains  string
		wantEmpty bool
	}{
		{name: "failure logs at error", err: errors.New("deadlock detected"), begin: time.Now(), contains: "level=ERROR"},
		{name: "missing row is not a failure", err: gorm.ErrRecordNotFound, begin: time.Now(), wantEmpty: true},
		{name: "slow query logs at warn", begin: time.Now().Add(-time.Second), contains: "Slow query"},
		{name: "routine query hidden outside debug", begin: time.Now(), wantEmpty: true},
		{name: "routine query shown in debug", cfg: debugCfg, begin: time.Now(), contains: "level=INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedQueryLogger(tt.cfg)

			l.Trace(context.Background(), tt.begin, statement, tt.err)

			if tt.wantEmpty {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.contains)
			assert.Contains(t, buf.String(), "rows=3")
		})
	}
}

func TestQueryLogger_SlowThresholdFromConfig(t *testing.T) {
	cfg := &config.Config{Postgres: &config.PostgresConfig{SlowQueryThreshold: 50 * time.Millisecond}}
	l, buf := newBufferedQueryLogger(cfg)

	l.Trace(context.Background(), time.Now().Add(-100*time.Millisecond), statement, nil)

	assert.Contains(t, buf.String(), "threshold=50ms")
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newBufferedQueryLogger(nil)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), statement, errors.New("connection reset"))

	assert.Contains(t, reqBuf.String(), "request_id=req-42")
	assert.Contains(t, reqBuf.String(), "connection reset")
}

func TestQueryLogger_SilentAndParamsFilter(t *testing.T) {
	l, buf := newBufferedQueryLogger(nil)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), statement, errors.New("boom"))
	assert.Empty(t, buf.String())

	filter, ok := l.(gorm.ParamsFilter)
	if assert.True(t, ok) {
		sql, params := filter.ParamsFilter(context.Background(), "SELECT 1 WHERE hash = $1", "$2a$10$secret")
		assert.Equal(t, "SELECT 1 WHERE hash = $1", sql)
		assert.Nil(t, params)
	}
}
