package gormlog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "users"`, 1
}

func TestTrace_LogsFailedStatement(t *testing.T) {
	var buf bytes.Buffer
	l := New(newBufferLogger(&buf), false)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("duplicate key"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "duplicate key")
}

func TestTrace_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := New(newBufferLogger(&buf), false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestTrace_SlowStatement(t *testing.T) {
	var buf bytes.Buffer
	l := New(newBufferLogger(&buf), false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestTrace_DebugLogsEveryStatement(t *testing.T) {
	var buf bytes.Buffer
	quiet := New(newBufferLogger(&buf), false)
	quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	verbose := New(newBufferLogger(&buf), true)
	verbose.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM query")
}

func TestLogMode_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := New(newBufferLogger(&buf), true).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	l.Error(context.Background(), "boom %d", 1)

	assert.Empty(t, buf.String())
}
