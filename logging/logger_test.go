// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/giserh/RedisGraph/logging"
	"github.com/stretchr/testify/assert"
)

func TestLogMultiply_LevelsByOutcome(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewJSONLogger(&buf, slog.LevelInfo)

	l.LogMultiply(context.Background(), "plain/nomask", 4, 4, 10, 6, time.Millisecond, nil)
	assert.Empty(t, buf.String(), "success is logged at debug")

	l.LogMultiply(context.Background(), "plain/nomask", 4, 4, 0, 0, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), `"msg":"multiply failed"`)
	assert.Contains(t, buf.String(), `"variant":"plain/nomask"`)
}

func TestLogCriticalFailure(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewTextLogger(&buf, slog.LevelDebug).WithComponent("critical")

	l.LogCriticalFailure(context.Background(), "mutex", "unlock", errors.New("not held"))
	out := buf.String()
	assert.Contains(t, out, "component=critical")
	assert.Contains(t, out, "phase=unlock")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("nonsense"))
}

func TestOrNoop(t *testing.T) {
	assert.NotNil(t, logging.OrNoop(nil))
	l := logging.NoopLogger()
	assert.Same(t, l, logging.OrNoop(l))
}
