package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	previous := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(previous) })
	return buf
}

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	assert.Equal(t, logrus.WarnLevel, Configure("warn"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.Equal(t, logrus.InfoLevel, Configure("verbose"))
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_AddsCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	Configure("info")
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("relatório gerado")

	assert.Contains(t, buf.String(), "correlation_id="+id)
}

func TestWithFields_DevelopmentKeepsTraceFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	Configure("info")
	buf := captureOutput(t)

	L.WithFields(Fields{
		"tenant_id": "tenant-1",
		"rows":      10,
	}).Info("consulta")

	assert.Contains(t, buf.String(), "tenant_id=tenant-1")
	assert.NotContains(t, buf.String(), "rows=10")
}
