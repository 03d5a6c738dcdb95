package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLFromContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := zap.New(core)

	ctx := NewContext(context.Background(), l)
	L(ctx).Info("hello")

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "hello", logs.All()[0].Message)
}

func TestLFallsBackToGlobal(t *testing.T) {
	assert.Same(t, zap.L(), L(context.Background()))
	assert.Same(t, zap.L(), L(nil)) //nolint:staticcheck
}
