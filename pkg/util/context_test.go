package util

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))

	generated := EnsureRequestID(ctx)
	id := GetRequestID(generated)
	assert.Len(t, id, 36)
	assert.Equal(t, generated, EnsureRequestID(generated), "an existing id is kept")

	assert.Equal(t, "fixed", GetRequestID(WithRequestID(ctx, "fixed")))
	assert.NotEmpty(t, GetRequestID(WithRequestID(ctx, "")))
}

func TestOperation(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetOperation(ctx))
	assert.Equal(t, "download_report", GetOperation(WithOperation(ctx, "download_report")))
}
