package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func TestStartWithoutSDK(t *testing.T) {
	ctx, span := Start(context.Background(), "order.create", attribute.String("store_id", "s-1"))
	assert.NotNil(t, span)
	assert.False(t, span.IsRecording())
	assert.Equal(t, span.SpanContext(), trace.SpanFromContext(ctx).SpanContext())
	assert.NotPanics(t, func() { End(span, errors.New("boom")) })
}
