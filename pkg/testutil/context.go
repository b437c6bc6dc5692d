package testutil

import (
	"context"
	"time"

	"cafepos/pkg/requestcontext"
)

// RequestContext returns the context a request would carry after the request
// context middleware: a fixed clock and a request id.
func RequestContext(now time.Time, requestID string) context.Context {
	ctx := requestcontext.WithTime(context.Background(), now)
	return requestcontext.WithRequestID(ctx, requestID)
}
