package store

import (
	"context"
	"time"
)

// Every store operation runs under its own deadline.
const opTimeout = 5 * time.Second

func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}
