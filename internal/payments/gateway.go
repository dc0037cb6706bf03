package payments

import "context"

// IntentSucceeded is the gateway status that allows a payment confirmation
// to proceed; every other status fails the confirmation.
const IntentSucceeded = "succeeded"

// IntentMetadata is attached to a payment intent so the charge can be traced
// back to the booking that produced it.
type IntentMetadata struct {
	ProductName   string
	Quantity      string
	CustomerEmail string
	CustomerName  string
}

// Gateway is the payment processor seam. Implementations make a single
// synchronous round trip per call; there is no retry policy.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, meta IntentMetadata) (clientSecret string, err error)
	RetrieveIntentStatus(ctx context.Context, intentID string) (string, error)
}
