package bookings

// ValidationError reports a missing or malformed input field. Its message is
// safe to return to the caller verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Field + " is required"
}

// NotFoundError means the referenced entity does not exist.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return e.Resource + " not found"
}

// InvalidStatusError means the requested status is outside the enumerated set.
type InvalidStatusError struct {
	Status string
}

func (e InvalidStatusError) Error() string {
	return "Invalid status"
}

// InvalidOperationError means the booking is in a state that forbids the
// requested operation, e.g. cancelling after confirmation.
type InvalidOperationError struct {
	Message string
}

func (e InvalidOperationError) Error() string {
	return e.Message
}

// PaymentNotSucceededError carries the non-success status the gateway
// reported for a payment intent.
type PaymentNotSucceededError struct {
	Status string
}

func (e PaymentNotSucceededError) Error() string {
	return "Payment not successful"
}
