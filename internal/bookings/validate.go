package bookings

// CreateInput carries the booking request fields. Field names match the JSON
// body of POST /bookings.
type CreateInput struct {
	ProductID       string
	ProductName     string
	PricePerPiece   float64
	Quantity        int
	TotalPrice      float64
	Email           string
	FirstName       string
	LastName        string
	ContactNumber   string
	DeliveryAddress string
	PaymentMethod   string
}

// validateCreateInput scans the fields in a fixed order and reports the first
// one that is absent. Zero numeric values count as absent; strings are not
// trimmed, so whitespace-only values pass.
func validateCreateInput(in CreateInput) error {
	checks := []struct {
		field   string
		missing bool
	}{
		{"productId", in.ProductID == ""},
		{"productName", in.ProductName == ""},
		{"pricePerPiece", in.PricePerPiece == 0},
		{"quantity", in.Quantity == 0},
		{"totalPrice", in.TotalPrice == 0},
		{"email", in.Email == ""},
		{"firstName", in.FirstName == ""},
		{"lastName", in.LastName == ""},
		{"contactNumber", in.ContactNumber == ""},
		{"deliveryAddress", in.DeliveryAddress == ""},
		{"paymentMethod", in.PaymentMethod == ""},
	}

	for _, check := range checks {
		if check.missing {
			return ValidationError{Field: check.field}
		}
	}
	return nil
}
