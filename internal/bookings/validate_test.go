package bookings

import (
	"errors"
	"testing"
)

func fullInput() CreateInput {
	return CreateInput{
		ProductID:       "64f1c8a9e4b0a1b2c3d4e5f6",
		ProductName:     "Denim Jacket",
		PricePerPiece:   40,
		Quantity:        1,
		TotalPrice:      40,
		Email:           "a@x.com",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		ContactNumber:   "+15550100",
		DeliveryAddress: "1 Main St",
		PaymentMethod:   "Card",
	}
}

func TestValidateCreateInputNamesEachMissingField(t *testing.T) {
	cases := []struct {
		field string
		clear func(*CreateInput)
	}{
		{"productId", func(in *CreateInput) { in.ProductID = "" }},
		{"productName", func(in *CreateInput) { in.ProductName = "" }},
		{"pricePerPiece", func(in *CreateInput) { in.PricePerPiece = 0 }},
		{"quantity", func(in *CreateInput) { in.Quantity = 0 }},
		{"totalPrice", func(in *CreateInput) { in.TotalPrice = 0 }},
		{"email", func(in *CreateInput) { in.Email = "" }},
		{"firstName", func(in *CreateInput) { in.FirstName = "" }},
		{"lastName", func(in *CreateInput) { in.LastName = "" }},
		{"contactNumber", func(in *CreateInput) { in.ContactNumber = "" }},
		{"deliveryAddress", func(in *CreateInput) { in.DeliveryAddress = "" }},
		{"paymentMethod", func(in *CreateInput) { in.PaymentMethod = "" }},
	}

	for _, tc := range cases {
		in := fullInput()
		tc.clear(&in)

		err := validateCreateInput(in)
		var validationErr ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError for %s, got %v", tc.field, err)
		}
		if validationErr.Field != tc.field {
			t.Fatalf("expected field %s, got %s", tc.field, validationErr.Field)
		}
		if validationErr.Error() != tc.field+" is required" {
			t.Fatalf("unexpected message for %s: %s", tc.field, validationErr.Error())
		}
	}
}

func TestValidateCreateInputReportsFirstMissingField(t *testing.T) {
	in := fullInput()
	in.Quantity = 0
	in.Email = ""
	in.DeliveryAddress = ""

	err := validateCreateInput(in)
	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// Fixed scan order: quantity comes before email and deliveryAddress.
	if validationErr.Field != "quantity" {
		t.Fatalf("expected quantity reported first, got %s", validationErr.Field)
	}
}

func TestValidateCreateInputAcceptsCompleteInput(t *testing.T) {
	if err := validateCreateInput(fullInput()); err != nil {
		t.Fatalf("expected complete input to pass, got %v", err)
	}
}

func TestValidateCreateInputKeepsNegativeValues(t *testing.T) {
	// Only zero counts as absent; negative values pass the presence scan.
	in := fullInput()
	in.Quantity = -1

	if err := validateCreateInput(in); err != nil {
		t.Fatalf("expected negative quantity to pass presence scan, got %v", err)
	}
}
