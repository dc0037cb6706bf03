package models

import "testing"

func TestBookingStatusIsValid(t *testing.T) {
	valid := []BookingStatus{
		StatusPending,
		StatusConfirmed,
		StatusProcessing,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
	}
	for _, status := range valid {
		if !status.IsValid() {
			t.Fatalf("expected %s to be valid", status)
		}
	}

	invalid := []BookingStatus{"", "done", "Pending", "SHIPPED", "refunded"}
	for _, status := range invalid {
		if status.IsValid() {
			t.Fatalf("expected %q to be invalid", status)
		}
	}
}
