package models

// BookingStatus is the fulfillment state of a booking. Any status may follow
// any other; the service does not enforce a transition graph.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusProcessing BookingStatus = "processing"
	StatusShipped    BookingStatus = "shipped"
	StatusDelivered  BookingStatus = "delivered"
	StatusCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks whether a booking has been paid for.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// PaymentMethodCashOnDelivery is the one payment method that skips the
// payment gateway; it drives the initial status/paymentStatus pair.
const PaymentMethodCashOnDelivery = "Cash on Delivery"
