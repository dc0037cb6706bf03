package bookings

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"garmentgrid/internal/models"
	"garmentgrid/internal/payments"
)

// BookingStore is the persistence seam for booking documents.
type BookingStore interface {
	Insert(ctx context.Context, booking models.Booking) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	ListByEmail(ctx context.Context, email string, skip, limit int64) ([]models.Booking, error)
	AllByEmail(ctx context.Context, email string) ([]models.Booking, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	CountByEmailAndStatus(ctx context.Context, email string, status models.BookingStatus) (int64, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus, at time.Time) (bool, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID, event models.TrackingEvent, at time.Time) (bool, error)
	PushTracking(ctx context.Context, id primitive.ObjectID, event models.TrackingEvent, at time.Time) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// ProductStore covers the inventory side effect of booking creation.
type ProductStore interface {
	DecrementAvailable(ctx context.Context, id primitive.ObjectID, quantity int) error
}

// Service is the order lifecycle manager: booking creation, payment
// confirmation, status updates, tracking history and cancellation.
type Service struct {
	store    BookingStore
	products ProductStore
	gateway  payments.Gateway
}

func NewService(store BookingStore, products ProductStore, gateway payments.Gateway) *Service {
	return &Service{store: store, products: products, gateway: gateway}
}

// wishlistCount is a fixed placeholder in user stats; there is no stored
// wishlist entity behind it.
const wishlistCount = 5

// Stats aggregates a user's booking activity by email.
type Stats struct {
	TotalOrders     int64   `json:"totalOrders"`
	CompletedOrders int64   `json:"completedOrders"`
	PendingOrders   int64   `json:"pendingOrders"`
	TotalSpent      float64 `json:"totalSpent"`
	WishlistCount   int     `json:"wishlistCount"`
}

// Create validates the request, derives the initial status pair from the
// payment method and persists the booking with its first tracking entry.
// For non cash-on-delivery methods the product's available inventory is
// decremented by the ordered quantity. The decrement is not transactional
// with the insert and does not check that enough inventory exists.
func (s *Service) Create(ctx context.Context, in CreateInput) (primitive.ObjectID, error) {
	if err := validateCreateInput(in); err != nil {
		return primitive.NilObjectID, err
	}

	productID, err := primitive.ObjectIDFromHex(in.ProductID)
	if err != nil {
		return primitive.NilObjectID, ValidationError{Field: "productId", Message: "Invalid product ID format"}
	}

	now := time.Now()
	status, paymentStatus := initialStatuses(in.PaymentMethod)

	booking := models.Booking{
		ProductID:       productID,
		ProductName:     in.ProductName,
		PricePerPiece:   in.PricePerPiece,
		Quantity:        in.Quantity,
		TotalPrice:      in.TotalPrice,
		Email:           in.Email,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		ContactNumber:   in.ContactNumber,
		DeliveryAddress: in.DeliveryAddress,
		PaymentMethod:   in.PaymentMethod,
		Status:          status,
		PaymentStatus:   paymentStatus,
		CreatedAt:       now,
		UpdatedAt:       now,
		Tracking: []models.TrackingEvent{
			{
				Stage:    "Order Placed",
				Location: "Online",
				Note:     "Order has been placed successfully",
				Date:     now,
			},
		},
	}

	id, err := s.store.Insert(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if in.PaymentMethod != models.PaymentMethodCashOnDelivery {
		// The booking is already persisted at this point; a decrement
		// failure surfaces to the caller without compensation.
		if err := s.products.DecrementAvailable(ctx, productID, in.Quantity); err != nil {
			return primitive.NilObjectID, err
		}
	}

	return id, nil
}

func initialStatuses(paymentMethod string) (models.BookingStatus, models.PaymentStatus) {
	if paymentMethod == models.PaymentMethodCashOnDelivery {
		return models.StatusConfirmed, models.PaymentPending
	}
	return models.StatusPending, models.PaymentPaid
}

// ConfirmPayment checks the intent with the gateway and, on success, marks
// the booking paid/confirmed and appends a tracking entry. The operation is
// not idempotent-guarded: confirming twice appends two entries.
func (s *Service) ConfirmPayment(ctx context.Context, intentID string, bookingID primitive.ObjectID) error {
	status, err := s.gateway.RetrieveIntentStatus(ctx, intentID)
	if err != nil {
		return err
	}
	if status != payments.IntentSucceeded {
		return PaymentNotSucceededError{Status: status}
	}

	now := time.Now()
	event := models.TrackingEvent{
		Stage:    "Payment Confirmed",
		Location: "Online",
		Note:     "Payment has been confirmed",
		Date:     now,
	}

	_, err = s.store.MarkPaid(ctx, bookingID, event, now)
	return err
}

// UpdateStatus sets the booking status after checking it against the
// enumerated set. No transition graph is enforced; any valid status may
// follow any other.
func (s *Service) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error {
	if !status.IsValid() {
		return InvalidStatusError{Status: string(status)}
	}

	matched, err := s.store.SetStatus(ctx, id, status, time.Now())
	if err != nil {
		return err
	}
	if !matched {
		return NotFoundError{Resource: "Booking"}
	}
	return nil
}

// AddTracking appends one event to the booking's tracking history with a
// server-assigned timestamp.
func (s *Service) AddTracking(ctx context.Context, id primitive.ObjectID, stage, location, note string) error {
	now := time.Now()
	event := models.TrackingEvent{
		Stage:    stage,
		Location: location,
		Note:     note,
		Date:     now,
	}

	matched, err := s.store.PushTracking(ctx, id, event, now)
	if err != nil {
		return err
	}
	if !matched {
		return NotFoundError{Resource: "Booking"}
	}
	return nil
}

// Cancel permanently removes a booking. Only pending bookings can be
// cancelled; the record is hard-deleted together with its tracking history.
func (s *Service) Cancel(ctx context.Context, id primitive.ObjectID) error {
	booking, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return NotFoundError{Resource: "Booking"}
	}
	if booking.Status != models.StatusPending {
		return InvalidOperationError{Message: "Cannot cancel order after it's confirmed"}
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return NotFoundError{Resource: "Booking"}
	}
	return nil
}

// Get returns a single booking by id.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NotFoundError{Resource: "Booking"}
	}
	return booking, nil
}

// ListForUser returns one page of a user's bookings, newest first, together
// with the total count for that email.
func (s *Service) ListForUser(ctx context.Context, email string, page, limit int64) ([]models.Booking, int64, error) {
	items, err := s.store.ListByEmail(ctx, email, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.store.CountByEmail(ctx, email)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UserStats aggregates booking counts and spend for an email. TotalSpent
// sums totalPrice over every booking regardless of status, so pending and
// still-present cancelled orders are included.
func (s *Service) UserStats(ctx context.Context, email string) (Stats, error) {
	total, err := s.store.CountByEmail(ctx, email)
	if err != nil {
		return Stats{}, err
	}

	completed, err := s.store.CountByEmailAndStatus(ctx, email, models.StatusDelivered)
	if err != nil {
		return Stats{}, err
	}

	pending, err := s.store.CountByEmailAndStatus(ctx, email, models.StatusPending)
	if err != nil {
		return Stats{}, err
	}

	all, err := s.store.AllByEmail(ctx, email)
	if err != nil {
		return Stats{}, err
	}

	var spent float64
	for _, booking := range all {
		spent += booking.TotalPrice
	}

	return Stats{
		TotalOrders:     total,
		CompletedOrders: completed,
		PendingOrders:   pending,
		TotalSpent:      spent,
		WishlistCount:   wishlistCount,
	}, nil
}
