package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"garmentgrid/internal/payments"
)

type stubGateway struct {
	amount   int64
	currency string
	meta     payments.IntentMetadata
	err      error
}

func (g *stubGateway) CreateIntent(_ context.Context, amountMinor int64, currency string, meta payments.IntentMetadata) (string, error) {
	g.amount = amountMinor
	g.currency = currency
	g.meta = meta
	if g.err != nil {
		return "", g.err
	}
	return "cs_test_secret", nil
}

func (g *stubGateway) RetrieveIntentStatus(context.Context, string) (string, error) {
	return payments.IntentSucceeded, nil
}

func newPaymentTestRouter(gateway payments.Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/create-payment-intent", CreatePaymentIntent(gateway))
	r.POST("/payment-confirmation", ConfirmPayment(nil))
	return r
}

func TestCreatePaymentIntentRequiresPositiveAmount(t *testing.T) {
	gateway := &stubGateway{}
	r := newPaymentTestRouter(gateway)

	for _, body := range []string{`{"amount":0}`, `{"amount":-5}`, `{}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Valid amount is required") {
			t.Fatalf("body %s: unexpected message %s", body, w.Body.String())
		}
	}

	if gateway.amount != 0 {
		t.Fatal("gateway must not be called for invalid amounts")
	}
}

func TestCreatePaymentIntentConvertsToMinorUnits(t *testing.T) {
	gateway := &stubGateway{}
	r := newPaymentTestRouter(gateway)

	body := `{"amount":19.99,"bookingData":{"productName":"Shirt","quantity":2,"email":"a@x.com","firstName":"Ada","lastName":"Lovelace"}}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gateway.amount != 1999 {
		t.Fatalf("expected 1999 minor units, got %d", gateway.amount)
	}
	if gateway.currency != "usd" {
		t.Fatalf("expected default currency usd, got %s", gateway.currency)
	}
	if gateway.meta.CustomerName != "Ada Lovelace" || gateway.meta.Quantity != "2" {
		t.Fatalf("unexpected metadata: %+v", gateway.meta)
	}
	if !strings.Contains(w.Body.String(), "cs_test_secret") {
		t.Fatalf("expected client secret in response, got %s", w.Body.String())
	}
}

func TestConfirmPaymentRejectsMalformedBookingID(t *testing.T) {
	r := newPaymentTestRouter(&stubGateway{})

	body := `{"paymentIntentId":"pi_123","bookingId":"nope"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/payment-confirmation", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid booking ID format") {
		t.Fatalf("expected format message, got %s", w.Body.String())
	}
}
