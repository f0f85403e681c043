// Package payments drives the hosted-checkout flow: the backend issues a
// processor payment intent, the processor's hosted page collects the
// card, and the processor redirects back to a local return URL carrying
// a payment-status parameter. The client never implements payment state
// transitions itself.
package payments

import (
	"context"
	"errors"

	"leaseify/internal/models"
	"leaseify/internal/services"
)

// ErrUnavailable is returned when the processor publishable key is not
// configured; the feature degrades rather than failing at startup.
var ErrUnavailable = errors.New("online payments are not configured")

// Checkout requests payment intents on behalf of the tenant.
type Checkout struct {
	payments       services.PaymentService
	publishableKey string
}

func NewCheckout(payments services.PaymentService, publishableKey string) *Checkout {
	return &Checkout{payments: payments, publishableKey: publishableKey}
}

// Available reports whether the processor is configured.
func (c *Checkout) Available() bool {
	return c.publishableKey != ""
}

// Start requests a payment intent for the given lease and amount. The
// caller hands the returned CheckoutURL to the processor's hosted page;
// the client's responsibility ends there until the redirect comes back.
func (c *Checkout) Start(ctx context.Context, leaseID string, amount float64) (*models.PaymentIntent, error) {
	if !c.Available() {
		return nil, ErrUnavailable
	}
	return c.payments.CreateIntent(ctx, &models.CreateIntentRequest{
		LeaseID: leaseID,
		Amount:  amount,
	})
}
