package paymentgateway

import "context"

// PaymentGateway defines the interface for the payment provider. Amounts are
// in the smallest currency unit (cents).
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, req CreatePaymentIntentRequest) (*PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error)
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	CreateSubscription(ctx context.Context, customerID, priceID string) (*Subscription, error)
	GetSubscription(ctx context.Context, id string) (*Subscription, error)
}

type CreatePaymentIntentRequest struct {
	Amount     int64
	Currency   string
	CustomerID string
	Metadata   map[string]string
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
}

// Subscription is the provider-side subscription. ClientSecret belongs to
// the latest invoice's payment intent and is what the client confirms.
type Subscription struct {
	ID           string
	CustomerID   string
	Status       string
	ClientSecret string
}

// Provider payment states the use cases act on.
const (
	PaymentIntentSucceeded = "succeeded"
	SubscriptionActive     = "active"
	SubscriptionIncomplete = "incomplete"
)
