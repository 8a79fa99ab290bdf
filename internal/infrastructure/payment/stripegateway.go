package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"toolvault/internal/application/billing/paymentgateway"
	"toolvault/internal/shared/logger"
)

// StripeGateway implements paymentgateway.PaymentGateway against the Stripe API.
type StripeGateway struct {
	api    *client.API
	logger logger.Interface
}

func NewStripeGateway(secretKey string, log logger.Interface) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{
		api:    api,
		logger: log,
	}
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req paymentgateway.CreatePaymentIntentRequest) (*paymentgateway.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
	}
	params.Context = ctx
	if req.CustomerID != "" {
		params.Customer = stripe.String(req.CustomerID)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.logger.Errorw("stripe payment intent creation failed", "error", err)
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return toPaymentIntent(pi), nil
}

func (g *StripeGateway) GetPaymentIntent(ctx context.Context, id string) (*paymentgateway.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment intent: %w", err)
	}

	return toPaymentIntent(pi), nil
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	if name != "" {
		params.Name = stripe.String(name)
	}

	customer, err := g.api.Customers.New(params)
	if err != nil {
		g.logger.Errorw("stripe customer creation failed", "error", err)
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	return customer.ID, nil
}

func (g *StripeGateway) CreateSubscription(ctx context.Context, customerID, priceID string) (*paymentgateway.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
	}
	params.Context = ctx
	params.AddExpand("latest_invoice.payment_intent")

	sub, err := g.api.Subscriptions.New(params)
	if err != nil {
		g.logger.Errorw("stripe subscription creation failed", "error", err, "customer_id", customerID)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return toSubscription(sub), nil
}

func (g *StripeGateway) GetSubscription(ctx context.Context, id string) (*paymentgateway.Subscription, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx
	params.AddExpand("latest_invoice.payment_intent")

	sub, err := g.api.Subscriptions.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return toSubscription(sub), nil
}

func toPaymentIntent(pi *stripe.PaymentIntent) *paymentgateway.PaymentIntent {
	return &paymentgateway.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}
}

func toSubscription(sub *stripe.Subscription) *paymentgateway.Subscription {
	out := &paymentgateway.Subscription{
		ID:     sub.ID,
		Status: string(sub.Status),
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		out.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}
	return out
}
