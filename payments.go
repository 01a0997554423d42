package main

import (
	"context"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// PaymentIntenter creates a payment intent for an amount in integer
// minor units and returns the client-usable secret.
type PaymentIntenter interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type stripePayments struct{}

func newStripePayments(secretKey string) *stripePayments {
	stripe.Key = secretKey
	return &stripePayments{}
}

func (stripePayments) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
