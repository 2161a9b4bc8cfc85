// Package payments integrates the billing gateway.
package payments

import "context"

// ChargeRequest describes a charge to submit to the gateway.
type ChargeRequest struct {
	Amount      float64
	Currency    string
	Description string
	PayerEmail  string
}

// ChargeResult is the gateway's answer for a submitted charge.
type ChargeResult struct {
	ProviderPaymentID string
	ProviderStatus    string
}

// Gateway abstracts the payment provider so services and tests don't depend
// on the Mercado Pago SDK directly.
type Gateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
	Name() string
}
