package stripe

import (
	"context"

	"soundcamps/internal/core/domain"
	"soundcamps/internal/core/port"
)

var errDisabled = &port.NotConfiguredError{Service: "Stripe"}

// Disabled stands in for the gateway when STRIPE_SECRET_KEY is unset.
type Disabled struct{}

func (Disabled) RegisterPaymentMethod(context.Context, domain.PaymentMethodRequest) (domain.PaymentMethod, error) {
	return domain.PaymentMethod{}, errDisabled
}

func (Disabled) Charge(context.Context, domain.ChargeRequest) (domain.ChargeResult, error) {
	return domain.ChargeResult{}, errDisabled
}
