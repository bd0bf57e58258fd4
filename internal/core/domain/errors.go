package domain

import "errors"

var ErrUnknownStep = errors.New("unknown wizard step")

// ValidationError is a user-correctable step failure.
type ValidationError struct {
	Step    Step
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ChargeError reports a payment provider rejection, either of a card or of
// a charge. Message is safe to show to the user.
type ChargeError struct {
	Message string
	Status  string
}

func (e *ChargeError) Error() string {
	return e.Message
}

var (
	ErrPaymentMethodRequired = errors.New("payment method required")
	ErrCustomerRequired      = errors.New("customer information missing")
	ErrSubmissionInProgress  = errors.New("campaign submission already in progress")
	ErrUnknownRegion         = errors.New("unknown region")
	ErrUnknownCountry        = errors.New("unknown country")
	ErrStepNotReached        = errors.New("step not reached yet")
	ErrUnknownPlan           = errors.New("unknown subscription plan")
)
