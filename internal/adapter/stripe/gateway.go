// Package stripe is the payment adapter: card registration and off-session
// charges through the Stripe API.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"soundcamps/internal/config/configs"
	"soundcamps/internal/core/domain"
)

const (
	defaultEmail       = "customer@example.com"
	defaultName        = "Customer"
	defaultDescription = "Campaign launch payment"
)

// Gateway implements port.PaymentGateway.
type Gateway struct {
	sc     *client.API
	logger *slog.Logger
}

// NewGateway builds a gateway for cfg.SecretKey. Stripe's own logging is
// routed to logger.
func NewGateway(cfg configs.Stripe, logger *slog.Logger) *Gateway {
	bc := &stripe.BackendConfig{
		LeveledLogger:     leveledLogger{logger: logger},
		MaxNetworkRetries: stripe.Int64(0),
	}
	if cfg.APIURL != "" {
		bc.URL = stripe.String(cfg.APIURL)
	}
	api := stripe.GetBackendWithConfig(stripe.APIBackend, bc)
	backends := &stripe.Backends{API: api, Connect: api, Uploads: api}
	return &Gateway{sc: client.New(cfg.SecretKey, backends), logger: logger}
}

// RegisterPaymentMethod reads the card behind req.PaymentMethodID and
// creates a customer with it as default payment method.
func (g *Gateway) RegisterPaymentMethod(ctx context.Context, req domain.PaymentMethodRequest) (domain.PaymentMethod, error) {
	pmParams := &stripe.PaymentMethodParams{}
	pmParams.Context = ctx
	pm, err := g.sc.PaymentMethods.Get(req.PaymentMethodID, pmParams)
	if err != nil {
		return domain.PaymentMethod{}, fmt.Errorf("retrieve payment method: %w", userError(err))
	}

	email, name := req.Email, req.Name
	if email == "" {
		email = defaultEmail
	}
	if name == "" {
		name = defaultName
	}
	custParams := &stripe.CustomerParams{
		Email:         stripe.String(email),
		Name:          stripe.String(name),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(req.PaymentMethodID),
		},
	}
	custParams.Context = ctx
	cust, err := g.sc.Customers.New(custParams)
	if err != nil {
		return domain.PaymentMethod{}, fmt.Errorf("create customer: %w", userError(err))
	}
	g.logger.Info("stripe customer created", slog.String("customer_id", cust.ID))

	return domain.PaymentMethod{
		PaymentMethodID: req.PaymentMethodID,
		CustomerID:      cust.ID,
		Card:            cardSummary(pm.Card),
	}, nil
}

// Charge confirms an off-session payment intent for the daily budget.
// Declines and intents needing customer action come back as an unsuccessful
// result; only transport failures are errors.
func (g *Gateway) Charge(ctx context.Context, req domain.ChargeRequest) (domain.ChargeResult, error) {
	desc := req.Description
	if desc == "" {
		desc = defaultDescription
	}
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(toCents(req.AmountUSD)),
		Currency:      stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		Description:   stripe.String(desc),
		Confirm:       stripe.Bool(true),
		OffSession:    stripe.Bool(true),
	}
	if req.CustomerID != "" {
		params.Customer = stripe.String(req.CustomerID)
	}
	params.AddMetadata("campaignId", req.CampaignID)
	params.Context = ctx

	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) {
			res := domain.ChargeResult{Success: false, Error: serr.Msg}
			if serr.PaymentIntent != nil {
				res.Status = string(serr.PaymentIntent.Status)
			}
			return res, nil
		}
		return domain.ChargeResult{}, err
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return domain.ChargeResult{Success: true, ChargeID: pi.ID, Status: string(pi.Status)}, nil
	case stripe.PaymentIntentStatusRequiresAction:
		return domain.ChargeResult{
			Success:      false,
			Status:       string(pi.Status),
			ClientSecret: pi.ClientSecret,
			Error:        "This payment requires additional authentication",
		}, nil
	default:
		return domain.ChargeResult{
			Success: false,
			Status:  string(pi.Status),
			Error:   fmt.Sprintf("Payment failed with status: %s", pi.Status),
		}, nil
	}
}

func toCents(usd float64) int64 {
	return int64(math.Round(usd * 100))
}

func cardSummary(c *stripe.PaymentMethodCard) domain.CardSummary {
	s := domain.CardSummary{Brand: "unknown", Last4: "0000", ExpMonth: 12, ExpYear: 2030}
	if c == nil {
		return s
	}
	if c.Brand != "" {
		s.Brand = string(c.Brand)
	}
	if c.Last4 != "" {
		s.Last4 = c.Last4
	}
	if c.ExpMonth != 0 {
		s.ExpMonth = int(c.ExpMonth)
	}
	if c.ExpYear != 0 {
		s.ExpYear = int(c.ExpYear)
	}
	return s
}

// userError replaces a Stripe API error with its user-facing message.
func userError(err error) error {
	var serr *stripe.Error
	if errors.As(err, &serr) && serr.Msg != "" {
		return &domain.ChargeError{Message: serr.Msg}
	}
	return err
}
