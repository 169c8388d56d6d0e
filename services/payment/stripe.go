package payment

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Outcome is the result of checking a payment confirmation with the processor.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	// OutcomePending means the processor has not settled the attempt yet; the
	// attempt stays localPending.
	OutcomePending Outcome = "pending"
)

// Event maps a settled outcome to a state-machine event. Pending outcomes map
// to nothing; callers leave the attempt untouched.
func (o Outcome) Event() (Event, bool) {
	switch o {
	case OutcomeSucceeded:
		return EventSucceed, true
	case OutcomeFailed:
		return EventFail, true
	}
	return "", false
}

// Processor abstracts the payment processor so handlers can be tested without
// network access.
type Processor interface {
	CreateIntent(ctx context.Context, bookingID string, amount float64) (intentID, clientSecret string, err error)
	ConfirmOutcome(ctx context.Context, intentID string) (Outcome, error)
}

// StripeProcessor drives payment intents against Stripe. The API key is set
// process-wide in main from configuration.
type StripeProcessor struct {
	logger *zap.Logger
}

func NewStripeProcessor(logger *zap.Logger) *StripeProcessor {
	return &StripeProcessor{logger: logger}
}

// CreateIntent opens a PaymentIntent for the quota total. Amounts are rupees;
// Stripe wants paise.
func (p *StripeProcessor) CreateIntent(ctx context.Context, bookingID string, amount float64) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(string(stripe.CurrencyINR)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("bookingId", bookingID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	p.logger.Info("Payment intent created",
		zap.String("bookingId", bookingID),
		zap.String("intentId", intent.ID))
	return intent.ID, intent.ClientSecret, nil
}

// ConfirmOutcome reads the intent back from Stripe and maps its status to a
// local outcome.
func (p *StripeProcessor) ConfirmOutcome(ctx context.Context, intentID string) (Outcome, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	intent, err := paymentintent.Get(intentID, params)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return OutcomeSucceeded, nil
	case stripe.PaymentIntentStatusProcessing,
		stripe.PaymentIntentStatusRequiresAction,
		stripe.PaymentIntentStatusRequiresConfirmation:
		return OutcomePending, nil
	default:
		// requires_payment_method after a confirmation attempt, or canceled.
		p.logger.Warn("Payment intent did not succeed",
			zap.String("intentId", intentID),
			zap.String("status", string(intent.Status)))
		return OutcomeFailed, nil
	}
}
