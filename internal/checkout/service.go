package checkout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	apperrors "breadlab/internal/errors"
)

type SessionCreator interface {
	CreateSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type Service struct {
	sessions SessionCreator
	timeout  time.Duration
	logger   *zap.Logger
}

func NewService(sessions SessionCreator, timeout time.Duration, logger *zap.Logger) *Service {
	return &Service{
		sessions: sessions,
		timeout:  timeout,
		logger:   logger,
	}
}

// CreateSession converts the cart payload into a hosted payment session and
// returns the redirect URL. Every cart entry becomes its own line item with
// quantity 1; quantities are never collapsed, so the provider receipt lists
// each unit separately.
func (s *Service) CreateSession(ctx context.Context, req CreateCheckoutRequest, origin string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(minorUnits(item.Price)),
			},
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(origin + "/?success=true"),
		CancelURL:          stripe.String(origin + "/?canceled=true"),
		CustomerEmail:      stripe.String(req.Email),
	}

	if req.PickupWindow != "" {
		params.AddMetadata("pickupWindow", req.PickupWindow)
	}
	if req.Name != "" {
		params.AddMetadata("buyerName", req.Name)
	}
	if req.Phone != "" {
		params.AddMetadata("buyerPhone", req.Phone)
	}

	session, err := s.sessions.CreateSession(ctx, params)
	if err != nil {
		s.logger.Error("stripe session creation failed", zap.Error(err))
		return "", apperrors.NewUpstreamError("creating checkout session", err)
	}

	return session.URL, nil
}

// minorUnits converts a dollar price into integer cents. Going through
// decimal avoids float artifacts like 19.99*100 = 1998.9999999999998.
func minorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
