package checkout

import (
	"context"
	"strings"

	"tastebite-be/internal/cart"
	"tastebite-be/internal/delivery"
	"tastebite-be/internal/geo"
	"tastebite-be/internal/kvstore"
	"tastebite-be/internal/logger"
	"tastebite-be/internal/order"
	"tastebite-be/internal/payment"

	"go.uber.org/zap"
)

// Session keys for the payment-page hand-off. The selection is made on one
// page and consumed on the next, so it lives in the session store rather
// than in a request.
const (
	sessionKeyPaymentMethod = "paymentMethod"
	sessionKeyPaymentPhone  = "paymentPhone"
)

type Service interface {
	// Quote resolves the distance and delivery estimate for an address.
	Quote(ctx context.Context, address string) (Quote, error)

	// SavePaymentSelection stashes the chosen method (and phone, for
	// mobile money) in the session for the confirmation step.
	SavePaymentSelection(ctx context.Context, method payment.Method, phone string) error

	// PaymentSelection returns the stashed method and phone.
	PaymentSelection(ctx context.Context) (payment.Method, string, error)

	// PlaceOrder charges the payment and turns the cart into an order.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Result, error)
}

type service struct {
	cart    *cart.Cart
	orders  *order.Store
	gateway *geo.Gateway
	charger payment.Gateway
	session kvstore.Store
}

func NewService(c *cart.Cart, orders *order.Store, gateway *geo.Gateway, charger payment.Gateway, session kvstore.Store) Service {
	return &service{
		cart:    c,
		orders:  orders,
		gateway: gateway,
		charger: charger,
		session: session,
	}
}

func (s *service) Quote(ctx context.Context, address string) (Quote, error) {
	if strings.TrimSpace(address) == "" {
		return Quote{}, ErrMissingAddress
	}

	distanceKm := s.gateway.DistanceBetween(ctx, s.orders.RestaurantAddress(), address)

	return Quote{
		DistanceKm:      distanceKm,
		EstimateMinutes: delivery.EstimateMinutes(distanceKm),
		Deliverable:     delivery.IsDeliverable(distanceKm),
		DeliveryCharge:  DeliveryCharge,
	}, nil
}

func (s *service) SavePaymentSelection(ctx context.Context, method payment.Method, phone string) error {
	if !method.Valid() {
		return payment.ErrUnknownMethod
	}

	if err := s.session.Set(ctx, sessionKeyPaymentMethod, string(method)); err != nil {
		return err
	}
	if phone != "" {
		return s.session.Set(ctx, sessionKeyPaymentPhone, phone)
	}
	return nil
}

func (s *service) PaymentSelection(ctx context.Context) (payment.Method, string, error) {
	raw, ok, err := s.session.Get(ctx, sessionKeyPaymentMethod)
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", ErrNoPaymentSelection
	}

	phone, _, err := s.session.Get(ctx, sessionKeyPaymentPhone)
	if err != nil {
		return "", "", err
	}

	return payment.Method(raw), phone, nil
}

// PlaceOrder runs the full flow: snapshot the cart, verify the address is
// within range, charge the payment, create the order, then empty the cart
// and the session hand-off. The deliverability check happens before the
// charge so an out-of-range address never costs the buyer money.
func (s *service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Result, error) {
	snap := s.cart.Snapshot()
	if len(snap.Items) == 0 {
		return nil, cart.ErrCartEmpty
	}

	quote, err := s.Quote(ctx, req.DeliveryAddress)
	if err != nil {
		return nil, err
	}
	if !quote.Deliverable {
		return nil, ErrNotDeliverable
	}

	method := req.Method
	phone := req.AirtelNum
	if method == "" {
		method, phone, err = s.PaymentSelection(ctx)
		if err != nil {
			return nil, err
		}
	}

	receipt, err := s.charger.Charge(ctx, payment.ChargeRequest{
		Method:     method,
		AmountDue:  snap.Total + DeliveryCharge,
		BuyerEmail: req.BuyerEmail,
		Card:       req.Card,
		AirtelNum:  phone,
	})
	if err != nil {
		return nil, err
	}

	o, err := s.orders.Create(ctx, order.Draft{
		Items:           snap.Items,
		ItemsTotal:      snap.Total,
		DeliveryCharge:  DeliveryCharge,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		return nil, err
	}

	s.cart.Clear()
	s.clearSelection(ctx)

	logger.FromCtx(ctx).Info("checkout completed",
		zap.String("order_id", o.ID),
		zap.String("payment_reference", receipt.ReferenceID),
	)

	return &Result{Order: o, Receipt: receipt}, nil
}

func (s *service) clearSelection(ctx context.Context) {
	for _, key := range []string{sessionKeyPaymentMethod, sessionKeyPaymentPhone} {
		if err := s.session.Remove(ctx, key); err != nil {
			logger.FromCtx(ctx).Warn("failed to clear session key",
				zap.String("key", key), zap.Error(err))
		}
	}
}
