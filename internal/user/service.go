package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tastebite-be/internal/events"
	"tastebite-be/internal/kvstore"
	"tastebite-be/internal/logger"

	"go.uber.org/zap"
)

// IdentityProvider is the boundary to the external OAuth-style sign-in flow.
type IdentityProvider interface {
	Authenticate(ctx context.Context) (Identity, error)
}

// OrderClearer lets sign-out cascade into the order collection without this
// package depending on the order store directly.
type OrderClearer interface {
	Clear(ctx context.Context) error
}

type Service interface {
	Details(ctx context.Context) (*Details, error)
	UpdateDetails(ctx context.Context, details Details) error
	SignUp(ctx context.Context, name, email, phone, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	LoginWithProvider(ctx context.Context, provider IdentityProvider) (string, error)
	SignOut(ctx context.Context) error
}

type service struct {
	kv         kvstore.Store
	bus        *events.Bus
	orders     OrderClearer
	loginDelay time.Duration
}

func NewService(kv kvstore.Store, bus *events.Bus, orders OrderClearer) Service {
	return &service{
		kv:     kv,
		bus:    bus,
		orders: orders,
		// identity verification is simulated with a fixed delay
		loginDelay: time.Second,
	}
}

func (s *service) Details(ctx context.Context) (*Details, error) {
	raw, ok, err := s.kv.Get(ctx, kvstore.KeyUserDetails)
	if err != nil {
		return nil, fmt.Errorf("load user details: %w", err)
	}
	if !ok {
		return nil, ErrNotSignedIn
	}

	var d Details
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("decode user details: %w", err)
	}
	return &d, nil
}

// UpdateDetails persists the profile and notifies readers holding a copy
// (delivery-address default, checkout prefill).
func (s *service) UpdateDetails(ctx context.Context, details Details) error {
	if details.Phone != "" && !ValidatePhone(details.Phone) {
		return ErrInvalidPhone
	}

	if err := s.save(ctx, details); err != nil {
		return err
	}

	s.bus.Publish(events.TopicProfileUpdated, events.ProfileUpdated{
		Name:    details.Name,
		Email:   details.Email,
		Phone:   details.Phone,
		Address: details.Address,
	})
	return nil
}

func (s *service) SignUp(ctx context.Context, name, email, phone, password string) (string, error) {
	if phone != "" && !ValidatePhone(phone) {
		return "", ErrInvalidPhone
	}

	// Password is hashed for the session record even though no account
	// database exists behind the demo identity flow.
	if _, err := HashPassword(password); err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	if err := s.establishSession(ctx, Details{Name: name, Email: email, Phone: phone}); err != nil {
		return "", err
	}

	return GenerateJWT(name, email)
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrAuthFailure
	}

	select {
	case <-time.After(s.loginDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	if err := s.establishSession(ctx, Details{Name: "Demo User", Email: email}); err != nil {
		return "", err
	}

	return GenerateJWT("Demo User", email)
}

// LoginWithProvider delegates to the external identity provider and
// establishes a session from whatever identity it returns.
func (s *service) LoginWithProvider(ctx context.Context, provider IdentityProvider) (string, error) {
	identity, err := provider.Authenticate(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailure, err)
	}

	if err := s.establishSession(ctx, Details{Name: identity.Name, Email: identity.Email}); err != nil {
		return "", err
	}

	return GenerateJWT(identity.Name, identity.Email)
}

// SignOut clears the profile and the order collection. Clearing orders also
// cancels their in-flight lifecycle timers.
func (s *service) SignOut(ctx context.Context) error {
	if err := s.kv.Remove(ctx, kvstore.KeyUserDetails); err != nil {
		return fmt.Errorf("clear user details: %w", err)
	}

	if s.orders != nil {
		if err := s.orders.Clear(ctx); err != nil {
			return err
		}
	}

	logger.FromCtx(ctx).Info("user signed out")
	return nil
}

func (s *service) establishSession(ctx context.Context, details Details) error {
	if err := s.save(ctx, details); err != nil {
		return err
	}

	s.bus.Publish(events.TopicProfileUpdated, events.ProfileUpdated{
		Name:    details.Name,
		Email:   details.Email,
		Phone:   details.Phone,
		Address: details.Address,
	})

	logger.FromCtx(ctx).Info("session established", zap.String("email", details.Email))
	return nil
}

func (s *service) save(ctx context.Context, details Details) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode user details: %w", err)
	}
	if err := s.kv.Set(ctx, kvstore.KeyUserDetails, string(raw)); err != nil {
		return fmt.Errorf("persist user details: %w", err)
	}
	return nil
}
