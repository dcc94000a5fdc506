package use_cases

import (
	"context"

	"github.com/yuzvak/nhh-storefront/internal/application/ports"
	"github.com/yuzvak/nhh-storefront/internal/application/session"
	"github.com/yuzvak/nhh-storefront/internal/domain/checkout"
	"github.com/yuzvak/nhh-storefront/internal/domain/errors"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

type CheckoutState struct {
	Step          checkout.Step
	Delivery      checkout.DeliveryMethod
	DeliveryLabel string
	DetailsTitle  string
	CanContinue   bool
	Details       checkout.CustomerDetails
	Confirmation  *checkout.Confirmation
}

type CheckoutUseCase struct {
	sessions *session.Registry
	refs     ports.ReferenceGenerator
	observer ports.CheckoutObserver
	log      *logger.Logger
}

func NewCheckoutUseCase(
	sessions *session.Registry,
	refs ports.ReferenceGenerator,
	observer ports.CheckoutObserver,
	log *logger.Logger,
) *CheckoutUseCase {
	if observer == nil {
		observer = ports.NopCheckoutObserver{}
	}
	return &CheckoutUseCase{
		sessions: sessions,
		refs:     refs,
		observer: observer,
		log:      log,
	}
}

// Open starts a fresh checkout. The cart summary is closed first, so an
// empty cart leaves the shopper with neither panel open.
func (uc *CheckoutUseCase) Open(ctx context.Context, sessionID string) (CheckoutState, error) {
	s, release := uc.sessions.Acquire(ctx, sessionID)
	defer release()

	s.SummaryOpen = false
	if s.Cart.IsEmpty() {
		return CheckoutState{}, errors.ErrCartEmpty
	}

	s.Checkout.Reset()
	s.CheckoutOpen = true
	uc.observer.StepEntered(ctx, sessionID, s.Checkout.Step())

	return state(s.Checkout), nil
}

func (uc *CheckoutUseCase) State(ctx context.Context, sessionID string) (CheckoutState, error) {
	s, release := uc.sessions.Acquire(ctx, sessionID)
	defer release()

	if !s.CheckoutOpen {
		return CheckoutState{}, errors.ErrCheckoutNotOpen
	}
	return state(s.Checkout), nil
}

// SelectDelivery returns the notice to show for the chosen method, if any.
func (uc *CheckoutUseCase) SelectDelivery(ctx context.Context, sessionID, method string) (CheckoutState, string, error) {
	m, err := checkout.ParseDeliveryMethod(method)
	if err != nil {
		return CheckoutState{}, "", err
	}

	s, release := uc.sessions.Acquire(ctx, sessionID)
	defer release()

	if !s.CheckoutOpen {
		return CheckoutState{}, "", errors.ErrCheckoutNotOpen
	}

	notice, err := s.Checkout.SelectDelivery(m)
	if err != nil {
		return CheckoutState{}, "", err
	}
	return state(s.Checkout), notice, nil
}

func (uc *CheckoutUseCase) Continue(ctx context.Context, sessionID string) (CheckoutState, error) {
	return uc.transition(ctx, sessionID, func(w *checkout.Wizard) error {
		return w.Continue()
	})
}

func (uc *CheckoutUseCase) SubmitDetails(ctx context.Context, sessionID string, details checkout.CustomerDetails) (CheckoutState, error) {
	return uc.transition(ctx, sessionID, func(w *checkout.Wizard) error {
		return w.SubmitDetails(details)
	})
}

func (uc *CheckoutUseCase) Back(ctx context.Context, sessionID string) (CheckoutState, error) {
	return uc.transition(ctx, sessionID, func(w *checkout.Wizard) error {
		return w.Back()
	})
}

// Review summarises the order using the cart as it is right now.
func (uc *CheckoutUseCase) Review(ctx context.Context, sessionID string) (checkout.Review, error) {
	s, release := uc.sessions.Acquire(ctx, sessionID)
	defer release()

	if !s.CheckoutOpen {
		return checkout.Review{}, errors.ErrCheckoutNotOpen
	}
	return s.Checkout.Review(s.Cart.Items())
}

// PlaceOrder confirms the order and empties the cart. Nothing is sent
// anywhere; the reference only identifies the order to the shopper.
func (uc *CheckoutUseCase) PlaceOrder(ctx context.Context, sessionID string) (checkout.Confirmation, error) {
	s, release := uc.sessions.Acquire(ctx, sessionID)
	defer release()

	if !s.CheckoutOpen {
		return checkout.Confirmation{}, errors.ErrCheckoutNotOpen
	}

	conf, err := s.Checkout.PlaceOrder(uc.refs.OrderReference(), s.Cart.Total())
	if err != nil {
		return checkout.Confirmation{}, err
	}

	s.Cart.Clear(ctx)
	uc.observer.OrderPlaced(ctx, sessionID, conf)

	uc.log.Info("Order placed",
		"session_id", sessionID,
		"reference", conf.Reference,
		"delivery", string(conf.Delivery),
		"total", conf.Total.StringFixed(2),
	)

	return conf, nil
}

// Close hides the checkout. Progress is kept until the next Open.
func (uc *CheckoutUseCase) Close(ctx context.Context, sessionID string) {
	s, release := uc.sessions.Acquire(ctx, sessionID)
	defer release()

	s.CheckoutOpen = false
}

func (uc *CheckoutUseCase) transition(ctx context.Context, sessionID string, step func(*checkout.Wizard) error) (CheckoutState, error) {
	s, release := uc.sessions.Acquire(ctx, sessionID)
	defer release()

	if !s.CheckoutOpen {
		return CheckoutState{}, errors.ErrCheckoutNotOpen
	}

	before := s.Checkout.Step()
	if err := step(s.Checkout); err != nil {
		return state(s.Checkout), err
	}
	if after := s.Checkout.Step(); after != before {
		uc.observer.StepEntered(ctx, sessionID, after)
	}

	return state(s.Checkout), nil
}

func state(w *checkout.Wizard) CheckoutState {
	st := CheckoutState{
		Step:         w.Step(),
		Delivery:     w.Delivery(),
		CanContinue:  w.CanContinue(),
		Details:      w.Details(),
		Confirmation: w.Confirmation(),
	}
	if st.Delivery.Valid() {
		st.DeliveryLabel = st.Delivery.Label()
		st.DetailsTitle = st.Delivery.DetailsTitle()
	}
	return st
}
