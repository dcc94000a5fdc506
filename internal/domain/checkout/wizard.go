package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/yuzvak/nhh-storefront/internal/domain/cart"
	"github.com/yuzvak/nhh-storefront/internal/domain/errors"
	"github.com/yuzvak/nhh-storefront/internal/domain/pricing"
)

type Step string

const (
	StepDeliverySelection Step = "delivery"
	StepCustomerDetails   Step = "details"
	StepReview            Step = "review"
	StepConfirmation      Step = "confirmation"
)

type ReviewLine struct {
	Name      string
	Qty       int
	LineTotal decimal.Decimal
}

type Review struct {
	Items          []ReviewLine
	Delivery       DeliveryMethod
	DeliveryLabel  string
	DeliveryCharge decimal.Decimal
	ChargeDisplay  string
	Subtotal       decimal.Decimal
	Total          decimal.Decimal
	Customer       CustomerDetails
	Address        []string
}

type Confirmation struct {
	Reference string
	Delivery  DeliveryMethod
	Total     decimal.Decimal
	Message   string
}

// Wizard is the ephemeral checkout session: the selected delivery method and
// the customer details typed so far, plus the step the customer is on.
//
//	delivery -> details -> review -> confirmation
//
// Every step but the first can go back one step, except confirmation which is
// terminal.
type Wizard struct {
	step         Step
	delivery     DeliveryMethod
	details      CustomerDetails
	confirmation *Confirmation
}

func NewWizard() *Wizard {
	w := &Wizard{}
	w.Reset()
	return w
}

// Reset discards everything entered so far and returns to delivery selection.
func (w *Wizard) Reset() {
	w.step = StepDeliverySelection
	w.delivery = DeliveryNone
	w.details = CustomerDetails{}
	w.confirmation = nil
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Delivery() DeliveryMethod {
	return w.delivery
}

func (w *Wizard) Details() CustomerDetails {
	return w.details
}

func (w *Wizard) Confirmation() *Confirmation {
	return w.confirmation
}

// CanContinue reports whether the continue action on the delivery step is enabled.
func (w *Wizard) CanContinue() bool {
	return w.step == StepDeliverySelection && w.delivery.Valid()
}

// SelectDelivery records the chosen method and returns the advisory notice
// that goes with it, if any.
func (w *Wizard) SelectDelivery(m DeliveryMethod) (string, error) {
	if w.step != StepDeliverySelection {
		return "", errors.ErrInvalidTransition
	}
	if !m.Valid() {
		return "", errors.ErrUnknownDeliveryMethod
	}

	w.delivery = m
	if m == DeliveryTruck {
		return TruckNotice, nil
	}
	return "", nil
}

func (w *Wizard) Continue() error {
	if w.step != StepDeliverySelection {
		return errors.ErrInvalidTransition
	}
	if !w.delivery.Valid() {
		return errors.ErrNoDeliverySelected
	}

	w.step = StepCustomerDetails
	return nil
}

// SubmitDetails keeps whatever was entered, even when validation fails, so the
// customer can correct it and retry.
func (w *Wizard) SubmitDetails(d CustomerDetails) error {
	if w.step != StepCustomerDetails {
		return errors.ErrInvalidTransition
	}

	w.details = d.Trimmed()
	if err := w.details.Validate(w.delivery); err != nil {
		return err
	}

	w.step = StepReview
	return nil
}

func (w *Wizard) Back() error {
	switch w.step {
	case StepCustomerDetails:
		w.step = StepDeliverySelection
	case StepReview:
		w.step = StepCustomerDetails
	default:
		return errors.ErrInvalidTransition
	}
	return nil
}

// Review builds the read-only summary from the cart snapshot and the already
// validated session state.
func (w *Wizard) Review(items []cart.LineItem) (Review, error) {
	if w.step != StepReview {
		return Review{}, errors.ErrInvalidTransition
	}

	subtotal := decimal.Zero
	lines := make([]ReviewLine, 0, len(items))
	for _, item := range items {
		lineTotal := item.LineTotal()
		subtotal = subtotal.Add(lineTotal)
		lines = append(lines, ReviewLine{Name: item.Name, Qty: item.Qty, LineTotal: lineTotal})
	}

	charge := w.delivery.Charge()
	chargeDisplay := "FREE"
	if !charge.IsZero() {
		chargeDisplay = pricing.Format(charge)
	}

	customer := w.details
	var address []string
	if w.delivery.RequiresAddress() {
		address = customer.AddressLines()
	} else {
		customer.Address1, customer.Town, customer.County, customer.Eircode = "", "", "", ""
	}

	return Review{
		Items:          lines,
		Delivery:       w.delivery,
		DeliveryLabel:  w.delivery.Label(),
		DeliveryCharge: charge,
		ChargeDisplay:  chargeDisplay,
		Subtotal:       subtotal,
		Total:          subtotal.Add(charge),
		Customer:       customer,
		Address:        address,
	}, nil
}

// PlaceOrder moves the wizard to its terminal step. It cannot fail once the
// review step has been reached.
func (w *Wizard) PlaceOrder(reference string, subtotal decimal.Decimal) (Confirmation, error) {
	if w.step != StepReview {
		return Confirmation{}, errors.ErrInvalidTransition
	}

	conf := Confirmation{
		Reference: reference,
		Delivery:  w.delivery,
		Total:     subtotal.Add(w.delivery.Charge()),
		Message:   w.delivery.ConfirmationMessage(),
	}

	w.confirmation = &conf
	w.step = StepConfirmation
	return conf, nil
}
