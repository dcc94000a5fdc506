package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yuzvak/nhh-storefront/internal/domain/errors"
)

type DeliveryMethod string

const (
	DeliveryNone    DeliveryMethod = ""
	DeliveryCollect DeliveryMethod = "collect"
	DeliveryTruck   DeliveryMethod = "truck"
	DeliveryPost    DeliveryMethod = "post"
)

// TruckNotice is shown when truck delivery is picked. It does not gate the wizard.
const TruckNotice = "Truck delivery is available within Leinster only (Dublin, Meath, Louth, Kildare, " +
	"Wicklow, Wexford, Carlow, Kilkenny, Laois, Offaly, Westmeath, Longford). " +
	"Delivery charge depends on location and order weight."

// Charges are flat per method, whatever the notice text suggests.
var deliveryCharges = map[DeliveryMethod]decimal.Decimal{
	DeliveryCollect: decimal.Zero,
	DeliveryTruck:   decimal.RequireFromString("35.00"),
	DeliveryPost:    decimal.RequireFromString("7.95"),
}

var confirmationMessages = map[DeliveryMethod]string{
	DeliveryCollect: "Your order will be ready for collection from our Navan store (Kells Road) within 1–2 hours. We'll send you a text when it's ready.",
	DeliveryTruck:   "Your order will be delivered by truck to your Leinster address on the next working day. We'll call to confirm a delivery window.",
	DeliveryPost:    "Your order will be dispatched via An Post / DPD within 1 working day. You'll receive tracking details by email.",
}

func DeliveryMethods() []DeliveryMethod {
	return []DeliveryMethod{DeliveryCollect, DeliveryTruck, DeliveryPost}
}

func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	m := DeliveryMethod(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := deliveryCharges[m]; !ok {
		return DeliveryNone, errors.ErrUnknownDeliveryMethod
	}
	return m, nil
}

func (m DeliveryMethod) Valid() bool {
	_, ok := deliveryCharges[m]
	return ok
}

func (m DeliveryMethod) Charge() decimal.Decimal {
	if charge, ok := deliveryCharges[m]; ok {
		return charge
	}
	return decimal.Zero
}

func (m DeliveryMethod) RequiresAddress() bool {
	return m != DeliveryCollect
}

func (m DeliveryMethod) Label() string {
	switch m {
	case DeliveryCollect:
		return "Click & Collect (FREE)"
	case DeliveryTruck:
		return "Truck Delivery (Leinster)"
	case DeliveryPost:
		return "Postage / Courier"
	default:
		return ""
	}
}

func (m DeliveryMethod) DetailsTitle() string {
	switch m {
	case DeliveryCollect:
		return "Your Details (Click & Collect)"
	case DeliveryTruck:
		return "Delivery Details (Truck — Leinster)"
	case DeliveryPost:
		return "Delivery Details (Postage / Courier)"
	default:
		return ""
	}
}

func (m DeliveryMethod) ConfirmationMessage() string {
	return confirmationMessages[m]
}
