package checkout

import (
	"strings"

	"github.com/yuzvak/nhh-storefront/internal/domain/errors"
)

type CustomerDetails struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address1 string `json:"address1,omitempty"`
	Town     string `json:"town,omitempty"`
	County   string `json:"county,omitempty"`
	Eircode  string `json:"eircode,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

func (d CustomerDetails) Trimmed() CustomerDetails {
	return CustomerDetails{
		Name:     strings.TrimSpace(d.Name),
		Phone:    strings.TrimSpace(d.Phone),
		Email:    strings.TrimSpace(d.Email),
		Address1: strings.TrimSpace(d.Address1),
		Town:     strings.TrimSpace(d.Town),
		County:   strings.TrimSpace(d.County),
		Eircode:  strings.TrimSpace(d.Eircode),
		Notes:    strings.TrimSpace(d.Notes),
	}
}

// Validate checks the fields the given delivery method needs. Address fields
// are only required when goods leave the yard.
func (d CustomerDetails) Validate(method DeliveryMethod) error {
	t := d.Trimmed()
	if t.Name == "" || t.Phone == "" || t.Email == "" {
		return errors.ErrCustomerDetailsIncomplete
	}

	if method.RequiresAddress() && (t.Address1 == "" || t.Town == "") {
		return errors.ErrDeliveryAddressIncomplete
	}

	return nil
}

// AddressLines renders the postal block shown on review, e.g.
// "Main St", "Navan, Co. Meath C15 XY12".
func (d CustomerDetails) AddressLines() []string {
	t := d.Trimmed()

	second := t.Town
	if t.County != "" {
		second += ", " + t.County
	}
	if t.Eircode != "" {
		second += " " + t.Eircode
	}

	return []string{t.Address1, second}
}
