package errors

import (
	"errors"
)

var (
	ErrInvalidLineItem = errors.New("line item requires a name and a non-negative price")
	ErrProductNotFound = errors.New("product not found in catalog")
	ErrCartEmpty       = errors.New("cart is empty")

	ErrCheckoutNotOpen           = errors.New("checkout is not open")
	ErrNoDeliverySelected        = errors.New("no delivery method selected")
	ErrUnknownDeliveryMethod     = errors.New("unknown delivery method")
	ErrCustomerDetailsIncomplete = errors.New("please fill in your name, phone, and email")
	ErrDeliveryAddressIncomplete = errors.New("please fill in your delivery address")
	ErrInvalidTransition         = errors.New("checkout step transition not allowed")

	ErrInvalidSlug         = errors.New("invalid equipment slug")
	ErrSpecFieldRequired   = errors.New("spec label and value are required")
	ErrUnsupportedDocument = errors.New("unsupported document type")
	ErrAdminRequired       = errors.New("admin mode required")
)
