package response

import (
	"errors"
	"net/http"

	domainErrors "github.com/yuzvak/nhh-storefront/internal/domain/errors"
)

type ErrorMapping struct {
	HTTPStatus int
	Status     Status
	Message    string
}

// An empty Message means the domain error's own text is shown to the shopper.
var errorMappings = map[error]ErrorMapping{
	domainErrors.ErrInvalidLineItem: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
		Message:    "Invalid cart item",
	},
	domainErrors.ErrProductNotFound: {
		HTTPStatus: http.StatusNotFound,
		Status:     StatusNotFound,
		Message:    "Product not found",
	},
	domainErrors.ErrCartEmpty: {
		HTTPStatus: http.StatusConflict,
		Status:     StatusConflict,
		Message:    "Your cart is empty",
	},
	domainErrors.ErrCheckoutNotOpen: {
		HTTPStatus: http.StatusConflict,
		Status:     StatusConflict,
		Message:    "Checkout is not open",
	},
	domainErrors.ErrNoDeliverySelected: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
		Message:    "Please choose a delivery method",
	},
	domainErrors.ErrUnknownDeliveryMethod: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
		Message:    "Unknown delivery method",
	},
	domainErrors.ErrCustomerDetailsIncomplete: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
	},
	domainErrors.ErrDeliveryAddressIncomplete: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
	},
	domainErrors.ErrInvalidTransition: {
		HTTPStatus: http.StatusConflict,
		Status:     StatusConflict,
		Message:    "That step is not available right now",
	},
	domainErrors.ErrInvalidSlug: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
		Message:    "Invalid equipment identifier",
	},
	domainErrors.ErrSpecFieldRequired: {
		HTTPStatus: http.StatusBadRequest,
		Status:     StatusValidationError,
		Message:    "Spec label and value are required",
	},
	domainErrors.ErrUnsupportedDocument: {
		HTTPStatus: http.StatusUnsupportedMediaType,
		Status:     StatusUnsupported,
		Message:    "Only PDF, Word and Excel documents can be uploaded",
	},
	domainErrors.ErrAdminRequired: {
		HTTPStatus: http.StatusForbidden,
		Status:     StatusForbidden,
		Message:    "Admin mode required",
	},
}

func MapDomainError(err error) (int, *ErrorResponse) {
	for domainErr, mapping := range errorMappings {
		if errors.Is(err, domainErr) {
			message := mapping.Message
			if message == "" {
				message = domainErr.Error()
			}
			return mapping.HTTPStatus, Error(mapping.Status, message, err.Error())
		}
	}

	return http.StatusInternalServerError, Error(StatusInternalError, "Internal server error")
}

func WriteDomainError(w http.ResponseWriter, err error) {
	statusCode, errorResponse := MapDomainError(err)
	WriteJSON(w, statusCode, errorResponse)
}
