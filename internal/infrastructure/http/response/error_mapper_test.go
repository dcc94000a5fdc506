package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/yuzvak/nhh-storefront/internal/domain/errors"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domainErrors.ErrProductNotFound, http.StatusNotFound},
		{domainErrors.ErrCartEmpty, http.StatusConflict},
		{fmt.Errorf("wizard: %w", domainErrors.ErrInvalidTransition), http.StatusConflict},
		{domainErrors.ErrAdminRequired, http.StatusForbidden},
		{domainErrors.ErrUnsupportedDocument, http.StatusUnsupportedMediaType},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		status, _ := MapDomainError(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
	}
}

func TestMapDomainError_UsesDomainTextForDetails(t *testing.T) {
	status, resp := MapDomainError(domainErrors.ErrCustomerDetailsIncomplete)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "please fill in your name, phone, and email", resp.Message)
	assert.Equal(t, StatusValidationError, resp.Status)
}

func TestWriteDomainError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteDomainError(rec, errors.New("pq: password authentication failed"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body.Message)
	assert.Empty(t, body.Error)
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccess(rec, map[string]int{"count": 2}, "ok")

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"success","message":"ok","data":{"count":2}}`, rec.Body.String())
}
