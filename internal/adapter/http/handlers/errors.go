package handlers

import (
	"errors"
	"net/http"

	"pixgate/internal/domain/entities"
	"pixgate/pkg"
)

var errMissingTransactionID = entities.NewValidationError("id", "transaction id is required")

// mapError renders the error taxonomy: bad input is 400, everything else
// is 500 with enough detail to tell configuration from upstream failures.
func mapError(err error) *pkg.AppError {
	var valErr *entities.ValidationError
	var cfgErr *entities.ConfigurationError
	var gwErr *entities.GatewayError

	switch {
	case errors.As(err, &valErr):
		return pkg.NewDomainError("INVALID_REQUEST", valErr.Error(), err, http.StatusBadRequest)
	case errors.As(err, &cfgErr):
		return pkg.NewDomainError("NOT_CONFIGURED", cfgErr.Error(), err, http.StatusInternalServerError)
	case errors.As(err, &gwErr) && gwErr.Timeout:
		return pkg.NewDomainError("PAYMENT_PROVIDER_TIMEOUT", gwErr.Error(), err, http.StatusInternalServerError)
	case errors.As(err, &gwErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", gwErr.Error(), err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
