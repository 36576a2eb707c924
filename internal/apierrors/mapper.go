package apierrors

import (
	"errors"

	"wa-console/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
//
// Processor sentinels wrap store.ErrNotFound, so every "missing id" error maps
// to a 404 here without this package knowing each processor.
// Unknown errors become a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return NotFound(err)
	default:
		return InternalError(err)
	}
}
