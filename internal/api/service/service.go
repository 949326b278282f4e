package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/myvehicles/internal/api/store"
	"github.com/aussiebroadwan/myvehicles/internal/api/validation"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrInvalidID       = errors.New("invalid id")
	ErrWrongPassword   = errors.New("wrong password")
)

// Connector hands out the shared Store. *store.Gateway implements it.
type Connector interface {
	Connect(ctx context.Context) (store.Store, error)
}

// ValidationError carries every field error of a rejected write.
type ValidationError struct {
	Errors []validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field error(s)", len(e.Errors))
}

// validate runs rs and turns field errors into a *ValidationError.
func validate(ctx context.Context, rs validation.Ruleset, in validation.Input) error {
	errs, err := rs.Validate(ctx, in)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// mapStoreError converts store sentinels into service errors, wrapping the
// rest as storage faults.
func mapStoreError(op string, err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrInvalidID):
		return ErrInvalidID
	case errors.Is(err, store.ErrNotFound) && notFound != nil:
		return notFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
