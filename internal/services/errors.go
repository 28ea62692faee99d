// internal/services/errors.go
package services

import (
	"errors"
	"fmt"

	"github.com/selltrack/selltrack-backend/internal/utils"
)

// Sentinel errors shared by every service. Handlers map them onto the HTTP
// taxonomy with errors.Is: validation 400, not-found 404, forbidden 403,
// conflict 409; anything else is a 500 with a generic message.
//
// Ownership misses are reported as ErrNotFound, not ErrForbidden, so callers
// cannot enumerate other users' records. ErrForbidden is reserved for role
// gates (admin-only platform mutations).
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)

func validateStructReq(s interface{}) error {
	if err := utils.ValidateStruct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
