package store

import (
	"errors"
	"fmt"
)

// Domain errors surfaced to handlers. Handlers map these to 400-class
// responses; ErrStoreUnavailable wraps driver-level faults and maps to 5xx.
var (
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrOwnerNotFound        = errors.New("owner not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrDuplicateProjectName = errors.New("owner already has a project with this name")
	ErrNotFound             = errors.New("record not found")
	ErrStoreUnavailable     = errors.New("datastore unavailable")
)

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
