package fixture

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Set.ByID when no case has the requested id.
var ErrNotFound = errors.New("fixture not found")

// NotFoundError reports the id of a failed lookup. It wraps ErrNotFound.
type NotFoundError struct {
	ID int
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("fixture %d not found", err.ID)
}

func (err *NotFoundError) Unwrap() error {
	return ErrNotFound
}
