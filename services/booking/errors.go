package booking

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a checkout session id has no cached
// cart (never created, expired, or already confirmed).
var ErrSessionNotFound = errors.New("checkout session not found or expired")

// ErrAuthRequired is returned when confirm is attempted without an
// authenticated caller. The operation is not retried server-side; the client
// re-invokes confirm after signing in.
var ErrAuthRequired = errors.New("authentication required to confirm booking")

// IncompleteSelectionError names the cart line that is not yet Ready when
// confirm is attempted, so the UI can send the customer to the right line.
type IncompleteSelectionError struct {
	Index     int
	ServiceID string
}

func (e *IncompleteSelectionError) Error() string {
	return fmt.Sprintf("service %s (line %d) has no complete date/time selection", e.ServiceID, e.Index)
}
