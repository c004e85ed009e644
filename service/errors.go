package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCart means checkout was attempted with no items; callers send
	// the customer back to the catalog instead of surfacing an error.
	ErrEmptyCart = errors.New("cart is empty")

	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

// ValidationError carries field-level problems with a checkout submission.
// Nothing is persisted while one of these is outstanding.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))
}
