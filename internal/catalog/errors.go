package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a product or outcome id does not exist in the catalog
var ErrNotFound = errors.New("not found")

// IntegrityError reports every invariant the catalog definition violates.
// It is only produced while constructing a Store.
type IntegrityError struct {
	Problems []string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("catalog integrity check failed (%d problems): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

func (e *IntegrityError) addf(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}
