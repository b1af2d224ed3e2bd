package domaintree

import (
	"fmt"

	"github.com/getlantern/errors"
)

// Callers match rejected input with errors.Is, for example
// errors.Is(err, domaintree.ErrInvalidPattern). The returned error's message
// also names the offending input and why it was rejected.
var (
	// ErrInvalidPattern is wrapped by errors from Insert for patterns that don't
	// decompose into a non-empty sequence of non-empty labels.
	ErrInvalidPattern errors.Error = errors.New("invalid pattern")

	// ErrInvalidDomain is wrapped by errors from Lookup for malformed query
	// domains, including ones with a leading dot.
	ErrInvalidDomain errors.Error = errors.New("invalid domain")
)

// inputError ties a rejected input to one of the sentinel errors above.
type inputError struct {
	kind   errors.Error
	input  string
	reason string
}

func (e *inputError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.kind.ErrorClean(), e.input, e.reason)
}

func (e *inputError) Unwrap() error {
	return e.kind
}
