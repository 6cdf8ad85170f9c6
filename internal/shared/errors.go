package shared

import "errors"

// ErrMalformedRow marks a stored record that failed decode/validation.
// A list call containing one fails as a whole.
var ErrMalformedRow = errors.New("malformed row")
