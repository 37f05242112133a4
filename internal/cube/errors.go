package cube

import "errors"

// ErrMalformedInput is returned when a cube grid's text cannot be parsed:
// wrong line count, wrong line length, or an unrecognized color letter.
var ErrMalformedInput = errors.New("cube: malformed input")
