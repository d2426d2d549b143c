package vocab

import "errors"

// ErrMalformed is returned by Load/LoadReader when the vocabulary file has
// an unrecognized structure or is missing one of the four required special
// tokens. The vocabulary object is not constructed when this is returned.
var ErrMalformed = errors.New("vocab: malformed vocabulary")
