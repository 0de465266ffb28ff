package club

import (
	"errors"
	"fmt"
)

// ErrValidation covers every bad-submission shape. Validation failures
// are always caught before any write.
var ErrValidation = errors.New("invalid submission")

var (
	ErrSamePlayer          = fmt.Errorf("%w: a match needs two distinct players", ErrValidation)
	ErrTieScore            = fmt.Errorf("%w: tie scores are not allowed", ErrValidation)
	ErrNegativeScore       = fmt.Errorf("%w: scores must be non-negative", ErrValidation)
	ErrEmptyName           = fmt.Errorf("%w: player name must not be empty", ErrValidation)
	ErrInvalidTier         = fmt.Errorf("%w: unknown tier", ErrValidation)
	ErrAttributeOutOfRange = fmt.Errorf("%w: attributes must be between 1 and 10", ErrValidation)
)
