package brackets

import "errors"

var (
	ErrUnsupportedStageType  = errors.New("unsupported stage type")
	ErrNotEnoughSeeds        = errors.New("not enough seeds for this stage")
	ErrOrderingCount         = errors.New("wrong number of seed orderings")
	ErrInvalidManualOrdering = errors.New("invalid manual ordering")
	ErrInvalidGrandFinal     = errors.New("invalid grand final type")
	ErrInvalidGroupCount     = errors.New("invalid group count")
	ErrInvalidChildCount     = errors.New("invalid matches child count")
)
