package seeding

import "fmt"

// IsPowerOfTwo reports whether n is an exact power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NearestPowerOfTwo returns the smallest power of two greater than or equal to n.
func NearestPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

func EnsureEvenSized[T any](s []T) error {
	if len(s)%2 != 0 {
		return fmt.Errorf("%w: length %d must be even", ErrInvalidSize, len(s))
	}
	return nil
}

func EnsureEquallySized[T any](left, right []T) error {
	if len(left) != len(right) {
		return fmt.Errorf("%w: %d != %d", ErrSizeMismatch, len(left), len(right))
	}
	return nil
}

func EnsurePowerOfTwoSized[T any](s []T) error {
	if !IsPowerOfTwo(len(s)) {
		return fmt.Errorf("%w: length %d must be a power of two", ErrInvalidSize, len(s))
	}
	return nil
}

// EnsureNotTied fails when both scores are equal; a tied duel has no winner.
func EnsureNotTied(scores Scores) error {
	if scores[0] == scores[1] {
		return fmt.Errorf("%w: %v and %v", ErrTiedScore, scores[0], scores[1])
	}
	return nil
}
