package generator

import "errors"

var (
	ErrLengthTooShort        = errors.New("length must be at least 1")
	ErrLengthTooLong         = errors.New("length must be at most 256")
	ErrNoCharacterClasses    = errors.New("at least one character class must be selected")
	ErrNoRepeatImpossible    = errors.New("no-repeat requires a charset with at least 2 characters")
	ErrWordCountTooSmall     = errors.New("word count must be at least 1")
	ErrWordCountTooLarge     = errors.New("word count exceeds vocabulary size")
	ErrNegativeSuffix        = errors.New("suffix length must not be negative")
	ErrUnknownCapitalization = errors.New("unknown capitalization mode")

	// ErrGenerationExhausted is returned when a bounded retry loop failed to
	// satisfy a constraint within its attempt budget.
	ErrGenerationExhausted = errors.New("retry budget exhausted while satisfying generation constraints")
)

// IsConfigError reports whether err is caused by invalid or contradictory
// generator options, as opposed to a runtime failure.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrLengthTooShort) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrNoCharacterClasses) ||
		errors.Is(err, ErrNoRepeatImpossible) ||
		errors.Is(err, ErrWordCountTooSmall) ||
		errors.Is(err, ErrWordCountTooLarge) ||
		errors.Is(err, ErrNegativeSuffix) ||
		errors.Is(err, ErrUnknownCapitalization)
}
