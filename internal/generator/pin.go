package generator

import "strings"

// pinRetries bounds whole-string regeneration when AvoidSequential is set.
const pinRetries = 100

// PinOptions configures the PIN generator.
type PinOptions struct {
	Length          int
	AvoidSequential bool
}

// DefaultPinOptions returns the dashboard default: a 6-digit PIN.
func DefaultPinOptions() PinOptions {
	return PinOptions{Length: 6}
}

// GeneratePin draws opts.Length decimal digits uniformly. With
// AvoidSequential set, results that are monotonically ascending or descending
// by 1, or all the same digit, are rejected and regenerated up to a bounded
// number of attempts before failing with ErrGenerationExhausted.
func GeneratePin(src Source, opts PinOptions) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	for attempt := 0; attempt < pinRetries; attempt++ {
		var sb strings.Builder
		sb.Grow(opts.Length)
		for i := 0; i < opts.Length; i++ {
			d, err := src.IntN(10)
			if err != nil {
				return "", err
			}
			sb.WriteByte(byte('0' + d))
		}
		pin := sb.String()

		if !opts.AvoidSequential || !isWeakPin(pin) {
			return pin, nil
		}
	}

	return "", ErrGenerationExhausted
}

// isWeakPin reports whether pin is an obvious pattern: all digits identical,
// or each digit exactly one above or below its predecessor.
func isWeakPin(pin string) bool {
	if len(pin) < 2 {
		return false
	}

	allSame, ascending, descending := true, true, true
	for i := 1; i < len(pin); i++ {
		diff := int(pin[i]) - int(pin[i-1])
		if diff != 0 {
			allSame = false
		}
		if diff != 1 {
			ascending = false
		}
		if diff != -1 {
			descending = false
		}
	}
	return allSame || ascending || descending
}
