package generator

import "strings"

const (
	MinLength = 1
	MaxLength = 256

	// noRepeatRetries bounds the redraws per position when NoRepeat is set.
	noRepeatRetries = 100
)

// RandomOptions configures the random password generator.
type RandomOptions struct {
	Length         int
	Uppercase      bool
	Lowercase      bool
	Digits         bool
	Symbols        bool
	ExcludeSimilar bool
	NoRepeat       bool
}

// DefaultRandomOptions returns the dashboard defaults: 16 characters,
// letters and digits on, symbols off.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
	}
}

// GenerateRandom assembles the charset for opts and draws opts.Length
// characters from it. It returns the password and the actual alphabet size,
// which callers feed into entropy accounting.
func GenerateRandom(src Source, opts RandomOptions) (string, int, error) {
	charset, err := BuildCharset(CharsetOptions{
		Uppercase:      opts.Uppercase,
		Lowercase:      opts.Lowercase,
		Digits:         opts.Digits,
		Symbols:        opts.Symbols,
		ExcludeSimilar: opts.ExcludeSimilar,
	})
	if err != nil {
		return "", 0, err
	}

	password, err := GenerateFromCharset(src, opts.Length, charset, opts.NoRepeat)
	if err != nil {
		return "", 0, err
	}
	return password, len(charset), nil
}

// GenerateFromCharset draws length characters uniformly from charset. With
// noRepeat set, a character equal to its predecessor is redrawn up to a
// bounded number of times per position. A single-character charset cannot
// satisfy noRepeat for lengths above 1 and is rejected up front.
func GenerateFromCharset(src Source, length int, charset string, noRepeat bool) (string, error) {
	if length < MinLength {
		return "", ErrLengthTooShort
	}
	if length > MaxLength {
		return "", ErrLengthTooLong
	}
	if charset == "" {
		return "", ErrNoCharacterClasses
	}
	if noRepeat && len(charset) < 2 && length > 1 {
		return "", ErrNoRepeatImpossible
	}

	var sb strings.Builder
	sb.Grow(length)

	var prev byte
	for i := 0; i < length; i++ {
		ch, err := drawChar(src, charset)
		if err != nil {
			return "", err
		}
		if noRepeat && i > 0 {
			retries := 0
			for ch == prev {
				if retries++; retries > noRepeatRetries {
					return "", ErrGenerationExhausted
				}
				if ch, err = drawChar(src, charset); err != nil {
					return "", err
				}
			}
		}
		sb.WriteByte(ch)
		prev = ch
	}

	return sb.String(), nil
}

func drawChar(src Source, charset string) (byte, error) {
	i, err := src.IntN(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}
