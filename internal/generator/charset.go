package generator

import "strings"

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// similarChars are visually confusable and removed when ExcludeSimilar
	// is set, regardless of which class contributed them.
	similarChars = "l1IO0"
)

// CharsetOptions selects which character classes form the password alphabet.
type CharsetOptions struct {
	Uppercase      bool
	Lowercase      bool
	Digits         bool
	Symbols        bool
	ExcludeSimilar bool
}

// BuildCharset assembles the deduplicated alphabet for the selected classes.
// It fails when the resulting set would be empty.
func BuildCharset(opts CharsetOptions) (string, error) {
	var pool string
	if opts.Uppercase {
		pool += uppercaseChars
	}
	if opts.Lowercase {
		pool += lowercaseChars
	}
	if opts.Digits {
		pool += digitChars
	}
	if opts.Symbols {
		pool += symbolChars
	}

	if pool == "" {
		return "", ErrNoCharacterClasses
	}

	var sb strings.Builder
	sb.Grow(len(pool))
	seen := make(map[byte]bool, len(pool))
	for i := 0; i < len(pool); i++ {
		ch := pool[i]
		if seen[ch] {
			continue
		}
		if opts.ExcludeSimilar && strings.IndexByte(similarChars, ch) >= 0 {
			continue
		}
		seen[ch] = true
		sb.WriteByte(ch)
	}

	if sb.Len() == 0 {
		return "", ErrNoCharacterClasses
	}
	return sb.String(), nil
}
