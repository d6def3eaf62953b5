package generator

import (
	"strings"

	"github.com/passgen/passgen-go/internal/wordlist"
)

// CapitalizationMode controls how each sampled word is cased.
type CapitalizationMode string

const (
	CapitalizeNone   CapitalizationMode = "none"
	CapitalizeFirst  CapitalizationMode = "first"
	CapitalizeUpper  CapitalizationMode = "upper"
	CapitalizeRandom CapitalizationMode = "random"
)

// suffixChars is the pool for the optional trailing suffix.
const suffixChars = digitChars + symbolChars

// SuffixPoolSize is the alphabet size of the suffix pool, used by entropy
// accounting for passphrases with a suffix.
const SuffixPoolSize = len(suffixChars)

// MemorableOptions configures the word-based passphrase generator.
type MemorableOptions struct {
	Words          int
	Separator      string
	Capitalization CapitalizationMode
	SuffixLength   int
}

// DefaultMemorableOptions returns the dashboard defaults: four dash-joined
// capitalized words with a two-character suffix.
func DefaultMemorableOptions() MemorableOptions {
	return MemorableOptions{
		Words:          4,
		Separator:      "-",
		Capitalization: CapitalizeFirst,
		SuffixLength:   2,
	}
}

// GenerateMemorable samples opts.Words distinct words from vocab without
// replacement, applies the capitalization mode per word, joins with the
// separator and appends an optional random digit/symbol suffix.
func GenerateMemorable(src Source, vocab *wordlist.Vocabulary, opts MemorableOptions) (string, error) {
	if vocab == nil {
		return "", wordlist.ErrVocabularyUnavailable
	}
	if opts.Words < 1 {
		return "", ErrWordCountTooSmall
	}
	if opts.Words > vocab.Len() {
		return "", ErrWordCountTooLarge
	}
	if opts.SuffixLength < 0 {
		return "", ErrNegativeSuffix
	}
	switch opts.Capitalization {
	case CapitalizeNone, CapitalizeFirst, CapitalizeUpper, CapitalizeRandom, "":
	default:
		return "", ErrUnknownCapitalization
	}

	indices, err := sampleIndices(src, vocab.Len(), opts.Words)
	if err != nil {
		return "", err
	}

	words := make([]string, opts.Words)
	for i, idx := range indices {
		w, err := applyCase(src, vocab.Word(idx), opts.Capitalization)
		if err != nil {
			return "", err
		}
		words[i] = w
	}

	phrase := strings.Join(words, opts.Separator)

	for i := 0; i < opts.SuffixLength; i++ {
		ch, err := drawChar(src, suffixChars)
		if err != nil {
			return "", err
		}
		phrase += string(ch)
	}

	return phrase, nil
}

// sampleIndices picks k distinct indices in [0, n) via a partial
// Fisher-Yates shuffle, so no rejection loop is needed.
func sampleIndices(src Source, n, k int) ([]int, error) {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < k; i++ {
		j, err := src.IntN(n - i)
		if err != nil {
			return nil, err
		}
		indices[i], indices[i+j] = indices[i+j], indices[i]
	}
	return indices[:k], nil
}

func applyCase(src Source, w string, mode CapitalizationMode) (string, error) {
	switch mode {
	case CapitalizeFirst:
		return strings.ToUpper(w[:1]) + w[1:], nil
	case CapitalizeUpper:
		return strings.ToUpper(w), nil
	case CapitalizeRandom:
		coin, err := src.IntN(2)
		if err != nil {
			return "", err
		}
		if coin == 1 {
			return strings.ToUpper(w), nil
		}
		return w, nil
	default:
		return w, nil
	}
}
