// Package wordlist provides the vocabulary backing memorable passphrases.
// A Vocabulary is loaded once and never mutated afterwards, so it is safe to
// share across concurrent generation calls.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// Words shorter or longer than this range are dropped on load: very short
// words add little entropy and very long ones defeat memorability.
const (
	minWordLen = 4
	maxWordLen = 8
)

// ErrVocabularyUnavailable indicates the word corpus could not be loaded.
// Only the memorable generator depends on it; other variants stay usable.
var ErrVocabularyUnavailable = errors.New("word vocabulary unavailable")

// Vocabulary is an immutable set of distinct lowercase words.
type Vocabulary struct {
	words []string
}

// Default returns the built-in vocabulary, the 2048-word BIP39 English list.
func Default() *Vocabulary {
	return &Vocabulary{words: bip39.GetWordList()}
}

// LoadFile reads a vocabulary from a file with one word per line, keeping
// only lowercase alphabetic words of suitable length and dropping duplicates.
func LoadFile(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVocabularyUnavailable, err)
	}
	defer f.Close()

	var words []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if !usable(w) || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVocabularyUnavailable, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no usable words in %s", ErrVocabularyUnavailable, path)
	}

	return &Vocabulary{words: words}, nil
}

// New builds a vocabulary from an explicit word slice, applying the same
// filtering as LoadFile. Intended for tests and embedding callers.
func New(words []string) (*Vocabulary, error) {
	var kept []string
	seen := make(map[string]bool)
	for _, w := range words {
		if !usable(w) || seen[w] {
			continue
		}
		seen[w] = true
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: no usable words given", ErrVocabularyUnavailable)
	}
	return &Vocabulary{words: kept}, nil
}

// Len returns the number of words in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Word returns the word at index i.
func (v *Vocabulary) Word(i int) string {
	return v.words[i]
}

func usable(w string) bool {
	if len(w) < minWordLen || len(w) > maxWordLen {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
