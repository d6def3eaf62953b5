// Package strength scores passwords on a 0-100 heuristic scale and derives
// entropy and crack-time estimates from the generating alphabet size.
package strength

import (
	"math"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// Strength labels and their score boundaries (half-open on the right).
const (
	LabelWeak       = "Weak"
	LabelMedium     = "Medium"
	LabelStrong     = "Strong"
	LabelVeryStrong = "Very Strong"

	mediumThreshold     = 40
	strongThreshold     = 60
	veryStrongThreshold = 80
)

// Crack-time bit boundaries, assuming an offline attack against the full
// search space. Kept in one table so the labels and limits stay in sync.
var crackTimeTable = []struct {
	maxBits float64
	label   string
}{
	{40, "instantly"},
	{60, "hours to days"},
	{80, "years"},
	{100, "centuries"},
}

const crackTimeBeyond = "effectively unbreakable"

// weakPatternThreshold is the zxcvbn score (0-4) below which a password is
// flagged as pattern-weak even when the heuristic score is high.
const weakPatternThreshold = 3

// Result holds the strength metadata for a single password.
type Result struct {
	Score        int     `json:"score"`
	Label        string  `json:"label"`
	EntropyBits  float64 `json:"entropy_bits"`
	CharsetSize  int     `json:"charset_size"`
	CrackTime    string  `json:"crack_time_label"`
	PatternScore int     `json:"pattern_score"`
	WeakPattern  bool    `json:"weak_pattern"`
}

// Evaluate scores a character-wise password. charsetSize must be the actual
// alphabet size used during generation, not re-derived from the string, so
// entropy is not undercounted when a selected class happens to be unused.
func Evaluate(password string, charsetSize int) Result {
	bits := entropyBits(len(password), charsetSize)
	return build(password, bits, charsetSize)
}

// EvaluatePassphrase scores a word-wise passphrase. Entropy counts each word
// as one draw from the vocabulary plus each suffix character as one draw
// from the suffix pool, since per-character accounting would overstate it.
func EvaluatePassphrase(password string, wordCount, vocabSize, suffixLen, suffixPoolSize int) Result {
	bits := entropyBits(wordCount, vocabSize) + entropyBits(suffixLen, suffixPoolSize)
	return build(password, bits, vocabSize)
}

func build(password string, bits float64, charsetSize int) Result {
	score := heuristicScore(password)

	pattern := 0
	if password != "" {
		pattern = zxcvbn.PasswordStrength(password, nil).Score
	}

	return Result{
		Score:        score,
		Label:        LabelFor(score),
		EntropyBits:  bits,
		CharsetSize:  charsetSize,
		CrackTime:    crackTimeFor(bits),
		PatternScore: pattern,
		WeakPattern:  pattern < weakPatternThreshold,
	}
}

// heuristicScore combines a length score (up to 40), a character-class
// diversity score (up to 40) and a digit/symbol bonus (up to 20).
func heuristicScore(password string) int {
	if password == "" {
		return 0
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	lengthScore := float64(len(password)-4) / 24 * 40
	lengthScore = math.Min(math.Max(lengthScore, 0), 40)

	classes := 0
	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if present {
			classes++
		}
	}
	diversityScore := float64(classes) / 4 * 40

	var bonus float64
	switch {
	case hasDigit && hasSymbol:
		bonus = 20
	case hasDigit || hasSymbol:
		bonus = 10
	}

	score := int(math.Round(lengthScore + diversityScore + bonus))
	return min(max(score, 0), 100)
}

// LabelFor maps a 0-100 score to its qualitative label.
func LabelFor(score int) string {
	switch {
	case score < mediumThreshold:
		return LabelWeak
	case score < strongThreshold:
		return LabelMedium
	case score < veryStrongThreshold:
		return LabelStrong
	default:
		return LabelVeryStrong
	}
}

// EstimateCharsetSize infers an alphabet size from the character classes
// present in password. Used only when the caller cannot supply the real
// generation alphabet, e.g. for externally supplied passwords.
func EstimateCharsetSize(password string) int {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	size := 0
	if hasUpper {
		size += 26
	}
	if hasLower {
		size += 26
	}
	if hasDigit {
		size += 10
	}
	if hasSymbol {
		size += 32
	}
	if size == 0 {
		size = 10
	}
	return size
}

// entropyBits approximates Shannon entropy as draws × log2(pool size).
func entropyBits(draws, poolSize int) float64 {
	if draws <= 0 || poolSize < 2 {
		return 0
	}
	return float64(draws) * math.Log2(float64(poolSize))
}

func crackTimeFor(bits float64) string {
	for _, row := range crackTimeTable {
		if bits < row.maxBits {
			return row.label
		}
	}
	if bits <= 100 {
		// 100 bits exactly still falls in the centuries band.
		return crackTimeTable[len(crackTimeTable)-1].label
	}
	return crackTimeBeyond
}
