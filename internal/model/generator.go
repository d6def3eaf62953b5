package model

import (
	"time"

	"github.com/passgen/passgen-go/internal/strength"
)

// Generator type tags for GenerateRequest.Type.
const (
	TypeRandom    = "random"
	TypeMemorable = "memorable"
	TypePin       = "pin"
)

// RandomConfig configures a random password request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type RandomConfig struct {
	Length         int   `json:"length"`
	Uppercase      *bool `json:"uppercase"`
	Lowercase      *bool `json:"lowercase"`
	Digits         *bool `json:"digits"`
	Symbols        *bool `json:"symbols"`
	ExcludeSimilar bool  `json:"exclude_similar"`
	NoRepeat       bool  `json:"no_repeat"`
}

// MemorableConfig configures a passphrase request.
type MemorableConfig struct {
	Words          int    `json:"words"`
	Separator      string `json:"separator"`
	Capitalization string `json:"capitalization"`
	SuffixLength   *int   `json:"suffix_length"`
}

// PinConfig configures a PIN request.
type PinConfig struct {
	Length          int  `json:"length"`
	AvoidSequential bool `json:"avoid_sequential"`
}

// GenerateRequest is a tagged union over the three generator variants. Only
// the config block matching Type is consulted; a missing block means all
// defaults.
type GenerateRequest struct {
	Type      string           `json:"type"`
	Random    *RandomConfig    `json:"random,omitempty"`
	Memorable *MemorableConfig `json:"memorable,omitempty"`
	Pin       *PinConfig       `json:"pin,omitempty"`
}

// GeneratedPassword is a generated string together with its strength
// metadata. Immutable once created; owned by the caller's history.
type GeneratedPassword struct {
	ID          string          `json:"id"`
	Password    string          `json:"password"`
	Type        string          `json:"generator_type"`
	Config      any             `json:"config"`
	Strength    strength.Result `json:"strength"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// EvaluateRequest asks for strength metadata on an arbitrary password.
// CharsetSize is the alphabet size the password was drawn from; when zero,
// a conservative estimate is derived from the classes actually present.
type EvaluateRequest struct {
	Password    string `json:"password"`
	CharsetSize int    `json:"charset_size"`
}

// ExportPayload is the JSON download schema. TXT export is the bare password.
type ExportPayload struct {
	Password       string    `json:"password"`
	GeneratorType  string    `json:"generator_type"`
	Config         any       `json:"config"`
	Score          int       `json:"score"`
	Label          string    `json:"label"`
	EntropyBits    float64   `json:"entropy_bits"`
	CharsetSize    int       `json:"charset_size"`
	CrackTimeLabel string    `json:"crack_time_label"`
	GeneratedAt    time.Time `json:"generated_at"`
}
