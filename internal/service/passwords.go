package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/passgen/passgen-go/internal/generator"
	"github.com/passgen/passgen-go/internal/history"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/strength"
	"github.com/passgen/passgen-go/internal/wordlist"
)

var (
	ErrUnknownType     = errors.New("unknown generator type")
	ErrEntryNotFound   = errors.New("history entry not found")
	ErrPasswordMissing = errors.New("password is required")
)

// PasswordService dispatches generation requests over the variant set,
// attaches strength metadata and records results in the session history.
type PasswordService struct {
	src     generator.Source
	vocab   *wordlist.Vocabulary
	history *history.Ring
}

// NewPasswordService creates a PasswordService. vocab may be nil, in which
// case only the memorable variant is unavailable.
func NewPasswordService(src generator.Source, vocab *wordlist.Vocabulary, hist *history.Ring) *PasswordService {
	if src == nil {
		src = generator.CryptoSource
	}
	if hist == nil {
		hist = history.NewRing(history.DefaultCap)
	}
	return &PasswordService{src: src, vocab: vocab, history: hist}
}

// Generate produces a password for the requested variant and appends the
// result to the session history.
func (s *PasswordService) Generate(req model.GenerateRequest) (model.GeneratedPassword, error) {
	var (
		result model.GeneratedPassword
		err    error
	)

	switch req.Type {
	case model.TypeRandom, "":
		result, err = s.generateRandom(req.Random)
	case model.TypeMemorable:
		result, err = s.generateMemorable(req.Memorable)
	case model.TypePin:
		result, err = s.generatePin(req.Pin)
	default:
		return model.GeneratedPassword{}, ErrUnknownType
	}
	if err != nil {
		return model.GeneratedPassword{}, err
	}

	result.ID = uuid.NewString()
	result.GeneratedAt = time.Now().UTC()
	s.history.Add(result)

	return result, nil
}

func (s *PasswordService) generateRandom(cfg *model.RandomConfig) (model.GeneratedPassword, error) {
	opts := generator.DefaultRandomOptions()
	if cfg != nil {
		if cfg.Length != 0 {
			opts.Length = cfg.Length
		}
		opts.Uppercase = boolOrDefault(cfg.Uppercase, opts.Uppercase)
		opts.Lowercase = boolOrDefault(cfg.Lowercase, opts.Lowercase)
		opts.Digits = boolOrDefault(cfg.Digits, opts.Digits)
		opts.Symbols = boolOrDefault(cfg.Symbols, opts.Symbols)
		opts.ExcludeSimilar = cfg.ExcludeSimilar
		opts.NoRepeat = cfg.NoRepeat
	}

	password, charsetSize, err := generator.GenerateRandom(s.src, opts)
	if err != nil {
		return model.GeneratedPassword{}, err
	}

	return model.GeneratedPassword{
		Password: password,
		Type:     model.TypeRandom,
		Config:   opts,
		Strength: strength.Evaluate(password, charsetSize),
	}, nil
}

func (s *PasswordService) generateMemorable(cfg *model.MemorableConfig) (model.GeneratedPassword, error) {
	opts := generator.DefaultMemorableOptions()
	if cfg != nil {
		if cfg.Words != 0 {
			opts.Words = cfg.Words
		}
		if cfg.Separator != "" {
			opts.Separator = cfg.Separator
		}
		if cfg.Capitalization != "" {
			opts.Capitalization = generator.CapitalizationMode(cfg.Capitalization)
		}
		if cfg.SuffixLength != nil {
			opts.SuffixLength = *cfg.SuffixLength
		}
	}

	password, err := generator.GenerateMemorable(s.src, s.vocab, opts)
	if err != nil {
		return model.GeneratedPassword{}, err
	}

	return model.GeneratedPassword{
		Password: password,
		Type:     model.TypeMemorable,
		Config:   opts,
		Strength: strength.EvaluatePassphrase(password, opts.Words, s.vocab.Len(), opts.SuffixLength, generator.SuffixPoolSize),
	}, nil
}

func (s *PasswordService) generatePin(cfg *model.PinConfig) (model.GeneratedPassword, error) {
	opts := generator.DefaultPinOptions()
	if cfg != nil {
		if cfg.Length != 0 {
			opts.Length = cfg.Length
		}
		opts.AvoidSequential = cfg.AvoidSequential
	}

	pin, err := generator.GeneratePin(s.src, opts)
	if err != nil {
		return model.GeneratedPassword{}, err
	}

	return model.GeneratedPassword{
		Password: pin,
		Type:     model.TypePin,
		Config:   opts,
		Strength: strength.Evaluate(pin, 10),
	}, nil
}

// Evaluate scores an arbitrary password. A zero charset size falls back to a
// class-based estimate of the alphabet.
func (s *PasswordService) Evaluate(req model.EvaluateRequest) (strength.Result, error) {
	if req.Password == "" {
		return strength.Result{}, ErrPasswordMissing
	}
	size := req.CharsetSize
	if size <= 0 {
		size = strength.EstimateCharsetSize(req.Password)
	}
	return strength.Evaluate(req.Password, size), nil
}

// History returns the session history, newest first.
func (s *PasswordService) History() []model.GeneratedPassword {
	return s.history.List()
}

// ClearHistory removes all session history entries.
func (s *PasswordService) ClearHistory() {
	s.history.Clear()
}

// Export builds the JSON export payload for a history entry.
func (s *PasswordService) Export(entryID string) (model.ExportPayload, error) {
	entry, ok := s.history.Get(entryID)
	if !ok {
		return model.ExportPayload{}, ErrEntryNotFound
	}

	return model.ExportPayload{
		Password:       entry.Password,
		GeneratorType:  entry.Type,
		Config:         entry.Config,
		Score:          entry.Strength.Score,
		Label:          entry.Strength.Label,
		EntropyBits:    entry.Strength.EntropyBits,
		CharsetSize:    entry.Strength.CharsetSize,
		CrackTimeLabel: entry.Strength.CrackTime,
		GeneratedAt:    entry.GeneratedAt,
	}, nil
}

// ExportText returns the bare password for a history entry.
func (s *PasswordService) ExportText(entryID string) (string, error) {
	entry, ok := s.history.Get(entryID)
	if !ok {
		return "", ErrEntryNotFound
	}
	return entry.Password, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
