package generator

import (
	"strings"
	"testing"
)

func TestGenerateRandom(t *testing.T) {
	tests := []struct {
		name    string
		opts    RandomOptions
		wantErr error
	}{
		{
			name: "default options",
			opts: DefaultRandomOptions(),
		},
		{
			name: "all classes enabled",
			opts: RandomOptions{Length: 32, Uppercase: true, Lowercase: true, Digits: true, Symbols: true},
		},
		{
			name: "length 1",
			opts: RandomOptions{Length: 1, Lowercase: true},
		},
		{
			name: "maximum length",
			opts: RandomOptions{Length: MaxLength, Uppercase: true, Lowercase: true},
		},
		{
			name:    "length zero",
			opts:    RandomOptions{Length: 0, Lowercase: true},
			wantErr: ErrLengthTooShort,
		},
		{
			name:    "length too long",
			opts:    RandomOptions{Length: MaxLength + 1, Lowercase: true},
			wantErr: ErrLengthTooLong,
		},
		{
			name:    "no character classes",
			opts:    RandomOptions{Length: 16},
			wantErr: ErrNoCharacterClasses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, charsetSize, err := GenerateRandom(CryptoSource, tt.opts)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("GenerateRandom() error = %v, want %v", err, tt.wantErr)
				}
				if password != "" {
					t.Error("GenerateRandom() should return empty string on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("GenerateRandom() unexpected error: %v", err)
			}
			if len(password) != tt.opts.Length {
				t.Errorf("GenerateRandom() length = %d, want %d", len(password), tt.opts.Length)
			}
			if charsetSize < 1 {
				t.Errorf("GenerateRandom() charsetSize = %d, want >= 1", charsetSize)
			}
		})
	}
}

func TestGenerateRandomSingleClassContainsOnlyThatClass(t *testing.T) {
	tests := []struct {
		name    string
		opts    RandomOptions
		charset string
	}{
		{
			name:    "uppercase only",
			opts:    RandomOptions{Length: 64, Uppercase: true},
			charset: uppercaseChars,
		},
		{
			name:    "lowercase only",
			opts:    RandomOptions{Length: 64, Lowercase: true},
			charset: lowercaseChars,
		},
		{
			name:    "digits only",
			opts:    RandomOptions{Length: 64, Digits: true},
			charset: digitChars,
		},
		{
			name:    "symbols only",
			opts:    RandomOptions{Length: 64, Symbols: true},
			charset: symbolChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, _, err := GenerateRandom(CryptoSource, tt.opts)
			if err != nil {
				t.Fatalf("GenerateRandom() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("password contains unexpected character %q", string(ch))
				}
			}
		})
	}
}

func TestGenerateRandomExcludeSimilar(t *testing.T) {
	opts := RandomOptions{Length: 128, Uppercase: true, Lowercase: true, Digits: true, ExcludeSimilar: true}

	for i := 0; i < 20; i++ {
		password, _, err := GenerateRandom(CryptoSource, opts)
		if err != nil {
			t.Fatalf("GenerateRandom() unexpected error: %v", err)
		}
		if strings.ContainsAny(password, similarChars) {
			t.Errorf("password %q contains a confusable character", password)
		}
	}
}

func TestGenerateRandomNoRepeatAdjacency(t *testing.T) {
	// A small charset makes accidental adjacency likely, so a violation
	// would surface quickly.
	opts := RandomOptions{Length: 256, Digits: true, NoRepeat: true}

	for i := 0; i < 20; i++ {
		password, _, err := GenerateRandom(CryptoSource, opts)
		if err != nil {
			t.Fatalf("GenerateRandom() unexpected error: %v", err)
		}
		for j := 1; j < len(password); j++ {
			if password[j] == password[j-1] {
				t.Fatalf("adjacent repeat %q at position %d in %q", string(password[j]), j, password)
			}
		}
	}
}

func TestGenerateFromCharset(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		charset  string
		noRepeat bool
		wantErr  error
	}{
		{
			name:    "draws from explicit charset",
			length:  32,
			charset: "abc",
		},
		{
			name:     "unit charset without no-repeat",
			length:   8,
			charset:  "x",
			noRepeat: false,
		},
		{
			name:     "unit charset with no-repeat",
			length:   8,
			charset:  "x",
			noRepeat: true,
			wantErr:  ErrNoRepeatImpossible,
		},
		{
			name:     "unit charset length one with no-repeat",
			length:   1,
			charset:  "x",
			noRepeat: true,
		},
		{
			name:    "empty charset",
			length:  8,
			charset: "",
			wantErr: ErrNoCharacterClasses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := GenerateFromCharset(CryptoSource, tt.length, tt.charset, tt.noRepeat)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("GenerateFromCharset() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GenerateFromCharset() unexpected error: %v", err)
			}
			if len(password) != tt.length {
				t.Errorf("length = %d, want %d", len(password), tt.length)
			}
			for _, ch := range password {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("password contains character %q outside charset", string(ch))
				}
			}
		})
	}
}

func TestGenerateRandomNoRepeatExhaustsOnConstantSource(t *testing.T) {
	// A source that always yields the same index can never satisfy the
	// adjacency constraint; the bounded redraw loop must give up.
	src := &stubSource{vals: []int{0}}
	opts := RandomOptions{Length: 4, Digits: true, NoRepeat: true}

	_, _, err := GenerateRandom(src, opts)
	if err != ErrGenerationExhausted {
		t.Errorf("GenerateRandom() error = %v, want %v", err, ErrGenerationExhausted)
	}
}

func TestGenerateRandomReportsActualCharsetSize(t *testing.T) {
	_, size, err := GenerateRandom(CryptoSource, RandomOptions{Length: 16, Uppercase: true, Lowercase: true, Digits: true, Symbols: true})
	if err != nil {
		t.Fatalf("GenerateRandom() unexpected error: %v", err)
	}
	if size != 88 {
		t.Errorf("charset size = %d, want 88", size)
	}
}

func TestGenerateRandomProducesUniquePasswords(t *testing.T) {
	opts := DefaultRandomOptions()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, _, err := GenerateRandom(CryptoSource, opts)
		if err != nil {
			t.Fatalf("GenerateRandom() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}
