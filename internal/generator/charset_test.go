package generator

import (
	"strings"
	"testing"
)

func TestBuildCharset(t *testing.T) {
	tests := []struct {
		name    string
		opts    CharsetOptions
		want    int
		wantErr error
	}{
		{
			name: "all classes",
			opts: CharsetOptions{Uppercase: true, Lowercase: true, Digits: true, Symbols: true},
			want: 88,
		},
		{
			name: "uppercase only",
			opts: CharsetOptions{Uppercase: true},
			want: 26,
		},
		{
			name: "lowercase only",
			opts: CharsetOptions{Lowercase: true},
			want: 26,
		},
		{
			name: "digits only",
			opts: CharsetOptions{Digits: true},
			want: 10,
		},
		{
			name: "symbols only",
			opts: CharsetOptions{Symbols: true},
			want: 26,
		},
		{
			name: "all classes exclude similar",
			opts: CharsetOptions{Uppercase: true, Lowercase: true, Digits: true, Symbols: true, ExcludeSimilar: true},
			want: 83,
		},
		{
			name:    "no classes",
			opts:    CharsetOptions{},
			wantErr: ErrNoCharacterClasses,
		},
		{
			name:    "exclude similar with no classes",
			opts:    CharsetOptions{ExcludeSimilar: true},
			wantErr: ErrNoCharacterClasses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			charset, err := BuildCharset(tt.opts)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("BuildCharset() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildCharset() unexpected error: %v", err)
			}
			if len(charset) != tt.want {
				t.Errorf("BuildCharset() size = %d, want %d", len(charset), tt.want)
			}
		})
	}
}

func TestBuildCharsetDeduplicates(t *testing.T) {
	charset, err := BuildCharset(CharsetOptions{Uppercase: true, Lowercase: true, Digits: true, Symbols: true})
	if err != nil {
		t.Fatalf("BuildCharset() unexpected error: %v", err)
	}

	seen := make(map[byte]bool)
	for i := 0; i < len(charset); i++ {
		if seen[charset[i]] {
			t.Errorf("duplicate character %q in charset", string(charset[i]))
		}
		seen[charset[i]] = true
	}
}

func TestBuildCharsetExcludesSimilar(t *testing.T) {
	charset, err := BuildCharset(CharsetOptions{Uppercase: true, Lowercase: true, Digits: true, Symbols: true, ExcludeSimilar: true})
	if err != nil {
		t.Fatalf("BuildCharset() unexpected error: %v", err)
	}

	for _, ch := range "l1IO0" {
		if strings.ContainsRune(charset, ch) {
			t.Errorf("charset contains confusable character %q", string(ch))
		}
	}
}
