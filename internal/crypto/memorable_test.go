package crypto

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

var testWords = []string{"apple", "river", "stone"}

func TestMemorableGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    MemorableOptions
		wantErr error
	}{
		{
			name:    "default options",
			opts:    DefaultMemorableOptions(testWords),
			wantErr: nil,
		},
		{
			name: "no capitalisation, empty separator",
			opts: MemorableOptions{
				WordCount: 3, Capitalize: CapitalizeNone, Words: testWords,
			},
			wantErr: nil,
		},
		{
			name: "random capitalisation with digits",
			opts: MemorableOptions{
				WordCount: 5, Separator: ".", Capitalize: CapitalizeRandom,
				AppendDigits: 3, Words: testWords,
			},
			wantErr: nil,
		},
		{
			name: "single word corpus",
			opts: MemorableOptions{
				WordCount: 2, Separator: "-", Words: []string{"apple"},
			},
			wantErr: nil,
		},
		{
			name:    "zero word count",
			opts:    MemorableOptions{WordCount: 0, Words: testWords},
			wantErr: ErrZeroWordCount,
		},
		{
			name:    "negative digit count",
			opts:    MemorableOptions{WordCount: 2, AppendDigits: -1, Words: testWords},
			wantErr: ErrNegativeDigitCount,
		},
		{
			name:    "empty corpus",
			opts:    MemorableOptions{WordCount: 3},
			wantErr: ErrEmptyCorpus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, err := tt.opts.Generate()

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if secret.Variant != VariantMemorable {
				t.Errorf("Generate() variant = %q, want %q", secret.Variant, VariantMemorable)
			}

			body := secret.Value[:len(secret.Value)-tt.opts.AppendDigits]
			suffix := secret.Value[len(secret.Value)-tt.opts.AppendDigits:]

			var words []string
			if tt.opts.Separator != "" {
				words = strings.Split(body, tt.opts.Separator)
				if len(words) != tt.opts.WordCount {
					t.Errorf("Generate() word count = %d, want %d", len(words), tt.opts.WordCount)
				}
				for _, w := range words {
					if !isCorpusWord(w, tt.opts.Words) {
						t.Errorf("word %q not drawn from corpus %v", w, tt.opts.Words)
					}
				}
			}

			for _, ch := range suffix {
				if ch < '0' || ch > '9' {
					t.Errorf("suffix %q contains non-digit %q", suffix, string(ch))
				}
			}
		})
	}
}

// isCorpusWord reports whether w matches a corpus word modulo first-letter
// capitalisation.
func isCorpusWord(w string, corpus []string) bool {
	for _, c := range corpus {
		if w == c || w == capitalize(c) {
			return true
		}
	}
	return false
}

func TestMemorableGenerateErrorsDistinguishCorpus(t *testing.T) {
	_, err := MemorableOptions{WordCount: 3}.Generate()
	if !errors.Is(err, ErrCorpusUnavailable) {
		t.Fatalf("empty corpus error = %v, want ErrCorpusUnavailable", err)
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Fatal("corpus error must not match ErrInvalidConfig")
	}
}

func TestMemorableGenerateFirstLetterPattern(t *testing.T) {
	opts := MemorableOptions{
		WordCount:    3,
		Separator:    "-",
		Capitalize:   CapitalizeFirst,
		AppendDigits: 2,
		Words:        testWords,
	}

	pattern := regexp.MustCompile(`^[A-Z][a-z]+-[A-Z][a-z]+-[A-Z][a-z]+\d\d$`)

	for i := 0; i < 50; i++ {
		secret, err := opts.Generate()
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if !pattern.MatchString(secret.Value) {
			t.Errorf("secret %q does not match Word-Word-Word\\d\\d", secret.Value)
		}
	}
}

func TestMemorableGenerateCapitalizeNoneKeepsWords(t *testing.T) {
	opts := MemorableOptions{
		WordCount:  4,
		Separator:  "-",
		Capitalize: CapitalizeNone,
		Words:      testWords,
	}

	for i := 0; i < 20; i++ {
		secret, err := opts.Generate()
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		for _, w := range strings.Split(secret.Value, "-") {
			if w != strings.ToLower(w) {
				t.Errorf("word %q was altered despite CapitalizeNone", w)
			}
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "apple", want: "Apple"},
		{in: "Apple", want: "Apple"},
		{in: "a", want: "A"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
