package crypto

import (
	"strings"
	"unicode"
)

// CapitalizeMode controls per-word capitalisation in memorable passwords.
type CapitalizeMode string

const (
	// CapitalizeNone leaves words exactly as the corpus supplies them.
	CapitalizeNone CapitalizeMode = "none"
	// CapitalizeFirst uppercases the first letter of every word.
	CapitalizeFirst CapitalizeMode = "first"
	// CapitalizeRandom decides independently per word whether to
	// uppercase its first letter.
	CapitalizeRandom CapitalizeMode = "random"
)

// MemorableOptions configures the word-based generator. Words is the
// injected corpus; the generator never loads or substitutes one itself.
type MemorableOptions struct {
	WordCount    int
	Separator    string
	Capitalize   CapitalizeMode
	AppendDigits int
	Words        []string
}

// DefaultMemorableOptions returns the defaults used when the caller omits
// values: four words, dash-separated, first letters uppercased.
func DefaultMemorableOptions(words []string) MemorableOptions {
	return MemorableOptions{
		WordCount:  4,
		Separator:  "-",
		Capitalize: CapitalizeFirst,
		Words:      words,
	}
}

// Generate picks WordCount words uniformly with replacement, applies the
// capitalisation policy, joins them with Separator, and appends
// AppendDigits random digits.
func (o MemorableOptions) Generate() (Secret, error) {
	if o.WordCount <= 0 {
		return Secret{}, ErrZeroWordCount
	}
	if o.AppendDigits < 0 {
		return Secret{}, ErrNegativeDigitCount
	}
	if len(o.Words) == 0 {
		return Secret{}, ErrEmptyCorpus
	}

	words := make([]string, o.WordCount)
	for i := range words {
		j, err := randInt(len(o.Words))
		if err != nil {
			return Secret{}, err
		}
		w := o.Words[j]
		switch o.Capitalize {
		case CapitalizeFirst:
			w = capitalize(w)
		case CapitalizeRandom:
			coin, err := randInt(2)
			if err != nil {
				return Secret{}, err
			}
			if coin == 1 {
				w = capitalize(w)
			}
		}
		words[i] = w
	}

	var b strings.Builder
	b.WriteString(strings.Join(words, o.Separator))
	for i := 0; i < o.AppendDigits; i++ {
		ch, err := randChar(digitChars)
		if err != nil {
			return Secret{}, err
		}
		b.WriteByte(ch)
	}

	return Secret{Value: b.String(), Variant: VariantMemorable}, nil
}

// capitalize uppercases the first rune of w.
func capitalize(w string) string {
	r := []rune(w)
	if len(r) == 0 {
		return w
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
