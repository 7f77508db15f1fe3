package crypto

import "strings"

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// similarChars are visually confusable glyphs stripped from the pool
	// when ExcludeSimilar is set.
	similarChars = "O0Il1|"

	// maxRedrawAttempts bounds the per-position retry loop for
	// NoRepeatAdjacent. With a pool of at least two characters the chance
	// of exhausting it is negligible.
	maxRedrawAttempts = 16
)

// RandomOptions configures the random character generator.
type RandomOptions struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Digits           bool
	Symbols          bool
	ExcludeSimilar   bool
	NoRepeatAdjacent bool
}

// DefaultRandomOptions returns the defaults used when the caller omits
// values: 12 characters, symbols off.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		Length:    12,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
	}
}

// pool unions the enabled character classes and applies the similar-glyph
// exclusion. It does not validate the result; Generate does.
func (o RandomOptions) pool() string {
	var b strings.Builder
	if o.Uppercase {
		b.WriteString(uppercaseChars)
	}
	if o.Lowercase {
		b.WriteString(lowercaseChars)
	}
	if o.Digits {
		b.WriteString(digitChars)
	}
	if o.Symbols {
		b.WriteString(symbolChars)
	}
	pool := b.String()
	if o.ExcludeSimilar {
		pool = excludeSimilar(pool)
	}
	return pool
}

// excludeSimilar removes visually confusable characters from a pool.
// Kept as a pure transform so it composes with any class combination.
func excludeSimilar(pool string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(similarChars, r) {
			return -1
		}
		return r
	}, pool)
}

// Generate draws Length independent uniform characters from the effective
// pool. Each draw is uniform over the whole pool; no character class is
// forced into the result.
func (o RandomOptions) Generate() (Secret, error) {
	if o.Length <= 0 {
		return Secret{}, ErrZeroLength
	}
	if !o.Uppercase && !o.Lowercase && !o.Digits && !o.Symbols {
		return Secret{}, ErrNoCharacterTypes
	}

	pool := o.pool()
	if len(pool) == 0 {
		return Secret{}, ErrEmptyPool
	}
	if o.NoRepeatAdjacent && len(pool) == 1 && o.Length > 1 {
		return Secret{}, ErrRepeatInfeasible
	}

	result := make([]byte, o.Length)
	for i := range result {
		ch, err := randChar(pool)
		if err != nil {
			return Secret{}, err
		}
		if o.NoRepeatAdjacent && i > 0 {
			attempts := 0
			for ch == result[i-1] {
				if attempts++; attempts > maxRedrawAttempts {
					return Secret{}, ErrRepeatInfeasible
				}
				if ch, err = randChar(pool); err != nil {
					return Secret{}, err
				}
			}
		}
		result[i] = ch
	}

	return Secret{Value: string(result), Variant: VariantRandom}, nil
}
