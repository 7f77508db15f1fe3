package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Variant identifies which generator produced a secret.
type Variant string

const (
	VariantRandom    Variant = "random"
	VariantMemorable Variant = "memorable"
	VariantPIN       Variant = "pin"
)

// Secret is a generated secret plus the variant that produced it.
// It is a plain value: never stored, never logged by this package.
type Secret struct {
	Value   string
	Variant Variant
}

// ErrInvalidConfig is the root of all configuration errors. Every error
// caused by a caller-supplied configuration wraps it, so callers can match
// the whole family with errors.Is(err, ErrInvalidConfig).
var ErrInvalidConfig = errors.New("invalid generator configuration")

// ErrCorpusUnavailable signals that the word corpus cannot supply words.
// Distinct from ErrInvalidConfig: the configuration may be fine, the
// external word source is not.
var ErrCorpusUnavailable = errors.New("word corpus unavailable")

var (
	ErrZeroLength         = fmt.Errorf("%w: length must be positive", ErrInvalidConfig)
	ErrNoCharacterTypes   = fmt.Errorf("%w: at least one character class must be enabled", ErrInvalidConfig)
	ErrEmptyPool          = fmt.Errorf("%w: character pool is empty after exclusions", ErrInvalidConfig)
	ErrRepeatInfeasible   = fmt.Errorf("%w: pool too small to avoid adjacent repeats", ErrInvalidConfig)
	ErrZeroWordCount      = fmt.Errorf("%w: word count must be positive", ErrInvalidConfig)
	ErrNegativeDigitCount = fmt.Errorf("%w: digit suffix count must not be negative", ErrInvalidConfig)
	ErrEmptyCorpus        = fmt.Errorf("%w: corpus has no words", ErrCorpusUnavailable)
)

// Generator produces a secret string from its configuration. Implementations
// are stateless: every call draws fresh entropy and is safe for concurrent use.
type Generator interface {
	Generate() (Secret, error)
}

// randInt returns a uniformly distributed integer in [0, n) using crypto/rand.
// An entropy source failure propagates as-is; it is never degraded to a
// weaker source.
func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("entropy source: %w", err)
	}
	return int(v.Int64()), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	i, err := randInt(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}
