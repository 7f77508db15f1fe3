package service

import (
	"fmt"
	"unicode/utf8"

	"github.com/Baset98/password-generator/internal/crypto"
	"github.com/Baset98/password-generator/internal/model"
)

// ErrUnknownType is returned when a request names a variant that does not
// exist. It is a configuration error like any other.
var ErrUnknownType = fmt.Errorf("%w: unknown generator type", crypto.ErrInvalidConfig)

// GeneratorService handles password generation and strength evaluation.
// The word corpus is injected once at construction and read-only after.
type GeneratorService struct {
	words []string
}

// NewGeneratorService creates a GeneratorService backed by the given corpus.
func NewGeneratorService(words []string) *GeneratorService {
	return &GeneratorService{words: words}
}

// Generate builds the variant named by the request, fills omitted fields
// with defaults, and returns the secret together with its strength.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	gen, err := s.generatorFor(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	secret, err := gen.Generate()
	if err != nil {
		return model.GenerateResponse{}, err
	}

	strength := crypto.Evaluate(secret.Value)
	return model.GenerateResponse{
		Password: secret.Value,
		Type:     string(secret.Variant),
		Length:   utf8.RuneCountInString(secret.Value),
		Strength: model.StrengthResponse{
			Score:  strength.Score,
			Rating: string(strength.Rating),
		},
	}, nil
}

// Evaluate scores an existing secret without generating anything.
func (s *GeneratorService) Evaluate(req model.StrengthRequest) model.StrengthResponse {
	strength := crypto.Evaluate(req.Password)
	return model.StrengthResponse{
		Score:  strength.Score,
		Rating: string(strength.Rating),
	}
}

func (s *GeneratorService) generatorFor(req model.GenerateRequest) (crypto.Generator, error) {
	switch crypto.Variant(req.Type) {
	case crypto.VariantRandom, "":
		opts := crypto.DefaultRandomOptions()
		if req.Length != 0 {
			opts.Length = req.Length
		}
		opts.Uppercase = boolOrDefault(req.Uppercase, opts.Uppercase)
		opts.Lowercase = boolOrDefault(req.Lowercase, opts.Lowercase)
		opts.Digits = boolOrDefault(req.Digits, opts.Digits)
		opts.Symbols = boolOrDefault(req.Symbols, opts.Symbols)
		opts.ExcludeSimilar = req.ExcludeSimilar
		opts.NoRepeatAdjacent = req.NoRepeatAdjacent
		return opts, nil

	case crypto.VariantMemorable:
		opts := crypto.DefaultMemorableOptions(s.words)
		if req.WordCount != 0 {
			opts.WordCount = req.WordCount
		}
		if req.Separator != nil {
			opts.Separator = *req.Separator
		}
		if req.Capitalize != "" {
			mode, err := capitalizeMode(req.Capitalize)
			if err != nil {
				return nil, err
			}
			opts.Capitalize = mode
		}
		opts.AppendDigits = req.AppendDigits
		return opts, nil

	case crypto.VariantPIN:
		opts := crypto.DefaultPINOptions()
		if req.Length != 0 {
			opts.Length = req.Length
		}
		return opts, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}
}

func capitalizeMode(s string) (crypto.CapitalizeMode, error) {
	switch mode := crypto.CapitalizeMode(s); mode {
	case crypto.CapitalizeNone, crypto.CapitalizeFirst, crypto.CapitalizeRandom:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: unknown capitalize mode %q", crypto.ErrInvalidConfig, s)
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
