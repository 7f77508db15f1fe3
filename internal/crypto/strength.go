package crypto

import "unicode/utf8"

// Rating is a qualitative strength band.
type Rating string

const (
	RatingWeak       Rating = "Weak"
	RatingMedium     Rating = "Medium"
	RatingStrong     Rating = "Strong"
	RatingVeryStrong Rating = "Very Strong"
)

// Scoring model: length 40%, class diversity 40%, digit+symbol bonus 20%.
// Length credit caps at lengthSufficiency characters; beyond that, length
// no longer limits the score. The bonus is all-or-nothing: it requires a
// digit and a symbol in the same secret.
const (
	lengthSufficiency = 5
	lengthWeight      = 40
	diversityWeight   = 40
	complexityBonus   = 20
)

// Band boundaries over the 0-100 scale. Each band includes its lower bound.
const (
	mediumThreshold     = 40
	strongThreshold     = 60
	veryStrongThreshold = 80
)

// StrengthResult is a score on the 0-100 scale plus its rating band.
type StrengthResult struct {
	Score  int
	Rating Rating
}

// Evaluate scores a secret from its content and length alone. It is pure
// and deterministic; the empty string scores zero and rates Weak.
func Evaluate(secret string) StrengthResult {
	length := utf8.RuneCountInString(secret)
	if length > lengthSufficiency {
		length = lengthSufficiency
	}
	score := length * lengthWeight / lengthSufficiency

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range secret {
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

	classes := 0
	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if present {
			classes++
		}
	}
	score += classes * diversityWeight / 4

	if hasDigit && hasSymbol {
		score += complexityBonus
	}

	return StrengthResult{Score: score, Rating: ratingFor(score)}
}

func ratingFor(score int) Rating {
	switch {
	case score >= veryStrongThreshold:
		return RatingVeryStrong
	case score >= strongThreshold:
		return RatingStrong
	case score >= mediumThreshold:
		return RatingMedium
	default:
		return RatingWeak
	}
}
