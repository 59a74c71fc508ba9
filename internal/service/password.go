package service

import "unicode"

// Strength criteria, one point each.
const (
	minSecretLength  = 8
	MaxStrengthScore = 4
	MinStrengthScore = 3 // required to register
)

// StrengthScore rates a secret 0..4: length >= 8, an uppercase letter,
// a digit, a symbol.
func StrengthScore(secret string) int {
	if secret == "" {
		return 0
	}
	score := 0
	if len(secret) >= minSecretLength {
		score++
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range secret {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSymbol = true
		}
	}
	if hasUpper {
		score++
	}
	if hasDigit {
		score++
	}
	if hasSymbol {
		score++
	}
	return score
}
