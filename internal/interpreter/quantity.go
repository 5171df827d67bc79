package interpreter

import (
	"regexp"
	"strconv"
	"strings"
)

const defaultQuantity = 1

var (
	digitQuantityRegex = regexp.MustCompile(`(\d+)\s+[a-zA-Z]+`)
	numberWordRegex    = regexp.MustCompile(`(?i)\b(one|two|three|four|five|six)\b`)
	leadingDigitsRegex = regexp.MustCompile(`^\d+\s+`)
)

var numberWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
}

// ExtractQuantity reads a quantity from an utterance fragment: a number
// followed by a word ("3 bananas"), else the first number word one..six,
// else 1. Zero and values too large for int also yield 1.
func ExtractQuantity(fragment string) int {
	if m := digitQuantityRegex.FindStringSubmatch(fragment); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return defaultQuantity
		}
		return n
	}
	if m := numberWordRegex.FindStringSubmatch(fragment); m != nil {
		return numberWords[strings.ToLower(m[1])]
	}
	return defaultQuantity
}

// stripQuantity removes a leading digit token and every number word.
func stripQuantity(fragment string) string {
	s := leadingDigitsRegex.ReplaceAllString(fragment, "")
	s = numberWordRegex.ReplaceAllString(s, "")
	return collapseSpaces(s)
}
