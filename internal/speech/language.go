package speech

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

var ErrUnsupportedLanguage = errors.New("unsupported recognition language")

// SupportedLanguages lists the recognition languages offered to the user.
// The first entry is the default.
var SupportedLanguages = []language.Tag{
	language.MustParse("en-US"),
	language.MustParse("es-ES"),
	language.MustParse("fr-FR"),
	language.MustParse("de-DE"),
	language.MustParse("it-IT"),
	language.MustParse("pt-BR"),
	language.MustParse("hi-IN"),
	language.MustParse("zh-CN"),
}

var languageMatcher = language.NewMatcher(SupportedLanguages)

// MatchLanguage parses a BCP-47 tag and returns the closest supported
// recognition language.
func MatchLanguage(tag string) (language.Tag, error) {
	requested, err := language.Parse(tag)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrUnsupportedLanguage, tag, err)
	}
	_, idx, confidence := languageMatcher.Match(requested)
	if confidence == language.No {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}
	return SupportedLanguages[idx], nil
}
