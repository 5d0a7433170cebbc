package dictionary

import "github.com/sagerenn/hyphenation/lang"

// Validate checks that a dictionary found to be for found is the one that
// was asked for.
func Validate(expected, found lang.Language) error {
	if expected != found {
		return &LanguageMismatchError{Expected: expected, Found: found}
	}
	return nil
}
