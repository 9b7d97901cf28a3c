package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// deckNameRegex matches valid deck names as used for store keys and file
// basenames: letters, digits, dash, underscore and dot, starting with an
// alphanumeric character.
var deckNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateDeckName validates a deck name for safety and correctness.
// Deck names become file basenames and database keys, so the rules are
// intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateDeckName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDeck, "deck name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidDeck, "deck name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDeck, "deck name contains invalid control characters")
		}
	}

	if !deckNameRegex.MatchString(name) {
		return New(ErrCodeInvalidDeck, "invalid deck name: %q", name)
	}

	// Belt and braces: the regex already excludes separators, but ".." is
	// matched by it and must never reach the filesystem.
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidDeck, "deck name cannot contain path traversal sequences (..)")
	}

	return nil
}
