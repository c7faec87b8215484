package errors

import (
	"unicode"
)

const (
	// MaxWordLength bounds dictionary entries. No real word-hunt entry comes close.
	MaxWordLength = 64

	// MaxDimension bounds the side length of a grid accepted from user input.
	MaxDimension = 16

	maxPathLength = 4096
)

// ValidateWordText validates a raw dictionary entry before it is encoded.
//
// The validation rules are intentionally conservative:
//   - No empty words
//   - Maximum length of MaxWordLength characters
//   - Only ASCII letters A-Z, in either case
func ValidateWordText(text string) error {
	if text == "" {
		return New(ErrCodeInvalidWord, "word cannot be empty")
	}

	if len(text) > MaxWordLength {
		return New(ErrCodeInvalidWord, "word too long (max %d characters)", MaxWordLength)
	}

	for i, r := range text {
		if !isASCIILetter(r) {
			return New(ErrCodeInvalidWord, "word %q contains %q at position %d", text, r, i)
		}
	}

	return nil
}

// ValidateDimension validates a requested grid side length.
func ValidateDimension(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidGrid, "grid dimension must be positive, got %d", n)
	}
	if n > MaxDimension {
		return New(ErrCodeInvalidGrid, "grid dimension too large (max %d), got %d", MaxDimension, n)
	}
	return nil
}

// ValidatePath validates a local file path supplied on the command line or
// in a config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
