package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey is returned when a key has no alphabet characters left
	// after normalization.
	ErrEmptyKey = errors.New("key cannot be empty")

	// ErrInvalidCharacter is returned when a character is not part of the
	// alphabet.
	ErrInvalidCharacter = errors.New("invalid character")
)

// InvalidCharacterError reports the offending character.
type InvalidCharacterError struct {
	Char rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character: %q", e.Char)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
