// Package crypto contains Vigenère Encryption and Decryption
package crypto

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	encryptDirection = 1
	decryptDirection = -1
)

// Vigenere is a classical Vigenère cipher over the Latin alphabet.
//
// Text is normalized before it is transformed: it is uppercased and every
// character outside the alphabet (spaces, digits, punctuation) is dropped.
// Decrypt(Encrypt(t, k), k) therefore returns Normalize(t), not t.
//
// A Vigenere holds no mutable state and is safe for concurrent use.
type Vigenere struct {
	alphabet       *Alphabet
	foldDiacritics bool
}

// Option configures a Vigenere.
type Option func(*Vigenere)

// WithDiacriticFolding strips accents before filtering, so "É" becomes "E"
// and "Ñ" becomes "N" instead of being dropped.
func WithDiacriticFolding(enabled bool) Option {
	return func(v *Vigenere) {
		v.foldDiacritics = enabled
	}
}

func NewVigenere(opts ...Option) *Vigenere {
	v := &Vigenere{alphabet: Latin}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultCipher = NewVigenere()

// Encrypt encrypts text with key using the default cipher.
func Encrypt(text, key string) (string, error) {
	return defaultCipher.Encrypt(text, key)
}

// Decrypt decrypts text with key using the default cipher.
func Decrypt(text, key string) (string, error) {
	return defaultCipher.Decrypt(text, key)
}

// Alphabet returns the alphabet the cipher operates on.
func (v *Vigenere) Alphabet() *Alphabet {
	return v.alphabet
}

func (v *Vigenere) Encrypt(plaintext, key string) (string, error) {
	return v.transform(plaintext, key, encryptDirection)
}

func (v *Vigenere) Decrypt(ciphertext, key string) (string, error) {
	return v.transform(ciphertext, key, decryptDirection)
}

// Normalize uppercases text and removes every character that is not part of
// the alphabet.
func (v *Vigenere) Normalize(text string) string {
	normalized, _ := v.normalize(text)
	return normalized
}

// Discarded counts the characters of text that Normalize removes. A
// character that uppercases to several letters, such as "ß", counts as kept.
func (v *Vigenere) Discarded(text string) int {
	_, discarded := v.normalize(text)
	return discarded
}

// normalize works one input rune at a time so that runes expanding under
// uppercasing are told apart from runes that are dropped.
func (v *Vigenere) normalize(text string) (string, int) {
	// Casers and transformers keep internal state, so they are built per call.
	upper := cases.Upper(language.Und)
	var fold transform.Transformer
	if v.foldDiacritics {
		fold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	}

	var b strings.Builder
	b.Grow(len(text))
	discarded := 0
	for _, r := range text {
		if v.alphabet.Contains(r) {
			b.WriteRune(r)
			continue
		}

		s := string(r)
		if fold != nil {
			// The norm forms and runes.Remove never return an error.
			s, _, _ = transform.String(fold, s)
		}

		kept := false
		for _, u := range upper.String(s) {
			if v.alphabet.Contains(u) {
				b.WriteRune(u)
				kept = true
			}
		}
		if !kept {
			discarded++
		}
	}
	return b.String(), discarded
}

// KeyStream repeats the normalized key until it covers exactly length
// characters.
func (v *Vigenere) KeyStream(key string, length int) (string, error) {
	normalized := []rune(v.Normalize(key))
	if len(normalized) == 0 {
		return "", ErrEmptyKey
	}
	if length <= 0 {
		return "", nil
	}

	repetitions := length/len(normalized) + 1
	stream := []rune(strings.Repeat(string(normalized), repetitions))
	return string(stream[:length]), nil
}

func (v *Vigenere) transform(text, key string, direction int) (string, error) {
	normalized := []rune(v.Normalize(text))

	stream, err := v.KeyStream(key, len(normalized))
	if err != nil {
		return "", err
	}
	keyRunes := []rune(stream)

	out := make([]rune, len(normalized))
	for i, r := range normalized {
		t, err := v.alphabet.CharToIndex(r)
		if err != nil {
			return "", err
		}
		k, err := v.alphabet.CharToIndex(keyRunes[i])
		if err != nil {
			return "", err
		}
		out[i] = v.alphabet.IndexToChar(t + direction*k)
	}

	return string(out), nil
}
