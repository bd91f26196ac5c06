// Package password implements the generation core: alphabet construction
// from character-class flags, uniform random sampling over that alphabet,
// and entropy estimation for the result.
package password

import (
	"crypto/rand"
	"errors"
	"math"
	"math/big"
	"strings"
)

// Character classes, always concatenated in this order when building an alphabet.
const (
	NumberChars    = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// AmbiguousChars are visually confusable characters stripped from the
// alphabet unless Options.AllowAmbiguous is set. Used only as a filter,
// never as a generation source.
const AmbiguousChars = "i1lI0O"

const (
	MinLength = 4
	MaxLength = 256
)

var (
	ErrLengthTooShort = errors.New("password length must be at least 4")
	ErrLengthTooLong  = errors.New("password length must be at most 256")
	ErrEmptyAlphabet  = errors.New("no characters to generate from: enable at least one character class")
)

// Options configures a single generation or estimation call.
type Options struct {
	Length         int
	Numbers        bool
	Symbols        bool
	Lowercase      bool
	Uppercase      bool
	AllowAmbiguous bool
}

// DefaultOptions returns sensible defaults: 16 characters, all classes
// enabled, ambiguous characters excluded.
func DefaultOptions() Options {
	return Options{
		Length:    16,
		Numbers:   true,
		Symbols:   true,
		Lowercase: true,
		Uppercase: true,
	}
}

// BuildAlphabet derives the effective alphabet for the given options: the
// enabled classes concatenated in fixed order (numbers, symbols, lowercase,
// uppercase), then filtered of ambiguous characters unless allowed. The
// filter runs after concatenation so ambiguous characters are removed no
// matter which class contributed them. An empty result is valid and never
// an error here.
func BuildAlphabet(opts Options) string {
	var b strings.Builder
	if opts.Numbers {
		b.WriteString(NumberChars)
	}
	if opts.Symbols {
		b.WriteString(SymbolChars)
	}
	if opts.Lowercase {
		b.WriteString(LowercaseChars)
	}
	if opts.Uppercase {
		b.WriteString(UppercaseChars)
	}

	alphabet := b.String()
	if opts.AllowAmbiguous {
		return alphabet
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(AmbiguousChars, r) {
			return -1
		}
		return r
	}, alphabet)
}

// Generate produces a password of exactly opts.Length characters, each drawn
// independently and uniformly (with replacement) from the alphabet derived
// from opts. Randomness comes from crypto/rand; a failing random source
// propagates as an error.
func Generate(opts Options) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	alphabet := BuildAlphabet(opts)
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}

	result := make([]byte, opts.Length)
	for i := range result {
		ch, err := randChar(alphabet)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	return string(result), nil
}

// EntropyBits estimates the strength of a password generated with opts as
// log2(alphabetSize) * length, the bit count of length independent uniform
// draws. An empty alphabet (or non-positive length) yields 0 rather than an
// error: this value is advisory display math and must never fail.
func EntropyBits(opts Options) float64 {
	alphabet := BuildAlphabet(opts)
	if len(alphabet) == 0 || opts.Length < 1 {
		return 0
	}
	return math.Log2(float64(len(alphabet))) * float64(opts.Length)
}

// randChar picks one character from alphabet uniformly using crypto/rand.
func randChar(alphabet string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, err
	}
	return alphabet[n.Int64()], nil
}
