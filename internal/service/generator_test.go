package service

import (
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.Strength != string(password.StrengthVeryStrong) {
		t.Errorf("expected very strong for defaults, got %q", resp.Strength)
	}
}

func TestGenerate_ExplicitFlagsNotOverridden(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Numbers:   boolPtr(true),
		Symbols:   boolPtr(false),
		Lowercase: boolPtr(false),
		Uppercase: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range resp.Password {
		if c < '0' || c > '9' {
			t.Errorf("unexpected character %q in numbers-only password", c)
		}
	}
}

func TestGenerate_AmbiguousExcludedByDefault(t *testing.T) {
	svc := NewGeneratorService()
	for i := 0; i < 20; i++ {
		resp, err := svc.Generate(model.GenerateRequest{Length: 64})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.ContainsAny(resp.Password, password.AmbiguousChars) {
			t.Errorf("password %q contains an ambiguous character", resp.Password)
		}
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if err != password.ErrLengthTooShort {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 300})
	if err != password.ErrLengthTooLong {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerate_EmptyAlphabet(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
		Lowercase: boolPtr(false),
		Uppercase: boolPtr(false),
	})
	if err != password.ErrEmptyAlphabet {
		t.Fatalf("expected ErrEmptyAlphabet, got %v", err)
	}
}

func TestEntropy_NeverFails(t *testing.T) {
	svc := NewGeneratorService()

	// All classes off: zero bits, smallest label, no error path at all.
	resp := svc.Entropy(model.GenerateRequest{
		Length:    16,
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
		Lowercase: boolPtr(false),
		Uppercase: boolPtr(false),
	})
	if resp.EntropyBits != 0 {
		t.Errorf("expected 0 bits for empty alphabet, got %v", resp.EntropyBits)
	}
	if resp.AlphabetSize != 0 {
		t.Errorf("expected alphabet size 0, got %d", resp.AlphabetSize)
	}
	if resp.Strength != string(password.StrengthVeryWeak) {
		t.Errorf("expected very weak, got %q", resp.Strength)
	}
}

func TestEntropy_DigitsOnlyScenario(t *testing.T) {
	svc := NewGeneratorService()

	// Digits without ambiguous characters: alphabet "23456789", log2(8)*8 = 24.
	resp := svc.Entropy(model.GenerateRequest{
		Length:    8,
		Numbers:   boolPtr(true),
		Symbols:   boolPtr(false),
		Lowercase: boolPtr(false),
		Uppercase: boolPtr(false),
	})
	if resp.AlphabetSize != 8 {
		t.Errorf("expected alphabet size 8, got %d", resp.AlphabetSize)
	}
	if resp.EntropyBits != 24.0 {
		t.Errorf("expected 24.0 bits, got %v", resp.EntropyBits)
	}
	if resp.Strength != string(password.StrengthAverage) {
		t.Errorf("expected average, got %q", resp.Strength)
	}
}
