package password

import (
	"math"
	"strings"
	"testing"
)

func TestBuildAlphabet(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "no classes selected",
			opts: Options{},
			want: "",
		},
		{
			name: "numbers only with ambiguous",
			opts: Options{Numbers: true, AllowAmbiguous: true},
			want: "0123456789",
		},
		{
			name: "numbers only without ambiguous",
			opts: Options{Numbers: true},
			want: "23456789",
		},
		{
			name: "lowercase only without ambiguous",
			opts: Options{Lowercase: true},
			want: "abcdefghjkmnopqrstuvwxyz",
		},
		{
			name: "uppercase only without ambiguous",
			opts: Options{Uppercase: true},
			want: "ABCDEFGHJKLMNPQRSTUVWXYZ",
		},
		{
			name: "symbols are never ambiguous",
			opts: Options{Symbols: true},
			want: SymbolChars,
		},
		{
			name: "fixed concatenation order numbers symbols lowercase uppercase",
			opts: Options{Numbers: true, Symbols: true, Lowercase: true, Uppercase: true, AllowAmbiguous: true},
			want: NumberChars + SymbolChars + LowercaseChars + UppercaseChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildAlphabet(tt.opts)
			if got != tt.want {
				t.Errorf("BuildAlphabet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildAlphabetDeterministic(t *testing.T) {
	opts := Options{Length: 12, Numbers: true, Lowercase: true, Uppercase: true}
	first := BuildAlphabet(opts)
	for i := 0; i < 10; i++ {
		if got := BuildAlphabet(opts); got != first {
			t.Fatalf("BuildAlphabet() not deterministic: %q vs %q", got, first)
		}
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{
			name:    "default options",
			opts:    DefaultOptions(),
			wantErr: nil,
		},
		{
			name:    "minimum length",
			opts:    Options{Length: MinLength, Lowercase: true},
			wantErr: nil,
		},
		{
			name:    "maximum length",
			opts:    Options{Length: MaxLength, Numbers: true, Uppercase: true},
			wantErr: nil,
		},
		{
			name:    "length too short",
			opts:    Options{Length: 3, Lowercase: true},
			wantErr: ErrLengthTooShort,
		},
		{
			name:    "zero length",
			opts:    Options{Length: 0, Lowercase: true},
			wantErr: ErrLengthTooShort,
		},
		{
			name:    "length too long",
			opts:    Options{Length: 257, Lowercase: true},
			wantErr: ErrLengthTooLong,
		},
		{
			name:    "no classes selected",
			opts:    Options{Length: 16},
			wantErr: ErrEmptyAlphabet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.opts)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.opts.Length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.opts.Length)
			}
		})
	}
}

func TestGenerateCharactersComeFromAlphabet(t *testing.T) {
	optsCombos := []Options{
		{Length: 32, Numbers: true},
		{Length: 32, Symbols: true},
		{Length: 32, Lowercase: true},
		{Length: 32, Uppercase: true},
		{Length: 32, Numbers: true, Symbols: true, Lowercase: true, Uppercase: true},
		{Length: 32, Numbers: true, Uppercase: true, AllowAmbiguous: true},
	}

	for _, opts := range optsCombos {
		alphabet := BuildAlphabet(opts)
		// Repeat to reduce flakiness from randomness.
		for i := 0; i < 20; i++ {
			result, err := Generate(opts)
			if err != nil {
				t.Fatalf("Generate(%+v) unexpected error: %v", opts, err)
			}
			for _, ch := range result {
				if !strings.ContainsRune(alphabet, ch) {
					t.Errorf("Generate(%+v) produced %q, not in alphabet %q", opts, string(ch), alphabet)
				}
			}
		}
	}
}

func TestGenerateExcludesAmbiguousCharacters(t *testing.T) {
	optsCombos := []Options{
		{Length: 64, Numbers: true},
		{Length: 64, Lowercase: true},
		{Length: 64, Uppercase: true},
		{Length: 64, Numbers: true, Symbols: true, Lowercase: true, Uppercase: true},
	}

	for _, opts := range optsCombos {
		for i := 0; i < 20; i++ {
			result, err := Generate(opts)
			if err != nil {
				t.Fatalf("Generate(%+v) unexpected error: %v", opts, err)
			}
			if strings.ContainsAny(result, AmbiguousChars) {
				t.Errorf("Generate(%+v) = %q contains an ambiguous character", opts, result)
			}
		}
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	opts := DefaultOptions()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		result, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[result] {
			t.Errorf("duplicate password generated: %q", result)
		}
		seen[result] = true
	}
}

func TestEntropyBits(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want float64
	}{
		{
			name: "no classes selected",
			opts: Options{Length: 16},
			want: 0,
		},
		{
			name: "zero length",
			opts: Options{Length: 0, Lowercase: true},
			want: 0,
		},
		{
			// Digits without ambiguous leaves "23456789": log2(8) * 8 = 24.
			name: "eight digits without ambiguous",
			opts: Options{Length: 8, Numbers: true},
			want: 24.0,
		},
		{
			// Lowercase without ambiguous drops i and l, leaving 24 characters.
			name: "four lowercase without ambiguous",
			opts: Options{Length: 4, Lowercase: true},
			want: math.Log2(24) * 4,
		},
		{
			name: "ten digits with ambiguous",
			opts: Options{Length: 10, Numbers: true, AllowAmbiguous: true},
			want: math.Log2(10) * 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EntropyBits(tt.opts)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EntropyBits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntropyBitsMonotonicInLength(t *testing.T) {
	opts := Options{Numbers: true, Lowercase: true}
	prev := 0.0
	for length := 1; length <= 64; length++ {
		opts.Length = length
		bits := EntropyBits(opts)
		if bits < prev {
			t.Fatalf("EntropyBits() decreased from %v to %v at length %d", prev, bits, length)
		}
		prev = bits
	}
}

func TestEntropyBitsMonotonicInFlags(t *testing.T) {
	// Enabling classes one at a time only ever grows the alphabet.
	steps := []Options{
		{Length: 16, Numbers: true},
		{Length: 16, Numbers: true, Symbols: true},
		{Length: 16, Numbers: true, Symbols: true, Lowercase: true},
		{Length: 16, Numbers: true, Symbols: true, Lowercase: true, Uppercase: true},
	}

	prev := 0.0
	for _, opts := range steps {
		bits := EntropyBits(opts)
		if bits < prev {
			t.Fatalf("EntropyBits(%+v) = %v, less than previous %v", opts, bits, prev)
		}
		prev = bits
	}
}
