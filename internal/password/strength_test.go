package password

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		bits float64
		want Strength
	}{
		{0, StrengthVeryWeak},
		{7.9, StrengthVeryWeak},
		{8, StrengthWeak},
		{15.9, StrengthWeak},
		{16, StrengthAverage},
		{24, StrengthAverage},
		{32, StrengthStrong},
		{63.9, StrengthStrong},
		{64, StrengthVeryStrong},
		{512, StrengthVeryStrong},
	}

	for _, tt := range tests {
		if got := Classify(tt.bits); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.bits, got, tt.want)
		}
	}
}
