package password

// Strength is a qualitative label for an entropy estimate.
type Strength string

const (
	StrengthVeryWeak   Strength = "very weak"
	StrengthWeak       Strength = "weak"
	StrengthAverage    Strength = "average"
	StrengthStrong     Strength = "strong"
	StrengthVeryStrong Strength = "very strong"
)

// Classify buckets an entropy-bit count into a strength label. The mapping
// lives here so every caller renders the same labels for the same math.
func Classify(bits float64) Strength {
	switch {
	case bits < 8:
		return StrengthVeryWeak
	case bits < 16:
		return StrengthWeak
	case bits < 32:
		return StrengthAverage
	case bits < 64:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}
