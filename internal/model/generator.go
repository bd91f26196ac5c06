package model

// GenerateRequest represents a password generation or entropy estimation request.
// Pointer bools distinguish omitted fields (nil -> default) from explicit false,
// so submitted flags are never overridden.
type GenerateRequest struct {
	Length         int   `json:"length"`
	Numbers        *bool `json:"numbers"`
	Symbols        *bool `json:"symbols"`
	Lowercase      *bool `json:"lowercase"`
	Uppercase      *bool `json:"uppercase"`
	AllowAmbiguous *bool `json:"allow_ambiguous"`
}

// GenerateResponse represents a generated password with its strength estimate.
type GenerateResponse struct {
	Password    string  `json:"password"`
	Length      int     `json:"length"`
	EntropyBits float64 `json:"entropy_bits"`
	Strength    string  `json:"strength"`
}

// EntropyResponse represents a strength estimate for a set of options,
// without generating anything.
type EntropyResponse struct {
	EntropyBits  float64 `json:"entropy_bits"`
	AlphabetSize int     `json:"alphabet_size"`
	Strength     string  `json:"strength"`
}
