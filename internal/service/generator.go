package service

import (
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
)

// GeneratorService handles password generation and entropy estimation.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password for the given request along with its
// entropy estimate and strength label.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := optionsFromRequest(req)

	pw, err := password.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	bits := password.EntropyBits(opts)
	return model.GenerateResponse{
		Password:    pw,
		Length:      len(pw),
		EntropyBits: bits,
		Strength:    string(password.Classify(bits)),
	}, nil
}

// Entropy estimates the strength of the given options without generating
// anything. It never fails: an empty alphabet yields zero bits.
func (s *GeneratorService) Entropy(req model.GenerateRequest) model.EntropyResponse {
	opts := optionsFromRequest(req)

	bits := password.EntropyBits(opts)
	return model.EntropyResponse{
		EntropyBits:  bits,
		AlphabetSize: len(password.BuildAlphabet(opts)),
		Strength:     string(password.Classify(bits)),
	}
}

// optionsFromRequest maps submitted flags into generation options verbatim.
// Defaults apply only to fields omitted from the request, never overriding
// an explicit value.
func optionsFromRequest(req model.GenerateRequest) password.Options {
	defaults := password.DefaultOptions()

	opts := password.Options{
		Length:         req.Length,
		Numbers:        boolOrDefault(req.Numbers, defaults.Numbers),
		Symbols:        boolOrDefault(req.Symbols, defaults.Symbols),
		Lowercase:      boolOrDefault(req.Lowercase, defaults.Lowercase),
		Uppercase:      boolOrDefault(req.Uppercase, defaults.Uppercase),
		AllowAmbiguous: boolOrDefault(req.AllowAmbiguous, defaults.AllowAmbiguous),
	}
	if opts.Length == 0 {
		opts.Length = defaults.Length
	}

	return opts
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
