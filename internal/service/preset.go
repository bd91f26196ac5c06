package service

import (
	"context"
	"errors"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
	"github.com/passforge/passforge-go/internal/repository"
)

var (
	ErrPresetNameRequired = errors.New("preset name is required")
	ErrPresetNameTooLong  = errors.New("preset name must be at most 64 characters")
	ErrPresetNotFound     = errors.New("preset not found")
	ErrPresetNameTaken    = errors.New("preset name already exists")
)

// PresetService handles stored generation preset business logic. A preset is
// a named bundle of option flags applied atomically; no generated password is
// ever stored.
type PresetService struct {
	repo *repository.PresetRepository
}

// NewPresetService creates a new PresetService.
func NewPresetService(repo *repository.PresetRepository) *PresetService {
	return &PresetService{repo: repo}
}

// Create stores a new preset for a user. The option bundle is validated the
// same way generation would validate it, so stored presets are always usable.
func (s *PresetService) Create(ctx context.Context, userID int64, req model.PresetRequest) (model.PresetResponse, error) {
	if err := validatePresetName(req.Name); err != nil {
		return model.PresetResponse{}, err
	}

	opts := optionsFromPresetRequest(req)
	if err := validateOptions(opts); err != nil {
		return model.PresetResponse{}, err
	}

	preset := presetFromOptions(userID, req.Name, opts)
	if err := s.repo.Create(ctx, &preset); err != nil {
		if errors.Is(err, repository.ErrDuplicatePreset) {
			return model.PresetResponse{}, ErrPresetNameTaken
		}
		return model.PresetResponse{}, err
	}

	return presetToResponse(preset), nil
}

// Update replaces the option bundle of an existing preset.
func (s *PresetService) Update(ctx context.Context, userID int64, name string, req model.PresetRequest) (model.PresetResponse, error) {
	opts := optionsFromPresetRequest(req)
	if err := validateOptions(opts); err != nil {
		return model.PresetResponse{}, err
	}

	preset := presetFromOptions(userID, name, opts)
	if err := s.repo.Update(ctx, &preset); err != nil {
		if errors.Is(err, repository.ErrPresetNotFound) {
			return model.PresetResponse{}, ErrPresetNotFound
		}
		return model.PresetResponse{}, err
	}

	stored, err := s.repo.GetByName(ctx, userID, name)
	if err != nil {
		return model.PresetResponse{}, err
	}

	return presetToResponse(*stored), nil
}

// Delete removes a preset.
func (s *PresetService) Delete(ctx context.Context, userID int64, name string) error {
	err := s.repo.Delete(ctx, userID, name)
	if errors.Is(err, repository.ErrPresetNotFound) {
		return ErrPresetNotFound
	}
	return err
}

// List returns all presets for a user.
func (s *PresetService) List(ctx context.Context, userID int64) ([]model.PresetResponse, error) {
	presets, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.PresetResponse, len(presets))
	for i, p := range presets {
		result[i] = presetToResponse(p)
	}
	return result, nil
}

// Generate produces a password using the stored option bundle of a preset.
func (s *PresetService) Generate(ctx context.Context, userID int64, name string) (model.GenerateResponse, error) {
	preset, err := s.repo.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, repository.ErrPresetNotFound) {
			return model.GenerateResponse{}, ErrPresetNotFound
		}
		return model.GenerateResponse{}, err
	}

	opts := presetOptions(*preset)
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

func validatePresetName(name string) error {
	if name == "" {
		return ErrPresetNameRequired
	}
	if len(name) > 64 {
		return ErrPresetNameTooLong
	}
	return nil
}

// validateOptions rejects option bundles that generation would reject.
func validateOptions(opts password.Options) error {
	if opts.Length < password.MinLength {
		return password.ErrLengthTooShort
	}
	if opts.Length > password.MaxLength {
		return password.ErrLengthTooLong
	}
	if password.BuildAlphabet(opts) == "" {
		return password.ErrEmptyAlphabet
	}
	return nil
}

func optionsFromPresetRequest(req model.PresetRequest) password.Options {
	return optionsFromRequest(model.GenerateRequest{
		Length:         req.Length,
		Numbers:        req.Numbers,
		Symbols:        req.Symbols,
		Lowercase:      req.Lowercase,
		Uppercase:      req.Uppercase,
		AllowAmbiguous: req.AllowAmbiguous,
	})
}

func presetFromOptions(userID int64, name string, opts password.Options) model.Preset {
	return model.Preset{
		UserID:         userID,
		Name:           name,
		Length:         opts.Length,
		Numbers:        opts.Numbers,
		Symbols:        opts.Symbols,
		Lowercase:      opts.Lowercase,
		Uppercase:      opts.Uppercase,
		AllowAmbiguous: opts.AllowAmbiguous,
	}
}

func presetOptions(p model.Preset) password.Options {
	return password.Options{
		Length:         p.Length,
		Numbers:        p.Numbers,
		Symbols:        p.Symbols,
		Lowercase:      p.Lowercase,
		Uppercase:      p.Uppercase,
		AllowAmbiguous: p.AllowAmbiguous,
	}
}

// presetToResponse converts a stored preset, attaching the entropy a password
// generated with it would carry.
func presetToResponse(p model.Preset) model.PresetResponse {
	bits := password.EntropyBits(presetOptions(p))
	return model.PresetResponse{
		Name:           p.Name,
		Length:         p.Length,
		Numbers:        p.Numbers,
		Symbols:        p.Symbols,
		Lowercase:      p.Lowercase,
		Uppercase:      p.Uppercase,
		AllowAmbiguous: p.AllowAmbiguous,
		EntropyBits:    bits,
		Strength:       string(password.Classify(bits)),
		UpdatedAt:      p.UpdatedAt,
	}
}
