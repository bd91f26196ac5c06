package model

import "time"

// Preset represents a named bundle of generation options stored for a user.
// Presets hold option flags only; generated passwords are never persisted.
type Preset struct {
	ID             int64
	UserID         int64
	Name           string
	Length         int
	Numbers        bool
	Symbols        bool
	Lowercase      bool
	Uppercase      bool
	AllowAmbiguous bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PresetRequest represents a preset create or update request.
type PresetRequest struct {
	Name           string `json:"name"`
	Length         int    `json:"length"`
	Numbers        *bool  `json:"numbers"`
	Symbols        *bool  `json:"symbols"`
	Lowercase      *bool  `json:"lowercase"`
	Uppercase      *bool  `json:"uppercase"`
	AllowAmbiguous *bool  `json:"allow_ambiguous"`
}

// PresetResponse represents a preset in API responses, including the entropy
// a password generated with it would carry.
type PresetResponse struct {
	Name           string    `json:"name"`
	Length         int       `json:"length"`
	Numbers        bool      `json:"numbers"`
	Symbols        bool      `json:"symbols"`
	Lowercase      bool      `json:"lowercase"`
	Uppercase      bool      `json:"uppercase"`
	AllowAmbiguous bool      `json:"allow_ambiguous"`
	EntropyBits    float64   `json:"entropy_bits"`
	Strength       string    `json:"strength"`
	UpdatedAt      time.Time `json:"updated_at"`
}
