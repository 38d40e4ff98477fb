// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

// Settings holds every generation tunable. One value is shared by
// reference across all tiles and stages; it is never mutated after
// validation, so global behavior stays consistent.
type Settings struct {
	// Heightmap noise
	NoiseScale  float32 `json:"noiseScale"`
	Octaves     int     `json:"octaves"`
	Persistence float32 `json:"persistence"`
	Lacunarity  float32 `json:"lacunarity"`

	// Dune shaping
	DuneHeight        float32 `json:"duneHeight"`
	DuneWindStrength  float32 `json:"duneWindStrength"`
	DuneWindFrequency float32 `json:"duneWindFrequency"`
	DuneDetail        float32 `json:"duneDetail"`

	// Salt flats
	FlatLevel  float32 `json:"flatLevel"`
	FlatDetail float32 `json:"flatDetail"`

	// Biome classification
	BiomeScale      float32 `json:"biomeScale"`
	BiomeThreshold  float32 `json:"biomeThreshold"`
	BiomeTransition float32 `json:"biomeTransition"`
	BiomeOctaves    int     `json:"biomeOctaves"`
	BiomeWarp       float32 `json:"biomeWarp"`
	BiomeRidged     bool    `json:"biomeRidged"`
	BiomeRotation   float32 `json:"biomeRotation"`
	BiomeContrast   float32 `json:"biomeContrast"`
	BiomeInvert     bool    `json:"biomeInvert"`

	// Rivers
	MinRivers                 int     `json:"minRivers"`
	MaxRivers                 int     `json:"maxRivers"`
	RiverWidth                float32 `json:"riverWidth"`
	RiverWindiness            float32 `json:"riverWindiness"`
	RiverSmoothPasses         int     `json:"riverSmoothPasses"`
	RiverRoughness            float32 `json:"riverRoughness"`
	RiverWidthJitter          float32 `json:"riverWidthJitter"`
	RiverWidthJitterFrequency float32 `json:"riverWidthJitterFrequency"`
	RiverBankSoftness         float32 `json:"riverBankSoftness"`
	RiverDepth                float32 `json:"riverDepth"`

	// Texturing
	TextureTiling   float32 `json:"textureTiling"`
	SplatSharpening float32 `json:"splatSharpening"`

	// Grid
	TilesX     int     `json:"tilesX"`
	TilesY     int     `json:"tilesY"`
	Resolution int     `json:"resolution"`
	TileSize   float32 `json:"tileSize"`
	Depth      float32 `json:"depth"`

	// Towers
	TilesPerTower     int     `json:"tilesPerTower"`
	TowerMargin       float32 `json:"towerMargin"`
	TowerHeightOffset float32 `json:"towerHeightOffset"`
	TowerLabel        string  `json:"towerLabel"`
}

// DefaultSettings are tuned for a 3x3 grid of 65-sample tiles.
func DefaultSettings() *Settings {
	return &Settings{
		NoiseScale:  55,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2,

		DuneHeight:        0.85,
		DuneWindStrength:  0.22,
		DuneWindFrequency: 0.35,
		DuneDetail:        0.04,

		FlatLevel:  0.08,
		FlatDetail: 0.03,

		BiomeScale:      180,
		BiomeThreshold:  0.5,
		BiomeTransition: 0.15,
		BiomeOctaves:    1,
		BiomeContrast:   1,

		MinRivers:                 1,
		MaxRivers:                 3,
		RiverWidth:                4,
		RiverWindiness:            0.6,
		RiverSmoothPasses:         2,
		RiverRoughness:            0.015,
		RiverWidthJitter:          0.35,
		RiverWidthJitterFrequency: 0.05,
		RiverBankSoftness:         1.6,
		RiverDepth:                0.25,

		TextureTiling:   8,
		SplatSharpening: 1,

		TilesX:     3,
		TilesY:     3,
		Resolution: 64,
		TileSize:   200,
		Depth:      60,

		TilesPerTower:     4,
		TowerMargin:       0.15,
		TowerHeightOffset: 1.5,
	}
}

// ConfigurationError reports an invalid or missing setting. Generation
// aborts before any stage runs; nothing is defaulted silently.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (err ConfigurationError) Error() string {
	return fmt.Sprintf("invalid settings: %s %s", err.Field, err.Reason)
}

func (s *Settings) Validate() error {
	switch {
	case s == nil:
		return ConfigurationError{Field: "settings", Reason: "missing"}
	case s.TilesX <= 0 || s.TilesY <= 0:
		return ConfigurationError{Field: "tilesX/tilesY", Reason: "must be positive"}
	case s.Resolution <= 0:
		return ConfigurationError{Field: "resolution", Reason: "must be positive"}
	case s.TileSize <= 0:
		return ConfigurationError{Field: "tileSize", Reason: "must be positive"}
	case s.Depth <= 0:
		return ConfigurationError{Field: "depth", Reason: "must be positive"}
	case s.NoiseScale <= 0:
		return ConfigurationError{Field: "noiseScale", Reason: "must be positive"}
	case s.Octaves < 1:
		return ConfigurationError{Field: "octaves", Reason: "must be at least 1"}
	case s.Persistence <= 0:
		return ConfigurationError{Field: "persistence", Reason: "must be positive"}
	case s.Lacunarity < 1:
		return ConfigurationError{Field: "lacunarity", Reason: "must be at least 1"}
	case s.BiomeScale <= 0:
		return ConfigurationError{Field: "biomeScale", Reason: "must be positive"}
	case s.BiomeTransition <= 0:
		return ConfigurationError{Field: "biomeTransition", Reason: "must be positive"}
	case s.MinRivers < 0 || s.MaxRivers < s.MinRivers:
		return ConfigurationError{Field: "minRivers/maxRivers", Reason: "need 0 <= min <= max"}
	case s.MaxRivers > 0 && s.RiverWidth <= 0:
		return ConfigurationError{Field: "riverWidth", Reason: "must be positive"}
	case s.RiverSmoothPasses < 0:
		return ConfigurationError{Field: "riverSmoothPasses", Reason: "must not be negative"}
	case s.RiverBankSoftness <= 0:
		return ConfigurationError{Field: "riverBankSoftness", Reason: "must be positive"}
	case s.RiverDepth < 0 || s.RiverDepth > 1:
		return ConfigurationError{Field: "riverDepth", Reason: "must be in [0,1]"}
	case s.SplatSharpening <= 0:
		return ConfigurationError{Field: "splatSharpening", Reason: "must be positive"}
	case s.TilesPerTower < 1:
		return ConfigurationError{Field: "tilesPerTower", Reason: "must be at least 1"}
	case s.TowerMargin < 0 || s.TowerMargin >= 0.5:
		return ConfigurationError{Field: "towerMargin", Reason: "must be in [0, 0.5)"}
	}
	return nil
}

// SampleWidth is the global sample-space width, including the shared
// +1 boundary column.
func (s *Settings) SampleWidth() int {
	return s.TilesX*s.Resolution + 1
}

func (s *Settings) SampleHeight() int {
	return s.TilesY*s.Resolution + 1
}

var json = jsoniter.Config{
	EscapeHTML:              false,
	MarshalFloatWith6Digits: true,
}.Froze()

// LoadSettings reads a settings JSON file over the defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(buf, settings); err != nil {
		return nil, err
	}
	return settings, settings.Validate()
}
