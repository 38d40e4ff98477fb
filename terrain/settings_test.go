// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettings_ValidateDefaults(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Error("default settings invalid:", err)
	}
}

func TestSettings_ValidateRejects(t *testing.T) {
	broken := []func(*Settings){
		func(s *Settings) { s.TilesX = 0 },
		func(s *Settings) { s.TilesY = -1 },
		func(s *Settings) { s.Resolution = 0 },
		func(s *Settings) { s.Octaves = 0 },
		func(s *Settings) { s.MinRivers = 3; s.MaxRivers = 1 },
		func(s *Settings) { s.RiverWidth = 0 },
		func(s *Settings) { s.BiomeTransition = 0 },
		func(s *Settings) { s.TilesPerTower = 0 },
		func(s *Settings) { s.TowerMargin = 0.5 },
		func(s *Settings) { s.RiverDepth = 1.5 },
	}

	for i, brk := range broken {
		s := DefaultSettings()
		brk(s)
		err := s.Validate()
		if err == nil {
			t.Error("case", i, "expected error, got none")
			continue
		}
		if _, ok := err.(ConfigurationError); !ok {
			t.Error("case", i, "expected ConfigurationError got", err)
		}
	}
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"tilesX": 5, "riverWidth": 7.5}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.TilesX != 5 {
		t.Error("tilesX expected 5 got", s.TilesX)
	}
	if s.RiverWidth != 7.5 {
		t.Error("riverWidth expected 7.5 got", s.RiverWidth)
	}
	// Unset fields keep defaults.
	if s.TilesY != DefaultSettings().TilesY {
		t.Error("tilesY lost its default:", s.TilesY)
	}
}

func TestLoadSettings_InvalidRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"tilesX": 0}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSettings(path); err == nil {
		t.Error("expected configuration error for zero tilesX")
	}
}
