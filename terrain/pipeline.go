// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"errors"
	"fmt"
)

// Stage of the generation state machine, in execution order.
type Stage int

const (
	StageIdle Stage = iota
	StageCreatingTiles
	StageRivers
	StageHeights
	StageStitching
	StageFinalizing
	StageTowers
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageCreatingTiles:
		return "creating tiles"
	case StageRivers:
		return "carving rivers"
	case StageHeights:
		return "generating heights"
	case StageStitching:
		return "stitching edges"
	case StageFinalizing:
		return "compositing splatmaps"
	case StageTowers:
		return "placing towers"
	case StageComplete:
		return "complete"
	}
	return "unknown"
}

// StepResult reports one unit of incremental work.
type StepResult struct {
	Done     bool    `json:"done"`
	Progress float32 `json:"progress"`
	Note     string  `json:"note"`
}

// ProgressFunc receives advisory progress events. Consumers must not
// assume a fixed real-time cadence between calls.
type ProgressFunc func(progress float32, note string)

// ErrCancelled is returned by Step and Generate once a cancellation
// has taken effect at a stage boundary.
var ErrCancelled = errors.New("generation cancelled")

// World is the completed output: plain data for external renderer,
// collider and gameplay systems.
type World struct {
	Grid      *Grid
	RiverMask *Field
	Towers    []Tower
}

// Pipeline runs the ordered generation stages, either blocking
// (Generate) or one bounded unit of work at a time (Step).
type Pipeline struct {
	seed     int64
	settings *Settings
	source   Source
	rivers   RiverSource
	anchor   AnchorSource

	grid      *Grid
	riverMask *Field
	towers    []Tower
	spots     []towerSpot

	stage      Stage
	cursor     int
	riverCount int
	towerCount int
	doneUnits  int

	cancel    bool
	aborted   bool
	completed bool

	notify []ProgressFunc
}

// NewPipeline validates the configuration and prepares a run. Invalid
// settings abort here, before any stage mutates output.
func NewPipeline(seed int64, settings *Settings, source Source, rivers RiverSource) (*Pipeline, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, ConfigurationError{Field: "source", Reason: "missing"}
	}
	if rivers == nil && settings.MaxRivers > 0 {
		return nil, ConfigurationError{Field: "rivers", Reason: "missing but maxRivers > 0"}
	}

	p := &Pipeline{
		seed:     seed,
		settings: settings,
		source:   source,
		rivers:   rivers,
	}
	p.riverCount = settings.MaxRivers // upper bound until planned
	p.towerCount = maxInt(1, settings.TilesX*settings.TilesY/settings.TilesPerTower)
	return p, nil
}

// SetAnchor provides the optional external spawn anchor used to keep
// towers off the spawn tile.
func (p *Pipeline) SetAnchor(anchor AnchorSource) {
	p.anchor = anchor
}

// Notify registers a progress callback. The terminal completion event
// fires exactly once, no matter how often Step is called afterwards.
func (p *Pipeline) Notify(fn ProgressFunc) {
	p.notify = append(p.notify, fn)
}

// Cancel requests cancellation. It takes effect at the next stage
// boundary so no stage is left half-applied.
func (p *Pipeline) Cancel() {
	p.cancel = true
}

// World returns the output. Only valid once generation completed.
func (p *Pipeline) World() *World {
	if !p.completed {
		return nil
	}
	return &World{
		Grid:      p.grid,
		RiverMask: p.riverMask,
		Towers:    p.towers,
	}
}

// Generate runs every stage to completion on the calling goroutine.
func (p *Pipeline) Generate() (*World, error) {
	for {
		result, err := p.Step()
		if err != nil {
			return nil, err
		}
		if result.Done {
			return p.World(), nil
		}
	}
}

func (p *Pipeline) units() int {
	tiles := p.settings.TilesX * p.settings.TilesY
	return 1 + p.riverCount + tiles + 1 + tiles + p.towerCount
}

func (p *Pipeline) fraction() float32 {
	return float32(p.doneUnits) / float32(p.units())
}

func (p *Pipeline) emit(note string) StepResult {
	result := StepResult{
		Done:     p.completed,
		Progress: p.fraction(),
		Note:     note,
	}
	for _, fn := range p.notify {
		fn(result.Progress, result.Note)
	}
	return result
}

// Step performs one bounded unit of work: one tile, one river or one
// tower. It returns the progress fraction and a status note.
func (p *Pipeline) Step() (StepResult, error) {
	if p.aborted {
		return StepResult{}, ErrCancelled
	}
	if p.completed {
		// Terminal event already fired; stay idempotent.
		return StepResult{Done: true, Progress: 1, Note: StageComplete.String()}, nil
	}
	if p.stage == StageIdle {
		p.stage = StageCreatingTiles
	}

	var note string
	switch p.stage {
	case StageCreatingTiles:
		p.grid = NewGrid(p.settings)
		if p.rivers != nil {
			p.riverCount = p.rivers.Plan(p.settings.SampleWidth(), p.settings.SampleHeight())
		} else {
			p.riverCount = 0
		}
		note = p.stage.String()
		p.doneUnits++
		p.next(StageRivers)

	case StageRivers:
		p.rivers.Carve(p.cursor)
		note = fmt.Sprintf("%s %d/%d", p.stage, p.cursor+1, p.riverCount)
		p.cursor++
		p.doneUnits++
		if p.cursor >= p.riverCount {
			p.sliceRivers()
			p.next(StageHeights)
		}

	case StageHeights:
		p.generateTile(p.grid.Tiles()[p.cursor])
		note = fmt.Sprintf("%s %d/%d", p.stage, p.cursor+1, len(p.grid.Tiles()))
		p.cursor++
		p.doneUnits++
		if p.cursor >= len(p.grid.Tiles()) {
			p.next(StageStitching)
		}

	case StageStitching:
		p.grid.Link()
		note = p.stage.String()
		p.doneUnits++
		p.next(StageFinalizing)

	case StageFinalizing:
		t := p.grid.Tiles()[p.cursor]
		t.Splat = ComposeSplat(t, p.settings.SplatSharpening)
		note = fmt.Sprintf("%s %d/%d", p.stage, p.cursor+1, len(p.grid.Tiles()))
		p.cursor++
		p.doneUnits++
		if p.cursor >= len(p.grid.Tiles()) {
			p.planTowers()
			p.next(StageTowers)
		}

	case StageTowers:
		p.placeTower(p.cursor)
		note = fmt.Sprintf("%s %d/%d", p.stage, p.cursor+1, p.towerCount)
		p.cursor++
		p.doneUnits++
		if p.cursor >= p.towerCount {
			p.stage = StageComplete
			p.completed = true
			note = p.stage.String()
		}

	default:
		panic("step in unexpected stage " + p.stage.String())
	}

	if p.aborted {
		return StepResult{}, ErrCancelled
	}
	return p.emit(note), nil
}

// next moves to the following stage, honoring cancellation only at
// this boundary. Stages with no pending work are skipped.
func (p *Pipeline) next(stage Stage) {
	if p.cancel {
		p.aborted = true
		return
	}
	p.stage = stage
	p.cursor = 0

	if stage == StageRivers && p.riverCount == 0 {
		p.sliceRivers()
		p.stage = StageHeights
	}
}

// sliceRivers distributes the finished global mask into per-tile
// views with one-sample overlap.
func (p *Pipeline) sliceRivers() {
	if p.rivers != nil && p.riverCount > 0 {
		p.riverMask = p.rivers.Mask()
	} else {
		p.riverMask = NewField(p.settings.SampleWidth(), p.settings.SampleHeight())
	}
	p.grid.SliceInto(p.riverMask, func(t *Tile, f *Field) {
		t.River = f
	})
}

// generateTile fills one tile's height and biome data from the source
// and folds the river mask into the heights. The fold is a [0,1]
// preserving scale, not a post-hoc clamp, so the normalization
// guarantee holds at river banks.
func (p *Pipeline) generateTile(t *Tile) {
	side := p.settings.Resolution + 1
	x, y := p.grid.SampleOrigin(t)

	t.Height = &Field{Values: p.source.Heights(x, y, side, side), Width: side, Height: side}
	t.Blend = &Field{Values: p.source.Blends(x, y, side, side), Width: side, Height: side}

	if p.settings.RiverDepth > 0 {
		for i, r := range t.River.Values {
			t.Height.Values[i] *= 1 - p.settings.RiverDepth*r
		}
	}
}
