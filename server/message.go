// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"github.com/tucker567/Car-sub000/terrain"
)

// request is the single inbound message starting a generation run.
type request struct {
	Seed int64 `json:"seed"`
}

// outbound is the message envelope; exactly one field is set.
type outbound struct {
	Progress *progressMessage `json:"progress,omitempty"`
	Tile     *tileMessage     `json:"tile,omitempty"`
	Complete *completeMessage `json:"complete,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// progressMessage mirrors the pipeline's advisory progress events.
type progressMessage struct {
	Progress float32 `json:"progress"`
	Note     string  `json:"note"`
}

// tileMessage carries one finished tile: heights in [0,1] to be scaled
// by depth client-side, splat weights in alphamap orientation.
type tileMessage struct {
	X       int       `json:"x"`
	Y       int       `json:"y"`
	Size    int       `json:"size"` // samples per side
	Heights []float32 `json:"heights"`
	Splat   []float32 `json:"splat"`
}

// completeMessage is the terminal message, sent exactly once. Depth
// and texture tiling let the client scale heights and set up its
// terrain materials.
type completeMessage struct {
	Seed          int64           `json:"seed"`
	Depth         float32         `json:"depth"`
	TextureTiling float32         `json:"textureTiling"`
	Towers        []terrain.Tower `json:"towers"`
}
