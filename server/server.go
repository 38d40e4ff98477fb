// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tucker567/Car-sub000/terrain"
	"github.com/tucker567/Car-sub000/terrain/noise"
	"github.com/tucker567/Car-sub000/terrain/rivers"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 5 * time.Second

	// Time allowed to read the generation request.
	readWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: Read domain env var and actually enforce similarity
	},
	HandshakeTimeout: time.Second,
	ReadBufferSize:   maxMessageSize,
	WriteBufferSize:  2048,
}

// Handler serves world generation over websockets. Each connection
// runs its own pipeline incrementally: the client sends one request
// and receives a stream of progress events, then the finished tile
// payloads, then exactly one complete message.
type Handler struct {
	// Settings for every run; nil means defaults.
	Settings *terrain.Settings
}

func (h *Handler) ServeSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(readWait))
	_, buf, err := conn.ReadMessage()
	if err != nil {
		return
	}

	var req request
	if err := json.Unmarshal(buf, &req); err != nil {
		_ = send(conn, outbound{Error: "malformed request"})
		return
	}

	h.generate(conn, req.Seed)
}

func (h *Handler) generate(conn *websocket.Conn, seed int64) {
	settings := h.Settings
	if settings == nil {
		settings = terrain.DefaultSettings()
	}

	pipeline, err := terrain.NewPipeline(seed, settings,
		noise.NewGenerator(seed, settings), rivers.NewBuilder(seed, settings))
	if err != nil {
		_ = send(conn, outbound{Error: err.Error()})
		return
	}

	// Stepped mode keeps the connection responsive; one unit of work
	// per progress message.
	for {
		result, err := pipeline.Step()
		if err != nil {
			_ = send(conn, outbound{Error: err.Error()})
			return
		}
		if sendErr := send(conn, outbound{Progress: &progressMessage{
			Progress: result.Progress,
			Note:     result.Note,
		}}); sendErr != nil {
			// Peer gone; abandon the run.
			pipeline.Cancel()
			return
		}
		if result.Done {
			break
		}
	}

	w := pipeline.World()
	side := settings.Resolution + 1
	for _, t := range w.Grid.Tiles() {
		if err := send(conn, outbound{Tile: &tileMessage{
			X:       t.X,
			Y:       t.Y,
			Size:    side,
			Heights: t.Height.Values,
			Splat:   t.Splat.Weights,
		}}); err != nil {
			return
		}
	}

	_ = send(conn, outbound{Complete: &completeMessage{
		Seed:          seed,
		Depth:         settings.Depth,
		TextureTiling: settings.TextureTiling,
		Towers:        w.Towers,
	}})
}

func send(conn *websocket.Conn, out outbound) error {
	buf, err := json.Marshal(out)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, buf)
}
