package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"sync"
	"time"

	"AuraFM/core/visual"
	"AuraFM/logger"
	"AuraFM/storage"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// visualCommand is an inbound control message on a visualizer socket.
type visualCommand struct {
	Type   string `json:"type"` // setTrack, resize, snapshot, stop
	URI    string `json:"uri,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// visualEvent is an outbound JSON message; frames travel as binary PNGs.
type visualEvent struct {
	Type    string `json:"type"`
	Session string `json:"session,omitempty"`
	URI     string `json:"uri,omitempty"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

// VisualizerSocketHandler runs one visualizer per connection. The loop starts
// on the first setTrack command and pushes every rendered frame down the
// socket; the client steers it with setTrack / resize / snapshot messages.
func (h *APIHandler) VisualizerSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", logger.ErrorField(err))
		return
	}
	defer conn.Close()

	session := uuid.New().String()

	// Gorilla connections allow one concurrent writer; the frame loop and the
	// command replies share this mutex.
	var writeMu sync.Mutex
	sendEvent := func(ev visualEvent) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(ev); err != nil {
			logger.Debug("websocket event write failed", logger.ErrorField(err))
		}
	}

	vis := visual.New(h.cfg.VisualWidth, h.cfg.VisualHeight,
		visual.WithFrameRate(h.cfg.VisualFrameRate),
		visual.WithFrameFunc(func(frame *image.RGBA) {
			var buf bytes.Buffer
			if err := png.Encode(&buf, frame); err != nil {
				logger.Warn("frame encode failed", logger.ErrorField(err))
				return
			}
			writeMu.Lock()
			err := conn.WriteMessage(websocket.BinaryMessage, buf.Bytes())
			writeMu.Unlock()
			if err != nil {
				// The read loop sees the closed connection and tears down.
				logger.Debug("frame write failed", logger.ErrorField(err))
			}
		}))
	defer vis.Stop()

	logger.Info("visualizer session opened", logger.String("session", session))
	sendEvent(visualEvent{Type: "session", Session: session})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			logger.Info("visualizer session closed", logger.String("session", session))
			return
		}

		var cmd visualCommand
		if err := json.Unmarshal(data, &cmd); err != nil {
			sendEvent(visualEvent{Type: "error", Error: "invalid command"})
			continue
		}

		switch cmd.Type {
		case "setTrack":
			track := h.lib.ByURI(cmd.URI)
			if track == nil {
				sendEvent(visualEvent{Type: "error", Error: "unknown track: " + cmd.URI})
				continue
			}
			vis.SetTrack(track)
			sendEvent(visualEvent{Type: "playing", URI: track.URI})

		case "resize":
			vis.Resize(cmd.Width, cmd.Height)

		case "snapshot":
			url, err := h.storeSnapshot(r.Context(), session, vis)
			if err != nil {
				logger.Warn("snapshot failed", logger.ErrorField(err))
				sendEvent(visualEvent{Type: "error", Error: "snapshot failed"})
				continue
			}
			sendEvent(visualEvent{Type: "snapshot", URL: url})

		case "stop":
			vis.Stop()
			sendEvent(visualEvent{Type: "stopped"})

		default:
			sendEvent(visualEvent{Type: "error", Error: "unknown command: " + cmd.Type})
		}
	}
}

// storeSnapshot encodes the current frame and persists it to object storage.
func (h *APIHandler) storeSnapshot(ctx context.Context, session string, vis *visual.Visualizer) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, vis.Snapshot()); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return storage.PutSnapshot(ctx, h.cfg, session, buf.Bytes())
}
