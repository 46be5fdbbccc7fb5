package server

import (
	"context"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/df07/go-volume-raytracer/pkg/renderer"
	"github.com/google/uuid"
	"github.com/segmentio/encoding/json"
	"golang.org/x/net/websocket"
)

// StreamMessage is a frame sent to websocket clients.
type StreamMessage struct {
	Type     string          `json:"type"` // "console", "progress", "complete", "error"
	RenderID string          `json:"renderId"`
	Console  *ConsoleMessage `json:"console,omitempty"`
	Update   *ProgressUpdate `json:"update,omitempty"`
	Complete *CompleteEvent  `json:"complete,omitempty"`
	Error    *ErrorResponse  `json:"error,omitempty"`
}

func sendMessage(conn *websocket.Conn, msg StreamMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.New("encoding websocket message failed").
			WithTag("type", msg.Type).
			Wrap(err)
	}
	if err := websocket.Message.Send(conn, string(data)); err != nil {
		return errors.New("sending websocket message failed").
			WithTag("type", msg.Type).
			Wrap(err)
	}
	return nil
}

// handleWebsocketRender reads one JSON RenderRequest and streams the render
// back. Closing the connection cancels the render.
func (s *Server) handleWebsocketRender(conn *websocket.Conn) {
	defer conn.Close()

	renderID := uuid.NewString()
	log := logs.WithTag("render_id", renderID).WithTag("transport", "websocket")

	fail := func(err error) {
		log.Error(err)
		resp := newErrorResponse(err)
		if err := sendMessage(conn, StreamMessage{Type: eventError, RenderID: renderID, Error: &resp}); err != nil {
			log.Debug(err.Error())
		}
	}

	var data []byte
	if err := websocket.Message.Receive(conn, &data); err != nil {
		log.Debug(errors.New("receiving render request failed").Wrap(err).Error())
		return
	}

	var req RenderRequest
	if err := json.Unmarshal(data, &req); err != nil {
		fail(errors.New("decoding render request failed").
			WithType(ErrTypeBadRequest).
			Wrap(err))
		return
	}

	req, err := s.normalize(req)
	if err != nil {
		fail(err)
		return
	}

	sc, pr, err := s.newPipeline(renderID, req)
	if err != nil {
		fail(err)
		return
	}
	log = log.WithTag("scene", sc.Name)
	log.Info("render started")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		defer cancel()

		var discard []byte
		for {
			if err := websocket.Message.Receive(conn, &discard); err != nil {
				return
			}
		}
	}()

	start := startMessage(sc, pr)
	if err := sendMessage(conn, StreamMessage{Type: eventConsole, RenderID: renderID, Console: &start}); err != nil {
		log.Debug(err.Error())
		return
	}

	startTime := time.Now()
	err = pr.RenderProgressive(ctx, func(result renderer.PassResult) error {
		update, err := newProgressUpdate(renderID, result, startTime)
		if err != nil {
			return err
		}

		console := passMessage(result)
		if err := sendMessage(conn, StreamMessage{Type: eventConsole, RenderID: renderID, Console: &console}); err != nil {
			return err
		}
		return sendMessage(conn, StreamMessage{Type: eventProgress, RenderID: renderID, Update: &update})
	})

	switch {
	case err == nil:
		log.WithTag("duration", time.Since(startTime).String()).Info("render completed")
		complete := CompleteEvent{RenderID: renderID, ElapsedMs: time.Since(startTime).Milliseconds()}
		if err := sendMessage(conn, StreamMessage{Type: eventComplete, RenderID: renderID, Complete: &complete}); err != nil {
			log.Debug(err.Error())
		}

	case errors.Is(err, context.Canceled):
		log.Info("render cancelled by client")

	default:
		fail(err)
	}
}
