package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/df07/go-volume-raytracer/pkg/renderer"
	"github.com/google/uuid"
	"github.com/segmentio/encoding/json"
)

// Event names of the render stream.
const (
	eventConsole  = "console"
	eventProgress = "progress"
	eventComplete = "complete"
	eventError    = "error"
)

// ProgressUpdate carries the image of a finished pass.
type ProgressUpdate struct {
	RenderID    string               `json:"renderId"`
	PassNumber  int                  `json:"passNumber"`
	TotalPasses int                  `json:"totalPasses"`
	Width       int                  `json:"width"`
	Height      int                  `json:"height"`
	ImageData   string               `json:"imageData"` // Base64 encoded PNG
	Stats       renderer.RenderStats `json:"stats"`
	IsComplete  bool                 `json:"isComplete"`
	PassMs      int64                `json:"passMs"`
	ElapsedMs   int64                `json:"elapsedMs"`
}

func newProgressUpdate(renderID string, result renderer.PassResult, start time.Time) (ProgressUpdate, error) {
	imageData, err := imageToBase64PNG(result.Image)
	if err != nil {
		return ProgressUpdate{}, err
	}

	bounds := result.Image.Bounds()
	return ProgressUpdate{
		RenderID:    renderID,
		PassNumber:  result.PassNumber,
		TotalPasses: result.TotalPasses,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageData:   imageData,
		Stats:       result.Stats,
		IsComplete:  result.IsLast,
		PassMs:      result.Duration.Milliseconds(),
		ElapsedMs:   time.Since(start).Milliseconds(),
	}, nil
}

// CompleteEvent closes a successful render stream.
type CompleteEvent struct {
	RenderID  string `json:"renderId"`
	ElapsedMs int64  `json:"elapsedMs"`
}

func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", errors.New("encoding pass image failed").Wrap(err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sseWriter writes server-sent events. It is not safe for concurrent use; the
// render callback runs on a single goroutine.
type sseWriter struct {
	w       io.Writer
	flusher http.Flusher
}

func newSSEWriter(w http.ResponseWriter) *sseWriter {
	setSSEHeaders(w)
	flusher, _ := w.(http.Flusher)
	return &sseWriter{w: w, flusher: flusher}
}

func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
}

// send writes v as the JSON data of an event named event.
func (s *sseWriter) send(event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.New("encoding sse event failed").
			WithTag("event", event).
			Wrap(err)
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return errors.New("writing sse event failed").
			WithTag("event", event).
			Wrap(err)
	}
	if s.flusher != nil {
		s.flusher.Flush()
	}
	return nil
}

// handleRender streams a progressive render as server-sent events: a console
// line and a progress update per pass, then complete or error.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sse := newSSEWriter(w)
	renderID := uuid.NewString()
	log := logs.WithTag("render_id", renderID)

	fail := func(err error) {
		log.Error(err)
		if err := sse.send(eventError, newErrorResponse(err)); err != nil {
			log.Debug(err.Error())
		}
	}

	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		fail(err)
		return
	}
	if req, err = s.normalize(req); err != nil {
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

	if err := sse.send(eventConsole, startMessage(sc, pr)); err != nil {
		log.Debug(err.Error())
		return
	}

	start := time.Now()
	err = pr.RenderProgressive(r.Context(), func(result renderer.PassResult) error {
		update, err := newProgressUpdate(renderID, result, start)
		if err != nil {
			return err
		}
		if err := sse.send(eventConsole, passMessage(result)); err != nil {
			return err
		}
		return sse.send(eventProgress, update)
	})

	switch {
	case err == nil:
		log.WithTag("duration", time.Since(start).String()).Info("render completed")
		if err := sse.send(eventComplete, CompleteEvent{RenderID: renderID, ElapsedMs: time.Since(start).Milliseconds()}); err != nil {
			log.Debug(err.Error())
		}

	case errors.Is(err, context.Canceled):
		log.Info("render cancelled by client")

	default:
		fail(err)
	}
}
