package server

import (
	"strings"
	"testing"
	"time"

	"github.com/df07/go-volume-raytracer/pkg/scene"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func dialRender(t *testing.T) *websocket.Conn {
	t.Helper()

	ts := newTestServer(t)
	config, err := websocket.NewConfig(strings.ReplaceAll(ts.URL, "http://", "ws://")+"/ws/render", "http://localhost")
	require.NoError(t, err)

	conn, err := websocket.DialConfig(config)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, conn.SetDeadline(time.Now().Add(time.Minute)))
	return conn
}

func receiveMessages(t *testing.T, conn *websocket.Conn) []StreamMessage {
	t.Helper()

	var messages []StreamMessage
	for {
		var data string
		require.NoError(t, websocket.Message.Receive(conn, &data))

		var msg StreamMessage
		require.NoError(t, json.Unmarshal([]byte(data), &msg))
		messages = append(messages, msg)

		if msg.Type == eventComplete || msg.Type == eventError {
			return messages
		}
	}
}

func TestWebsocketRender(t *testing.T) {
	conn := dialRender(t)

	req, err := json.Marshal(RenderRequest{Scene: "quads", Width: 16, Samples: 3, Passes: 3})
	require.NoError(t, err)
	require.NoError(t, websocket.Message.Send(conn, string(req)))

	messages := receiveMessages(t, conn)

	var types []string
	for _, msg := range messages {
		types = append(types, msg.Type)
		require.NotEmpty(t, msg.RenderID)
		require.Equal(t, messages[0].RenderID, msg.RenderID)
	}
	require.Equal(t, []string{
		eventConsole,
		eventConsole, eventProgress,
		eventConsole, eventProgress,
		eventConsole, eventProgress,
		eventComplete,
	}, types)

	for i, msg := range []StreamMessage{messages[2], messages[4], messages[6]} {
		require.NotNil(t, msg.Update)
		require.Equal(t, i+1, msg.Update.PassNumber)
		require.Equal(t, 3, msg.Update.TotalPasses)
		require.Equal(t, i+1, msg.Update.Stats.MaxSamples)
		require.Equal(t, 16*16, msg.Update.Stats.TotalPixels)
		require.NotEmpty(t, msg.Update.ImageData)
	}
	require.True(t, messages[6].Update.IsComplete)
	require.NotNil(t, messages[7].Complete)
}

func TestWebsocketRender_Errors(t *testing.T) {
	tests := []struct {
		name         string
		request      string
		expectedType string
	}{
		{"malformed json", "{scene", ErrTypeBadRequest},
		{"out of range", `{"scene":"quads","width":1}`, ErrTypeBadRequest},
		{"unknown scene", `{"scene":"nope"}`, scene.ErrTypeUnknownScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := dialRender(t)
			require.NoError(t, websocket.Message.Send(conn, tt.request))

			messages := receiveMessages(t, conn)
			require.Len(t, messages, 1)
			require.Equal(t, eventError, messages[0].Type)
			require.NotNil(t, messages[0].Error)
			require.Equal(t, tt.expectedType, messages[0].Error.Type)
		})
	}
}
