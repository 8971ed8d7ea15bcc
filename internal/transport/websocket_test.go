package transport

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/lxzan/gws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HbarSuite/bitmart-go-sdk-api/internal/ws"
	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

type echoServer struct {
	gws.BuiltinEventHandler
	received chan string
	opened   atomic.Int32
}

func (s *echoServer) OnOpen(socket *gws.Conn) {
	s.opened.Add(1)
}

func (s *echoServer) OnMessage(socket *gws.Conn, message *gws.Message) {
	defer message.Close()
	text := message.Data.String()

	switch text {
	case "deflate":
		var buf bytes.Buffer
		w, _ := flate.NewWriter(&buf, flate.DefaultCompression)
		_, _ = w.Write([]byte(`{"table":"spot/ticker","data":[]}`))
		_ = w.Close()
		_ = socket.WriteMessage(gws.OpcodeBinary, buf.Bytes())
	case "ping":
		_ = socket.WriteMessage(gws.OpcodeText, []byte("pong"))
	case "drop":
		_ = socket.NetConn().Close()
		return
	default:
		_ = socket.WriteMessage(gws.OpcodeText, []byte("echo:"+text))
	}

	select {
	case s.received <- text:
	default:
	}
}

func newEchoServer(t *testing.T) (*echoServer, string) {
	t.Helper()

	handler := &echoServer{received: make(chan string, 16)}
	upgrader := gws.NewUpgrader(handler, nil)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		socket, err := upgrader.Upgrade(w, r)
		if err != nil {
			return
		}
		go socket.ReadLoop()
	}))
	t.Cleanup(srv.Close)

	return handler, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func nextMessage(t *testing.T, client *WSClient) string {
	t.Helper()

	select {
	case msg := <-client.Messages():
		return string(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return ""
	}
}

func TestNewWSClient(t *testing.T) {
	client := NewWSClient(WSConfig{URL: "wss://example.com/ws"})

	assert.NotNil(t, client)
	assert.False(t, client.IsConnected())
	assert.Equal(t, ws.StateDisconnected, client.State())
	assert.Equal(t, 1*time.Second, client.config.ReconnectBaseWait)
	assert.Equal(t, 30*time.Second, client.config.ReconnectMaxWait)
	assert.Equal(t, 10*time.Second, client.config.PingInterval)
	assert.Equal(t, 20*time.Second, client.config.PongWait)
	assert.Equal(t, 100, cap(client.messages))
}

func TestWSClient_ConnectAndEcho(t *testing.T) {
	server, url := newEchoServer(t)
	client := NewWSClient(WSConfig{URL: url})
	defer client.Close()

	require.NoError(t, client.Connect(context.Background()))
	assert.True(t, client.IsConnected())

	require.NoError(t, client.WriteMessage([]byte("hello")))
	assert.Equal(t, "echo:hello", nextMessage(t, client))
	assert.Equal(t, "hello", <-server.received)

	// already connected
	assert.NoError(t, client.Connect(context.Background()))
}

func TestWSClient_SendJSON(t *testing.T) {
	server, url := newEchoServer(t)
	client := NewWSClient(WSConfig{URL: url})
	defer client.Close()

	require.NoError(t, client.Connect(context.Background()))
	require.NoError(t, client.SendJSON(map[string]any{"op": "subscribe", "args": []string{"spot/ticker:BTC_USDT"}}))

	assert.JSONEq(t, `{"op":"subscribe","args":["spot/ticker:BTC_USDT"]}`, <-server.received)
}

func TestWSClient_InflatesBinaryFrames(t *testing.T) {
	_, url := newEchoServer(t)
	client := NewWSClient(WSConfig{URL: url, Inflate: true})
	defer client.Close()

	require.NoError(t, client.Connect(context.Background()))
	require.NoError(t, client.WriteMessage([]byte("deflate")))

	assert.Equal(t, `{"table":"spot/ticker","data":[]}`, nextMessage(t, client))
}

func TestWSClient_DropFilter(t *testing.T) {
	_, url := newEchoServer(t)
	client := NewWSClient(WSConfig{
		URL:  url,
		Drop: func(data []byte) bool { return string(data) == "pong" },
	})
	defer client.Close()

	require.NoError(t, client.Connect(context.Background()))
	require.NoError(t, client.WriteMessage([]byte("ping")))
	require.NoError(t, client.WriteMessage([]byte("after")))

	assert.Equal(t, "echo:after", nextMessage(t, client))
}

func TestWSClient_TextKeepalive(t *testing.T) {
	server, url := newEchoServer(t)
	client := NewWSClient(WSConfig{
		URL:          url,
		PingInterval: 20 * time.Millisecond,
		PingMessage:  []byte("ping"),
		Drop:         func(data []byte) bool { return string(data) == "pong" },
	})
	defer client.Close()

	require.NoError(t, client.Connect(context.Background()))

	select {
	case msg := <-server.received:
		assert.Equal(t, "ping", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no keepalive received")
	}
}

func TestWSClient_NotConnected(t *testing.T) {
	client := NewWSClient(WSConfig{URL: "ws://127.0.0.1:1/ws"})

	assert.ErrorIs(t, client.WriteMessage([]byte("x")), core.ErrNotConnected)
	assert.ErrorIs(t, client.SendPing(), core.ErrNotConnected)
	assert.ErrorIs(t, client.SendJSON(map[string]string{"op": "ping"}), core.ErrNotConnected)
}

func TestWSClient_ConnectFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	srv.Close()

	client := NewWSClient(WSConfig{URL: url})
	defer client.Close()

	assert.Error(t, client.Connect(context.Background()))
	assert.Equal(t, ws.StateDisconnected, client.State())
}

func TestWSClient_Reconnect(t *testing.T) {
	server, url := newEchoServer(t)
	client := NewWSClient(WSConfig{
		URL:               url,
		ReconnectEnabled:  true,
		ReconnectBaseWait: 10 * time.Millisecond,
		ReconnectMaxWait:  50 * time.Millisecond,
	})
	defer client.Close()

	var reconnects atomic.Int32
	client.OnReconnect(func() { reconnects.Add(1) })

	require.NoError(t, client.Connect(context.Background()))
	require.NoError(t, client.WriteMessage([]byte("drop")))

	require.Eventually(t, func() bool {
		return reconnects.Load() == 1 && client.IsConnected()
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(2), server.opened.Load())
}

func TestWSClient_Close(t *testing.T) {
	_, url := newEchoServer(t)
	client := NewWSClient(WSConfig{URL: url, ReconnectEnabled: true})

	require.NoError(t, client.Connect(context.Background()))
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	assert.Equal(t, ws.StateClosed, client.State())
	_, open := <-client.Messages()
	assert.False(t, open)
	assert.Error(t, client.Connect(context.Background()))
}

func TestWSClient_CalculateBackoff(t *testing.T) {
	client := NewWSClient(WSConfig{
		URL:               "wss://example.com/ws",
		ReconnectBaseWait: 1 * time.Second,
		ReconnectMaxWait:  30 * time.Second,
	})

	tests := []struct {
		attempts int
		expected time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},
		{64, 30 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, client.calculateBackoff(tt.attempts))
	}
}
