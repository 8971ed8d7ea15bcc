package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/flate"
	"github.com/lxzan/gws"
	"github.com/rs/zerolog"

	"github.com/HbarSuite/bitmart-go-sdk-api/internal/ws"
	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

type WSConfig struct {
	URL               string
	ReconnectEnabled  bool
	ReconnectMaxWait  time.Duration
	ReconnectBaseWait time.Duration
	PingInterval      time.Duration
	PongWait          time.Duration
	// PingMessage is sent as a text frame on every PingInterval. A nil value
	// sends a protocol-level ping frame instead.
	PingMessage []byte
	// Inflate decompresses binary frames that carry a raw deflate stream.
	Inflate bool
	// Drop filters frames out before they reach Messages, e.g. keepalive replies.
	Drop       func(data []byte) bool
	BufferSize int
}

// WSClient is a single websocket connection that relays every inbound frame,
// untouched apart from decompression, on one channel.
type WSClient struct {
	config  WSConfig
	state   *ws.State
	conn    *gws.Conn
	handler *wsEventHandler
	logger  zerolog.Logger

	mu                sync.RWMutex
	messages          chan []byte
	connectedChan     chan struct{}
	stopChan          chan struct{}
	pingOnce          sync.Once
	closeOnce         sync.Once
	wg                sync.WaitGroup
	reconnectAttempts int
	onReconnect       func()
}

type wsEventHandler struct {
	client *WSClient
}

func NewWSClient(config WSConfig) *WSClient {
	if config.ReconnectBaseWait == 0 {
		config.ReconnectBaseWait = 1 * time.Second
	}
	if config.ReconnectMaxWait == 0 {
		config.ReconnectMaxWait = 30 * time.Second
	}
	if config.PingInterval == 0 {
		config.PingInterval = 10 * time.Second
	}
	if config.PongWait == 0 {
		config.PongWait = 20 * time.Second
	}
	if config.BufferSize == 0 {
		config.BufferSize = 100
	}

	client := &WSClient{
		config:        config,
		state:         &ws.State{},
		messages:      make(chan []byte, config.BufferSize),
		connectedChan: make(chan struct{}),
		stopChan:      make(chan struct{}),
		logger:        zerolog.Nop(),
	}
	client.state.Store(ws.StateDisconnected)
	client.handler = &wsEventHandler{client: client}
	return client
}

func (c *WSClient) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// OnReconnect registers fn to run each time the connection is re-established
// after a drop. It runs on the read goroutine of the new connection.
func (c *WSClient) OnReconnect(fn func()) {
	c.mu.Lock()
	c.onReconnect = fn
	c.mu.Unlock()
}

func (h *wsEventHandler) OnOpen(socket *gws.Conn) {
	h.client.state.Store(ws.StateConnected)

	h.client.mu.Lock()
	reconnected := h.client.reconnectAttempts > 0
	h.client.reconnectAttempts = 0
	select {
	case <-h.client.connectedChan:
	default:
		close(h.client.connectedChan)
	}
	onReconnect := h.client.onReconnect
	h.client.mu.Unlock()

	h.client.logger.Info().
		Str("url", h.client.config.URL).
		Msg("websocket connected")

	h.client.extendDeadline(socket)

	if reconnected && onReconnect != nil {
		onReconnect()
	}
}

func (h *wsEventHandler) OnClose(socket *gws.Conn, err error) {
	if h.client.state.Load() == ws.StateClosed {
		return
	}
	h.client.state.Store(ws.StateDisconnected)

	h.client.mu.Lock()
	h.client.connectedChan = make(chan struct{})
	h.client.mu.Unlock()

	h.client.logger.Warn().
		Err(err).
		Str("url", h.client.config.URL).
		Msg("websocket disconnected")

	if h.client.config.ReconnectEnabled {
		select {
		case <-h.client.stopChan:
			return
		default:
			go h.client.attemptReconnect()
		}
	}
}

func (h *wsEventHandler) OnPing(socket *gws.Conn, payload []byte) {
	h.client.extendDeadline(socket)
	_ = socket.WritePong(payload)
}

func (h *wsEventHandler) OnPong(socket *gws.Conn, payload []byte) {
	h.client.extendDeadline(socket)
}

func (h *wsEventHandler) OnMessage(socket *gws.Conn, message *gws.Message) {
	defer message.Close()
	h.client.extendDeadline(socket)

	data := message.Bytes()
	if len(data) == 0 {
		return
	}

	if message.Opcode == gws.OpcodeBinary && h.client.config.Inflate {
		inflated, err := inflate(data)
		if err != nil {
			h.client.logger.Warn().Err(err).Int("size", len(data)).Msg("inflate websocket frame")
			return
		}
		data = inflated
	} else {
		data = bytes.Clone(data)
	}

	if h.client.config.Drop != nil && h.client.config.Drop(data) {
		return
	}

	h.client.logger.Debug().Int("size", len(data)).Msg("received websocket message")

	select {
	case h.client.messages <- data:
	default:
		h.client.logger.Warn().Str("url", h.client.config.URL).Msg("message buffer full, dropping message")
	}
}

func (c *WSClient) extendDeadline(socket *gws.Conn) {
	_ = socket.SetDeadline(time.Now().Add(c.config.PingInterval + c.config.PongWait))
}

func inflate(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	return io.ReadAll(r)
}

// Connect dials the server and blocks until the handshake completes or ctx is done.
func (c *WSClient) Connect(ctx context.Context) error {
	if !c.state.CompareAndSwap(ws.StateDisconnected, ws.StateConnecting) {
		current := c.state.Load()
		if current == ws.StateConnected {
			return nil
		}
		return fmt.Errorf("invalid state for connect: %s", current)
	}
	return c.dial(ctx)
}

func (c *WSClient) dial(ctx context.Context) error {
	socket, _, err := gws.NewClient(c.handler, &gws.ClientOption{
		Addr: c.config.URL,
	})
	if err != nil {
		c.state.CompareAndSwap(ws.StateConnecting, ws.StateDisconnected)
		return fmt.Errorf("connect websocket: %w", err)
	}

	c.mu.Lock()
	if c.state.Load() == ws.StateClosed {
		c.mu.Unlock()
		_ = socket.NetConn().Close()
		return core.ErrClientClosed
	}
	c.conn = socket
	connected := c.connectedChan
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		socket.ReadLoop()
	}()
	c.pingOnce.Do(func() {
		c.wg.Add(1)
		go c.pingLoop()
	})
	c.mu.Unlock()

	select {
	case <-connected:
		return nil
	case <-ctx.Done():
		_ = socket.NetConn().Close()
		return ctx.Err()
	case <-c.stopChan:
		_ = socket.NetConn().Close()
		return core.ErrClientClosed
	}
}

func (c *WSClient) pingLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			if err := c.SendPing(); err != nil {
				c.logger.Debug().Err(err).Msg("skip keepalive ping")
			}
		}
	}
}

// Close stops reconnection, closes the connection and then the Messages channel.
func (c *WSClient) Close() error {
	c.closeOnce.Do(func() {
		c.state.Store(ws.StateClosed)
		close(c.stopChan)

		c.mu.Lock()
		if c.conn != nil {
			_ = c.conn.NetConn().Close()
		}
		c.mu.Unlock()

		c.wg.Wait()
		close(c.messages)
	})
	return nil
}

func (c *WSClient) State() ws.ConnState {
	return c.state.Load()
}

func (c *WSClient) IsConnected() bool {
	return c.state.Load() == ws.StateConnected
}

// Messages returns every inbound frame. It is closed by Close.
func (c *WSClient) Messages() <-chan []byte {
	return c.messages
}

func (c *WSClient) WriteMessage(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.conn == nil || c.state.Load() != ws.StateConnected {
		return core.ErrNotConnected
	}

	return c.conn.WriteMessage(gws.OpcodeText, data)
}

func (c *WSClient) SendJSON(v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	return c.WriteMessage(data)
}

func (c *WSClient) SendPing() error {
	if c.config.PingMessage != nil {
		return c.WriteMessage(c.config.PingMessage)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.conn == nil || c.state.Load() != ws.StateConnected {
		return core.ErrNotConnected
	}

	return c.conn.WritePing(nil)
}

func (c *WSClient) attemptReconnect() {
	if !c.state.CompareAndSwap(ws.StateDisconnected, ws.StateReconnecting) {
		return
	}

	for {
		c.mu.Lock()
		attempts := c.reconnectAttempts
		c.reconnectAttempts++
		c.mu.Unlock()

		wait := c.calculateBackoff(attempts)
		c.logger.Info().
			Dur("wait", wait).
			Int("attempt", attempts+1).
			Msg("attempting reconnect")

		select {
		case <-time.After(wait):
		case <-c.stopChan:
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := c.dial(ctx)
		cancel()
		if err == nil {
			c.logger.Info().Msg("reconnected successfully")
			return
		}
		if err == core.ErrClientClosed {
			return
		}

		c.logger.Error().Err(err).
			Int("attempt", attempts+1).
			Msg("reconnect failed")
	}
}

func (c *WSClient) calculateBackoff(attempts int) time.Duration {
	return min(c.config.ReconnectBaseWait*time.Duration(1<<uint(min(attempts, 16))), c.config.ReconnectMaxWait)
}
