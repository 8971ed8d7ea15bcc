// Package stream connects to the BitMart spot and futures websocket gateways.
//
// A Stream sends subscribe, unsubscribe and login frames and relays every
// inbound frame as raw bytes on Messages. Payloads are not decoded.
package stream

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/HbarSuite/bitmart-go-sdk-api/internal/transport"
	"github.com/HbarSuite/bitmart-go-sdk-api/internal/ws"
	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

// Gateway addresses. The spot gateway deflates its public frames.
const (
	SpotPublicURL     = "wss://ws-manager-compress.bitmart.com/api?protocol=1.1"
	SpotPrivateURL    = "wss://ws-manager-compress.bitmart.com/user?protocol=1.1"
	FuturesPublicURL  = "wss://openapi-ws-v2.bitmart.com/api?protocol=1.1"
	FuturesPrivateURL = "wss://openapi-ws-v2.bitmart.com/user?protocol=1.1"
)

type ConnState = ws.ConnState

const (
	StateDisconnected = ws.StateDisconnected
	StateConnecting   = ws.StateConnecting
	StateConnected    = ws.StateConnected
	StateReconnecting = ws.StateReconnecting
	StateClosed       = ws.StateClosed
)

type ReconnectConfig struct {
	Enabled  bool
	BaseWait time.Duration
	MaxWait  time.Duration
}

func DefaultReconnectConfig() ReconnectConfig {
	return ReconnectConfig{
		Enabled:  true,
		BaseWait: 1 * time.Second,
		MaxWait:  30 * time.Second,
	}
}

type Config struct {
	// URL defaults to the public gateway of the stream kind.
	URL string
	// Credentials are only needed by Login.
	Credentials  *core.Credentials
	Reconnect    ReconnectConfig
	PingInterval time.Duration
	PongWait     time.Duration
	BufferSize   int
	Logger       zerolog.Logger
}

func DefaultConfig() Config {
	return Config{
		Reconnect:    DefaultReconnectConfig(),
		PingInterval: 15 * time.Second,
		PongWait:     20 * time.Second,
		BufferSize:   100,
		Logger:       zerolog.Nop(),
	}
}

// Stream is one websocket session against a BitMart gateway.
type Stream struct {
	protocol protocol
	config   Config
	client   *transport.WSClient
	logger   zerolog.Logger
	now      func() time.Time

	mu       sync.Mutex
	channels map[string]struct{}
	loggedIn bool
}

// NewSpotStream returns a stream speaking the spot protocol. Frames are
// inflated and "pong" keepalive replies are dropped.
func NewSpotStream(config Config) *Stream {
	if config.URL == "" {
		config.URL = SpotPublicURL
	}
	return newStream(spotProtocol, config)
}

// NewFuturesStream returns a stream speaking the futures protocol.
func NewFuturesStream(config Config) *Stream {
	if config.URL == "" {
		config.URL = FuturesPublicURL
	}
	return newStream(futuresProtocol, config)
}

func newStream(p protocol, config Config) *Stream {
	logger := config.Logger.With().Str("stream", p.name).Logger()

	client := transport.NewWSClient(transport.WSConfig{
		URL:               config.URL,
		ReconnectEnabled:  config.Reconnect.Enabled,
		ReconnectBaseWait: config.Reconnect.BaseWait,
		ReconnectMaxWait:  config.Reconnect.MaxWait,
		PingInterval:      config.PingInterval,
		PongWait:          config.PongWait,
		PingMessage:       p.ping,
		Inflate:           p.inflate,
		Drop:              p.isKeepalive,
		BufferSize:        config.BufferSize,
	})
	client.SetLogger(logger)

	s := &Stream{
		protocol: p,
		config:   config,
		client:   client,
		logger:   logger,
		now:      time.Now,
		channels: make(map[string]struct{}),
	}
	client.OnReconnect(s.restore)
	return s
}

// SetClock replaces the time source of the login timestamp.
func (s *Stream) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Stream) Connect(ctx context.Context) error {
	return s.client.Connect(ctx)
}

func (s *Stream) Close() error {
	return s.client.Close()
}

func (s *Stream) State() ConnState {
	return s.client.State()
}

// Messages relays every inbound frame. It is closed by Close.
func (s *Stream) Messages() <-chan []byte {
	return s.client.Messages()
}

// Login authenticates the connection for private channels. Missing credentials
// fail before anything is written.
func (s *Stream) Login(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	frame, err := s.loginFrame()
	if err != nil {
		return err
	}
	if err := s.client.SendJSON(frame); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	s.mu.Lock()
	s.loggedIn = true
	s.mu.Unlock()

	s.logger.Debug().Msg("login sent")
	return nil
}

func (s *Stream) loginFrame() (map[string]any, error) {
	var creds core.Credentials
	if s.config.Credentials != nil {
		creds = *s.config.Credentials
	}

	timestamp := strconv.FormatInt(s.now().UnixMilli(), 10)
	sign, err := core.CreateSign(timestamp, core.WebSocketSignBody, creds.APISecret, creds.APIMemo)
	if err != nil {
		return nil, err
	}
	if core.IsEmptyValue(creds.APIKey) {
		return nil, &core.MissingCredentialError{Field: core.FieldAPIKey}
	}

	return s.protocol.login(creds.APIKey, timestamp, sign), nil
}

// Subscribe joins channels such as "spot/ticker:BTC_USDT" or "futures/depth20:BTCUSDT".
// Joined channels are subscribed again after a reconnect.
func (s *Stream) Subscribe(ctx context.Context, channels ...string) error {
	channels, err := s.validChannels(ctx, "subscribe", channels)
	if err != nil {
		return err
	}
	if err := s.client.SendJSON(s.protocol.frame("subscribe", channels)); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	s.mu.Lock()
	for _, ch := range channels {
		s.channels[ch] = struct{}{}
	}
	s.mu.Unlock()

	s.logger.Debug().Strs("channels", channels).Msg("subscribed")
	return nil
}

func (s *Stream) Unsubscribe(ctx context.Context, channels ...string) error {
	channels, err := s.validChannels(ctx, "unsubscribe", channels)
	if err != nil {
		return err
	}
	if err := s.client.SendJSON(s.protocol.frame("unsubscribe", channels)); err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}

	s.mu.Lock()
	for _, ch := range channels {
		delete(s.channels, ch)
	}
	s.mu.Unlock()
	return nil
}

// Channels returns the joined channels in lexical order.
func (s *Stream) Channels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	channels := make([]string, 0, len(s.channels))
	for ch := range s.channels {
		channels = append(channels, ch)
	}
	sort.Strings(channels)
	return channels
}

func (s *Stream) validChannels(ctx context.Context, op string, channels []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	valid := make([]string, 0, len(channels))
	for _, ch := range channels {
		if ch = strings.TrimSpace(ch); ch != "" {
			valid = append(valid, ch)
		}
	}
	if len(valid) == 0 {
		return nil, &core.ValidationError{Endpoint: op, Param: "channels"}
	}
	return valid, nil
}

// restore runs after a reconnect: login first, then the previous channels.
func (s *Stream) restore() {
	s.mu.Lock()
	loggedIn := s.loggedIn
	s.mu.Unlock()

	if loggedIn {
		frame, err := s.loginFrame()
		if err == nil {
			err = s.client.SendJSON(frame)
		}
		if err != nil {
			s.logger.Error().Err(err).Msg("login after reconnect")
			return
		}
	}

	channels := s.Channels()
	if len(channels) == 0 {
		return
	}
	if err := s.client.SendJSON(s.protocol.frame("subscribe", channels)); err != nil {
		s.logger.Error().Err(err).Strs("channels", channels).Msg("resubscribe after reconnect")
		return
	}
	s.logger.Info().Int("channels", len(channels)).Msg("resubscribed")
}
