package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

func newTestClient(baseURL string) *Client {
	return newTestClientWith(core.DefaultConfig(), baseURL)
}

func newTestClientWith(config *core.Config, baseURL string) *Client {
	client := NewClient(config, zerolog.Nop())
	client.SetBaseURL(baseURL)
	return client
}

func TestNewClient(t *testing.T) {
	client := NewClient(core.DefaultConfig(), zerolog.Nop())

	assert.NotNil(t, client)
}

func TestClient_DoGetKeepsQueryVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/spot/v1/symbols", r.URL.Path)
		assert.Equal(t, "a=1&b=%5B%22x%22%2C%22y%22%5D", r.URL.RawQuery)
		assert.Equal(t, "key", r.Header.Get(core.HeaderKey))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"code":1000,"message":"OK","data":{}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Do(context.Background(), &core.Prepared{
		Method:  http.MethodGet,
		Path:    "/spot/v1/symbols?a=1&b=%5B%22x%22%2C%22y%22%5D",
		Headers: map[string]string{core.HeaderKey: "key"},
	})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.JSONEq(t, `{"code":1000,"message":"OK","data":{}}`, string(resp.Body))
}

func TestClient_DoPostSendsExactBody(t *testing.T) {
	body := []byte(`{"order_id":"1","symbol":"BTC_USDT"}`)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		received, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, body, received)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"code":1000}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Do(context.Background(), &core.Prepared{
		Method:  http.MethodPost,
		Path:    "/spot/v3/cancel_order",
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestClient_DoServerError(t *testing.T) {
	payload := `{"code":30005,"trace":"t-1","message":"Header X-BM-SIGN is wrong","data":{}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Do(context.Background(), &core.Prepared{Method: http.MethodPost, Path: "/x", Body: []byte("{}")})

	assert.Nil(t, resp)
	var srvErr *core.ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusUnauthorized, srvErr.StatusCode)
	assert.Equal(t, 30005, srvErr.Code)
	assert.Equal(t, payload, string(srvErr.Body))
	assert.Equal(t, core.ClassResponse, core.Classify(err))
}

func TestClient_DoSingleAttempt(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Do(context.Background(), &core.Prepared{Method: http.MethodGet, Path: "/system/service"})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestClient_DoTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := newTestClient(url)

	resp, err := client.Do(context.Background(), &core.Prepared{Method: http.MethodGet, Path: "/system/time"})

	assert.Nil(t, resp)
	var trErr *core.TransportError
	require.ErrorAs(t, err, &trErr)
	assert.False(t, trErr.Timeout)
	assert.Equal(t, core.ClassRequest, core.Classify(err))
}

func TestClient_DoTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClientWith(core.DefaultConfig().WithTimeout(20*time.Millisecond), server.URL)

	_, err := client.Do(context.Background(), &core.Prepared{Method: http.MethodGet, Path: "/system/time"})

	assert.True(t, core.IsTimeoutError(err))
	assert.Equal(t, core.ClassRequest, core.Classify(err))
}

func TestClient_DoReturnsBodyUndecoded(t *testing.T) {
	payload := "{\"code\":1000,\n \"data\":{\"price\":\"8600.120000000000000001\"}}"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.Do(context.Background(), &core.Prepared{Method: http.MethodGet, Path: "/spot/v1/ticker"})

	require.NoError(t, err)
	assert.Equal(t, payload, string(resp.Body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}
