package bitmart

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HbarSuite/bitmart-go-sdk-api/pkg/core"
)

func quietConfig(baseURL string, creds *core.Credentials) *core.Config {
	return core.DefaultConfig().
		WithBaseURL(baseURL).
		WithCredentials(creds).
		WithLogger(zerolog.Nop())
}

func TestNewSpotClient_Defaults(t *testing.T) {
	client, err := NewSpotClient(nil)

	require.NoError(t, err)
	assert.Equal(t, core.SpotBaseURL, client.BaseURL())
	assert.NotNil(t, client.System)
	assert.NotNil(t, client.Market)
	assert.NotNil(t, client.Funding)
	assert.NotNil(t, client.Trade)
	assert.NotNil(t, client.Margin)
	assert.NotNil(t, client.SubAccount)
}

func TestNewFuturesClient_Defaults(t *testing.T) {
	client, err := NewFuturesClient(core.DefaultConfig().WithLogger(zerolog.Nop()))

	require.NoError(t, err)
	assert.Equal(t, core.FuturesBaseURL, client.BaseURL())
	assert.NotNil(t, client.Market)
	assert.NotNil(t, client.Account)
	assert.NotNil(t, client.Trade)
	assert.NotNil(t, client.SubAccount)
}

func TestNewSpotClient_InvalidConfig(t *testing.T) {
	client, err := NewSpotClient(core.DefaultConfig().WithBaseURL("::not-a-url"))

	assert.Nil(t, client)
	assert.Error(t, err)
}

func TestSpotClient_MissingSecretIssuesNoNetworkCall(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"code":1000}`))
	}))
	defer server.Close()

	client, err := NewSpotClient(quietConfig(server.URL, &core.Credentials{APIKey: "key", APISecret: "", APIMemo: "memo"}))
	require.NoError(t, err)

	resp, err := client.Trade.CancelOrder(context.Background(), "BTC_USDT", core.Params{"order_id": "1"})

	assert.Nil(t, resp)
	var credErr *core.MissingCredentialError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, core.FieldAPISecret, credErr.Field)
	assert.Equal(t, "bitmart: your apiSecret is empty", err.Error())
	assert.Equal(t, core.ClassLocal, core.Classify(err))
	assert.Equal(t, int32(0), hits.Load())
}

func TestSpotClient_PublicCallWithOnlyBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spot/quotation/v3/ticker", r.URL.Path)
		assert.Equal(t, "symbol=BTC_USDT", r.URL.RawQuery)
		assert.Empty(t, r.Header.Get(core.HeaderKey))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":1000,"trace":"t","message":"success","data":{"symbol":"BTC_USDT","last":"30000.00"}}`))
	}))
	defer server.Close()

	client, err := NewSpotClient(quietConfig(server.URL, nil))
	require.NoError(t, err)

	resp, err := client.Market.Ticker(context.Background(), "BTC_USDT")
	require.NoError(t, err)

	var ticker struct {
		Symbol string `json:"symbol"`
		Last   string `json:"last"`
	}
	require.NoError(t, resp.UnmarshalData(&ticker))
	assert.Equal(t, "BTC_USDT", ticker.Symbol)
	assert.Equal(t, "30000.00", ticker.Last)
}

func TestSpotClient_GetWithOnlyEmptyOptionsHasNoQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spot/v1/margin/isolated/account", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`{"code":1000}`))
	}))
	defer server.Close()

	client, err := NewSpotClient(quietConfig(server.URL, &core.Credentials{APIKey: "key"}))
	require.NoError(t, err)

	_, err = client.Margin.Account(context.Background(), core.Params{"symbol": "", "other": nil, "blank": "  "})

	assert.NoError(t, err)
}

func TestFuturesClient_SignatureMatchesBody(t *testing.T) {
	creds := &core.Credentials{APIKey: "key", APISecret: "secret", APIMemo: "memo"}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, `{"order_id":"220609666322019","symbol":"BTCUSDT"}`, string(body))

		mac := hmac.New(sha256.New, []byte("secret"))
		mac.Write([]byte(r.Header.Get(core.HeaderTimestamp) + "#memo#" + string(body)))
		assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), r.Header.Get(core.HeaderSign))
		assert.Equal(t, "key", r.Header.Get(core.HeaderKey))

		w.Write([]byte(`{"code":1000,"message":"Ok","data":{}}`))
	}))
	defer server.Close()

	client, err := NewFuturesClient(quietConfig(server.URL, creds))
	require.NoError(t, err)

	_, err = client.Trade.CancelOrder(context.Background(), "BTCUSDT", "220609666322019")

	assert.NoError(t, err)
}

func TestFuturesClient_ServerErrorKeepsBody(t *testing.T) {
	payload := `{"code":40011,"message":"Invalid order size","trace":"b7a1"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client, err := NewFuturesClient(quietConfig(server.URL, &core.Credentials{APIKey: "k", APISecret: "s", APIMemo: "m"}))
	require.NoError(t, err)

	_, err = client.Trade.SubmitOrder(context.Background(), core.Params{"symbol": "BTCUSDT"})

	var srvErr *core.ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusBadRequest, srvErr.StatusCode)
	assert.Equal(t, payload, string(srvErr.Body))
	assert.Equal(t, core.ClassResponse, core.Classify(err))
}

func TestFuturesClient_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewFuturesClient(quietConfig(url, nil))
	require.NoError(t, err)

	_, err = client.Market.Depth(context.Background(), "BTCUSDT")

	assert.Equal(t, core.ClassRequest, core.Classify(err))
}

func TestSpotClient_GenericRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spot/v1/ticker_detail", r.URL.Path)
		assert.Equal(t, "symbol=BTC_USDT", r.URL.RawQuery)
		w.Write([]byte(`{"code":1000}`))
	}))
	defer server.Close()

	client, err := NewSpotClient(quietConfig(server.URL, nil))
	require.NoError(t, err)

	_, err = client.Request(context.Background(), core.AuthNone, http.MethodGet, "/spot/v1/ticker_detail", core.Params{"symbol": "BTC_USDT"})

	assert.NoError(t, err)
}
