package core

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.UnixMilli(1589793796145)

func newTestBuilder(creds Credentials) *Builder {
	b := NewBuilder(creds, "test-agent")
	b.SetClock(func() time.Time { return fixedTime })
	return b
}

func fullCredentials() Credentials {
	return Credentials{APIKey: "key", APISecret: "secret", APIMemo: "test001"}
}

func TestBuilder_GetNoneWithOnlyEmptyParams(t *testing.T) {
	b := newTestBuilder(Credentials{})
	req := NewRequest(AuthNone, http.MethodGet, "/spot/v1/symbols").
		SetParam("symbol", "").
		SetParam("limit", nil)

	prepared, err := b.Build(req)

	require.NoError(t, err)
	assert.Equal(t, "/spot/v1/symbols", prepared.Path)
	assert.Nil(t, prepared.Body)
	assert.NotContains(t, prepared.Headers, HeaderKey)
	assert.NotContains(t, prepared.Headers, HeaderSign)
	assert.Equal(t, "application/json", prepared.Headers["Content-Type"])
	assert.Equal(t, "test-agent", prepared.Headers["User-Agent"])
}

func TestBuilder_GetKeyed(t *testing.T) {
	b := newTestBuilder(Credentials{APIKey: "key"})
	req := NewRequest(AuthKeyed, http.MethodGet, "/contract/private/order").SetParams(Params{
		"symbol":   "BTCUSDT",
		"order_id": "220609666322019",
	})

	prepared, err := b.Build(req)

	require.NoError(t, err)
	assert.Equal(t, "/contract/private/order?order_id=220609666322019&symbol=BTCUSDT", prepared.Path)
	assert.Equal(t, "key", prepared.Headers[HeaderKey])
	assert.NotContains(t, prepared.Headers, HeaderSign)
	assert.NotContains(t, prepared.Headers, HeaderTimestamp)
}

func TestBuilder_KeyedMissingKey(t *testing.T) {
	b := newTestBuilder(Credentials{APISecret: "secret", APIMemo: "memo"})

	prepared, err := b.Build(NewRequest(AuthKeyed, http.MethodGet, "/account/v1/wallet"))

	assert.Nil(t, prepared)
	var credErr *MissingCredentialError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, FieldAPIKey, credErr.Field)
}

func TestBuilder_PostSigned(t *testing.T) {
	b := newTestBuilder(fullCredentials())
	req := NewRequest(AuthSigned, http.MethodPost, "/spot/v3/cancel_order").SetParams(Params{
		"symbol":          "BTC_USDT",
		"order_id":        "150778619634119110",
		"client_order_id": "",
	})

	prepared, err := b.Build(req)

	require.NoError(t, err)
	assert.Equal(t, "/spot/v3/cancel_order", prepared.Path)
	assert.JSONEq(t, `{"order_id":"150778619634119110","symbol":"BTC_USDT"}`, string(prepared.Body))
	assert.Equal(t, "1589793796145", prepared.Timestamp)
	assert.Equal(t, "1589793796145", prepared.Headers[HeaderTimestamp])
	assert.Equal(t, "key", prepared.Headers[HeaderKey])

	expected, err := CreateSign(prepared.Headers[HeaderTimestamp], string(prepared.Body), "secret", "test001")
	require.NoError(t, err)
	assert.Equal(t, expected, prepared.Headers[HeaderSign])
}

func TestBuilder_PostEmptyParamsSendsEmptyObject(t *testing.T) {
	b := newTestBuilder(fullCredentials())

	prepared, err := b.Build(NewRequest(AuthSigned, http.MethodPost, "/spot/v4/query/open-orders"))

	require.NoError(t, err)
	assert.Equal(t, "{}", string(prepared.Body))
}

func TestBuilder_GetSignedSignsEmptyBody(t *testing.T) {
	b := newTestBuilder(fullCredentials())
	req := NewRequest(AuthSigned, http.MethodGet, "/spot/v1/margin/isolated/account").
		SetParam("symbol", "BTC_USDT")

	prepared, err := b.Build(req)

	require.NoError(t, err)
	assert.Equal(t, "/spot/v1/margin/isolated/account?symbol=BTC_USDT", prepared.Path)
	assert.Nil(t, prepared.Body)
	assert.Equal(t, "7932d479e7bef20f9b98d09051bac9701629888dcadee24d450fbb9ba3ca7e4f", prepared.Headers[HeaderSign])
}

func TestBuilder_SignedMissingCredentials(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		field string
	}{
		{"missing_secret", Credentials{APIKey: "key", APIMemo: "memo"}, FieldAPISecret},
		{"missing_memo", Credentials{APIKey: "key", APISecret: "secret"}, FieldAPIMemo},
		{"missing_key", Credentials{APISecret: "secret", APIMemo: "memo"}, FieldAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(tt.creds)

			_, err := b.Build(NewRequest(AuthSigned, http.MethodPost, "/contract/private/cancel-order"))

			var credErr *MissingCredentialError
			require.ErrorAs(t, err, &credErr)
			assert.Equal(t, tt.field, credErr.Field)
			assert.Equal(t, ClassLocal, Classify(err))
		})
	}
}

func TestBuilder_DoesNotMutateRequest(t *testing.T) {
	b := newTestBuilder(fullCredentials())
	req := NewRequest(AuthSigned, http.MethodPost, "/spot/v2/submit_order").SetParams(Params{
		"symbol": "BTC_USDT",
		"price":  "",
	})

	_, err := b.Build(req)

	require.NoError(t, err)
	assert.Contains(t, req.Params, "price")
}

func TestBuilder_UnknownAuthLevel(t *testing.T) {
	b := newTestBuilder(fullCredentials())

	_, err := b.Build(NewRequest(AuthLevel(42), http.MethodGet, "/system/time"))

	assert.Error(t, err)
}

func TestBuilder_CheckMatchesBuild(t *testing.T) {
	tests := []struct {
		name  string
		auth  AuthLevel
		creds Credentials
		field string
	}{
		{"none_without_credentials", AuthNone, Credentials{}, ""},
		{"keyed_ok", AuthKeyed, Credentials{APIKey: "key"}, ""},
		{"keyed_missing_key", AuthKeyed, Credentials{APISecret: "secret"}, FieldAPIKey},
		{"signed_ok", AuthSigned, fullCredentials(), ""},
		{"signed_missing_secret", AuthSigned, Credentials{APIMemo: "memo"}, FieldAPISecret},
		{"signed_missing_memo", AuthSigned, Credentials{APIKey: "key", APISecret: "secret"}, FieldAPIMemo},
		{"signed_missing_key", AuthSigned, Credentials{APISecret: "secret", APIMemo: "memo"}, FieldAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stamped bool
			b := NewBuilder(tt.creds, "test-agent")
			b.SetClock(func() time.Time {
				stamped = true
				return fixedTime
			})
			req := NewRequest(tt.auth, http.MethodPost, "/spot/v4/cancel_all")

			checkErr := b.Check(req)
			assert.False(t, stamped, "Check must not read the clock")

			_, buildErr := b.Build(req)
			if tt.field == "" {
				assert.NoError(t, checkErr)
				assert.NoError(t, buildErr)
				return
			}

			var credErr *MissingCredentialError
			require.ErrorAs(t, checkErr, &credErr)
			assert.Equal(t, tt.field, credErr.Field)
			assert.Equal(t, checkErr.Error(), buildErr.Error())
		})
	}
}
