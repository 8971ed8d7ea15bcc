package core

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
)

// Header names used by the BitMart REST API.
const (
	HeaderKey       = "X-BM-KEY"
	HeaderSign      = "X-BM-SIGN"
	HeaderTimestamp = "X-BM-TIMESTAMP"
)

// Builder turns request descriptors into wire-ready requests.
// It only reads its credentials and is safe for concurrent use.
type Builder struct {
	creds     Credentials
	userAgent string
	now       func() time.Time
}

// NewBuilder creates a Builder for the given credentials.
func NewBuilder(creds Credentials, userAgent string) *Builder {
	if userAgent == "" {
		userAgent = "bitmart-go-sdk-api/" + Version
	}
	return &Builder{
		creds:     creds,
		userAgent: userAgent,
		now:       time.Now,
	}
}

// NewBuilderFromConfig creates a Builder from a client configuration.
func NewBuilderFromConfig(config *Config) *Builder {
	return NewBuilder(config.credentials(), config.UserAgent)
}

// SetClock replaces the time source used for X-BM-TIMESTAMP.
func (b *Builder) SetClock(now func() time.Time) {
	b.now = now
}

// Build normalizes, serializes and, depending on the auth level, signs req.
//
// GET parameters go to the query string and the signed payload is empty. For every
// other method the parameters are JSON-encoded once and those bytes are both
// signed and sent.
func (b *Builder) Build(req *Request) (*Prepared, error) {
	if err := b.Check(req); err != nil {
		return nil, err
	}

	params := RemoveEmptyValue(req.Params)

	prepared := &Prepared{
		Method: req.Method,
		Path:   req.Path,
		Headers: map[string]string{
			"Content-Type": "application/json",
			"User-Agent":   b.userAgent,
		},
	}

	signBody := ""
	if req.IsGet() {
		if query := BuildQueryString(params); query != "" {
			prepared.Path = req.Path + "?" + query
		}
	} else {
		body, err := sonic.ConfigStd.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		prepared.Body = body
		signBody = string(body)
	}

	switch req.Auth {
	case AuthKeyed:
		prepared.Headers[HeaderKey] = b.creds.APIKey
	case AuthSigned:
		timestamp := strconv.FormatInt(b.now().UnixMilli(), 10)
		sign, err := CreateSign(timestamp, signBody, b.creds.APISecret, b.creds.APIMemo)
		if err != nil {
			return nil, err
		}
		prepared.Timestamp = timestamp
		prepared.Headers[HeaderKey] = b.creds.APIKey
		prepared.Headers[HeaderTimestamp] = timestamp
		prepared.Headers[HeaderSign] = sign
	}

	return prepared, nil
}

// Check returns the credential error Build would fail with for req, without
// stamping or signing anything. SIGNED checks secret, then memo, then key.
func (b *Builder) Check(req *Request) error {
	switch req.Auth {
	case AuthNone:
		return nil
	case AuthKeyed:
	case AuthSigned:
		if IsEmptyValue(b.creds.APISecret) {
			return &MissingCredentialError{Field: FieldAPISecret}
		}
		if IsEmptyValue(b.creds.APIMemo) {
			return &MissingCredentialError{Field: FieldAPIMemo}
		}
	default:
		return fmt.Errorf("unknown auth level: %d", req.Auth)
	}

	if IsEmptyValue(b.creds.APIKey) {
		return &MissingCredentialError{Field: FieldAPIKey}
	}
	return nil
}
