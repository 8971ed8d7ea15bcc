package core

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// WebSocketSignBody is the fixed payload signed when logging in to a private websocket.
const WebSocketSignBody = "bitmart.WebSocket"

// CreateSign returns the hex HMAC-SHA256 of "timestamp#memo#body" keyed by secret.
// body must be the exact bytes that go over the wire, or "" for GET requests.
func CreateSign(timestamp, body, secret, memo string) (string, error) {
	if IsEmptyValue(secret) {
		return "", &MissingCredentialError{Field: FieldAPISecret}
	}
	if IsEmptyValue(memo) {
		return "", &MissingCredentialError{Field: FieldAPIMemo}
	}

	return signHMAC(timestamp+"#"+memo+"#"+body, secret), nil
}

func signHMAC(message, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(message))
	return hex.EncodeToString(h.Sum(nil))
}
