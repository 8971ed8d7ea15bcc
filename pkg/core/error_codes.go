package core

import "net/http"

// BitMart response codes with a fixed meaning.
// See https://developer-pro.bitmart.com/en/spot/#error-code
const (
	CodeSuccess           = 1000
	CodeNotFound          = 30000
	CodeKeyEmpty          = 30001
	CodeKeyInvalid        = 30002
	CodeAccountFrozen     = 30003
	CodeSignEmpty         = 30004
	CodeSignWrong         = 30005
	CodeTimestampEmpty    = 30006
	CodeTimestampRange    = 30007
	CodeTimestampFormat   = 30008
	CodeIPForbidden       = 30010
	CodeKeyExpired        = 30011
	CodeKeyForbidden      = 30012
	CodeTooManyRequests   = 30013
	CodeServiceUnavail    = 30014
	CodeServiceMaintain   = 30016
	CodeAccountRestricted = 30017
	CodeBodyNotJSON       = 30018
	CodeNoPermission      = 30019
)

func classifyServerError(statusCode, code int) ErrorType {
	switch code {
	case CodeNotFound:
		return ErrorTypeNotFound
	case CodeKeyEmpty, CodeKeyInvalid, CodeAccountFrozen, CodeSignEmpty, CodeSignWrong,
		CodeTimestampEmpty, CodeTimestampRange, CodeTimestampFormat, CodeIPForbidden,
		CodeKeyExpired, CodeKeyForbidden, CodeAccountRestricted, CodeNoPermission:
		return ErrorTypeAuthentication
	case CodeTooManyRequests:
		return ErrorTypeRateLimit
	case CodeServiceUnavail, CodeServiceMaintain:
		return ErrorTypeServerError
	case CodeBodyNotJSON:
		return ErrorTypeBadRequest
	}

	// 5xxxx is the spot/margin trading range, 4xxxx the futures trading range.
	if code >= 40000 && code < 60000 {
		return ErrorTypeInvalidOrder
	}

	switch {
	case statusCode >= http.StatusInternalServerError:
		return ErrorTypeServerError
	case statusCode == http.StatusTooManyRequests:
		return ErrorTypeRateLimit
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return ErrorTypeAuthentication
	case statusCode == http.StatusNotFound:
		return ErrorTypeNotFound
	case statusCode == http.StatusBadRequest:
		return ErrorTypeBadRequest
	default:
		return ErrorTypeUnknown
	}
}
