package core

// AuthLevel describes which credentials an endpoint requires.
type AuthLevel int

// Auth level constants mirror the three classes of BitMart endpoints.
const (
	// AuthNone marks a public endpoint; no credential headers are attached.
	AuthNone AuthLevel = iota
	// AuthKeyed marks an endpoint that only needs the X-BM-KEY header.
	AuthKeyed
	// AuthSigned marks an endpoint that needs the key, a timestamp and an HMAC signature.
	AuthSigned
)

// String returns the string representation of the auth level.
func (a AuthLevel) String() string {
	switch a {
	case AuthNone:
		return "NONE"
	case AuthKeyed:
		return "KEYED"
	case AuthSigned:
		return "SIGNED"
	default:
		return "UNKNOWN"
	}
}
