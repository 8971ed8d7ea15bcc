package stream

import "bytes"

// protocol captures the framing differences between the spot and futures gateways.
type protocol struct {
	name string
	// opKey names the verb field: "op" on spot, "action" on futures.
	opKey    string
	loginOp  string
	loginDev string
	ping     []byte
	inflate  bool
}

var (
	spotProtocol = protocol{
		name:    "spot",
		opKey:   "op",
		loginOp: "login",
		ping:    []byte("ping"),
		inflate: true,
	}

	// Futures keepalive uses protocol ping frames.
	futuresProtocol = protocol{
		name:     "futures",
		opKey:    "action",
		loginOp:  "access",
		loginDev: "web",
	}
)

func (p protocol) frame(op string, args []string) map[string]any {
	return map[string]any{p.opKey: op, "args": args}
}

func (p protocol) login(key, timestamp, sign string) map[string]any {
	args := []string{key, timestamp, sign}
	if p.loginDev != "" {
		args = append(args, p.loginDev)
	}
	return p.frame(p.loginOp, args)
}

func (p protocol) isKeepalive(data []byte) bool {
	return p.ping != nil && bytes.Equal(bytes.TrimSpace(data), []byte("pong"))
}
