// Package ws holds the connection lifecycle shared by the websocket transport
// and the stream clients built on it.
package ws

import "sync/atomic"

// ConnState is the lifecycle position of one websocket connection.
type ConnState int32

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
	// StateReconnecting is held while the backoff loop redials after a drop.
	StateReconnecting
	// StateClosed is terminal. A closed connection is never redialled.
	StateClosed
)

var stateNames = [...]string{
	StateDisconnected: "disconnected",
	StateConnecting:   "connecting",
	StateConnected:    "connected",
	StateReconnecting: "reconnecting",
	StateClosed:       "closed",
}

func (s ConnState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// State is a ConnState safe for concurrent use.
type State struct {
	state atomic.Int32
}

func (s *State) Load() ConnState {
	return ConnState(s.state.Load())
}

func (s *State) Store(state ConnState) {
	s.state.Store(int32(state))
}

// CompareAndSwap moves the state from old to new and reports whether it did.
func (s *State) CompareAndSwap(old, new ConnState) bool {
	return s.state.CompareAndSwap(int32(old), int32(new))
}
