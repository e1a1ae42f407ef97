// Package server implements the websocket match server for online play.
// Clients connect to /ws, join the matchmaking queue, and get paired with
// an opponent. The server keeps an authoritative board per participant and
// echoes confirmed removals and freshly fed rows back to each client.
package server

import (
	"encoding/json"
	"fmt"
)

// Wire messages are JSON objects discriminated by a "type" field,
// e.g. {"type":"Remove","x":3,"y":4}.
const (
	typeJoin   = "Join"
	typeLeave  = "Leave"
	typeRemove = "Remove"
	typeReady  = "Ready"
	typeFeed   = "Feed"
)

// Request is a client-to-server message.
type Request interface {
	isRequest()
}

// JoinRequest enters the matchmaking queue.
type JoinRequest struct{}

// LeaveRequest exits the matchmaking queue.
type LeaveRequest struct{}

// RemoveRequest asks to detonate the cell at board position (x, y).
type RemoveRequest struct {
	X int
	Y int
}

func (JoinRequest) isRequest()   {}
func (LeaveRequest) isRequest()  {}
func (RemoveRequest) isRequest() {}

// Response is a server-to-client message.
type Response interface {
	isResponse()
}

// ReadyResponse signals that an opponent was found and the match started.
type ReadyResponse struct{}

// RemoveResponse confirms a removal at board position (x, y).
type RemoveResponse struct {
	X int
	Y int
}

// FeedResponse carries a freshly fed bottom row. Row[i] is true where
// column i received a bomb.
type FeedResponse struct {
	Row []bool
}

func (ReadyResponse) isResponse()  {}
func (RemoveResponse) isResponse() {}
func (FeedResponse) isResponse()   {}

type requestEnvelope struct {
	Type string `json:"type"`
	X    int    `json:"x,omitempty"`
	Y    int    `json:"y,omitempty"`
}

type responseEnvelope struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Row  []bool `json:"row"`
}

// DecodeRequest parses a client message.
func DecodeRequest(data []byte) (Request, error) {
	var env requestEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("server: malformed request: %w", err)
	}
	switch env.Type {
	case typeJoin:
		return JoinRequest{}, nil
	case typeLeave:
		return LeaveRequest{}, nil
	case typeRemove:
		return RemoveRequest{X: env.X, Y: env.Y}, nil
	default:
		return nil, fmt.Errorf("server: unknown request type %q", env.Type)
	}
}

// EncodeRequest serializes a client message.
func EncodeRequest(req Request) ([]byte, error) {
	switch r := req.(type) {
	case JoinRequest:
		return json.Marshal(struct {
			Type string `json:"type"`
		}{typeJoin})
	case LeaveRequest:
		return json.Marshal(struct {
			Type string `json:"type"`
		}{typeLeave})
	case RemoveRequest:
		return json.Marshal(struct {
			Type string `json:"type"`
			X    int    `json:"x"`
			Y    int    `json:"y"`
		}{typeRemove, r.X, r.Y})
	default:
		return nil, fmt.Errorf("server: unknown request %T", req)
	}
}

// DecodeResponse parses a server message.
func DecodeResponse(data []byte) (Response, error) {
	var env responseEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("server: malformed response: %w", err)
	}
	switch env.Type {
	case typeReady:
		return ReadyResponse{}, nil
	case typeRemove:
		return RemoveResponse{X: env.X, Y: env.Y}, nil
	case typeFeed:
		return FeedResponse{Row: env.Row}, nil
	default:
		return nil, fmt.Errorf("server: unknown response type %q", env.Type)
	}
}

// EncodeResponse serializes a server message.
func EncodeResponse(resp Response) ([]byte, error) {
	switch r := resp.(type) {
	case ReadyResponse:
		return json.Marshal(struct {
			Type string `json:"type"`
		}{typeReady})
	case RemoveResponse:
		return json.Marshal(struct {
			Type string `json:"type"`
			X    int    `json:"x"`
			Y    int    `json:"y"`
		}{typeRemove, r.X, r.Y})
	case FeedResponse:
		return json.Marshal(struct {
			Type string `json:"type"`
			Row  []bool `json:"row"`
		}{typeFeed, r.Row})
	default:
		return nil, fmt.Errorf("server: unknown response %T", resp)
	}
}
