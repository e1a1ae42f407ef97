package server

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// Client is a minimal protocol client for the match server. It backs the
// match server tests and is the building block for online client UIs.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to a match server websocket endpoint (ws://host:port/ws).
func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("server: cannot dial %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Join enters the matchmaking queue.
func (c *Client) Join() error {
	return c.send(JoinRequest{})
}

// Leave exits the matchmaking queue.
func (c *Client) Leave() error {
	return c.send(LeaveRequest{})
}

// Remove asks the server to detonate the cell at (x, y).
func (c *Client) Remove(x, y int) error {
	return c.send(RemoveRequest{X: x, Y: y})
}

func (c *Client) send(req Request) error {
	data, err := EncodeRequest(req)
	if err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Next blocks until the server sends the next message, up to the given
// timeout. A zero timeout blocks indefinitely.
func (c *Client) Next(timeout time.Duration) (Response, error) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	return DecodeResponse(data)
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
