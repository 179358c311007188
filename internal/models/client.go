package models

import (
	"github.com/gorilla/websocket"
)

// Client is a websocket subscriber receiving market status updates.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan *CombinedMarketStatus
}

func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		ID:   id,
		Conn: conn,
		Send: make(chan *CombinedMarketStatus, 16),
	}
}

func (c *Client) Close() {
	close(c.Send)
}
