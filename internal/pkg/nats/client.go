package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Client wraps a NATS connection for publishing collaborator events.
type Client struct {
	conn *nats.Conn
}

// NewClient connects to the NATS server.
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// GetConn returns the underlying NATS connection.
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// Publish sends raw bytes to the specified subject.
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishJSON marshals a message and sends it to the specified subject.
func (c *Client) PublishJSON(subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return c.Publish(subject, data)
}

// Subscribe subscribes to a subject and returns the subscription.
func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// Close closes the NATS connection.
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
