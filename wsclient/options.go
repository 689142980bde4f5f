package wsclient

import (
	"log/slog"
	"time"
)

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

type clientConfig struct {
	logger        *slog.Logger
	invokeTimeout time.Duration
	onSend        func(Message)
	onReceive     func(Message)
}

// WithLogger sets a structured logger for the client.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithInvokeTimeout overrides how long Invoke waits for a correlated
// response. The default is DefaultInvokeTimeout.
func WithInvokeTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.invokeTimeout = d
	}
}

// WithOnSend sets a callback invoked with each outbound command document
// before it is written.
func WithOnSend(fn func(Message)) ClientOption {
	return func(c *clientConfig) {
		c.onSend = fn
	}
}

// WithOnReceive sets a callback invoked with each decoded inbound message
// before it is buffered.
func WithOnReceive(fn func(Message)) ClientOption {
	return func(c *clientConfig) {
		c.onReceive = fn
	}
}
