package wsclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultInvokeTimeout bounds how long Invoke waits for a correlated
// response before giving up and returning an empty document.
const DefaultInvokeTimeout = 5 * time.Second

// Client is a correlating client over a single persistent connection.
// It is safe for concurrent use by multiple goroutines.
type Client struct {
	transport Transport
	cfg       clientConfig
	id        string
	inbox     *inbox
	ctx       context.Context
	cancel    context.CancelFunc

	// readerDone is closed when the background reader has fully exited.
	readerDone chan struct{}

	mu     sync.Mutex
	closed bool
}

// Connect establishes a connection and handshake to the given WebSocket URL
// and starts the background reader. Any failure during setup is fatal: no
// partially-usable client is ever returned.
func Connect(ctx context.Context, url string, opts ...ClientOption) (*Client, error) {
	transport, err := Dial(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	return NewWithTransport(ctx, transport, opts...), nil
}

// NewWithTransport creates a Client over a custom transport.
// This is useful for testing or custom transport implementations.
func NewWithTransport(ctx context.Context, transport Transport, opts ...ClientOption) *Client {
	ctx, cancel := context.WithCancel(ctx)

	cfg := clientConfig{invokeTimeout: DefaultInvokeTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Client{
		transport:  transport,
		cfg:        cfg,
		id:         uuid.New().String(),
		inbox:      newInbox(),
		ctx:        ctx,
		cancel:     cancel,
		readerDone: make(chan struct{}),
	}

	go c.readLoop()

	return c
}

// ID returns the client's instance identifier, used in log records.
func (c *Client) ID() string {
	return c.id
}

// Invoke sends a command with the given parameters and waits for the first
// buffered response, normalized per the protocol's conventions:
//
//   - the "type" marker is stripped
//   - a response with status "error" is repackaged as
//     {"status": "error", "result": <response minus type>, "error": ...}
//   - otherwise a top-level "status" is folded into the nested "result"
//
// A timeout is a routine outcome, not a fault: Invoke returns an empty
// Message and leaves all other buffered traffic untouched. Callers detect it
// by the absence of expected fields.
func (c *Client) Invoke(cmd string, params Message) Message {
	doc := params.clone()
	doc[fieldCommand] = cmd

	data, err := json.Marshal(doc)
	if err != nil {
		if c.cfg.logger != nil {
			c.cfg.logger.Error("marshal command",
				slog.String("client_id", c.id),
				slog.String("command", cmd),
				slog.Any("error", err),
			)
		}
		return Message{}
	}

	if c.cfg.onSend != nil {
		c.cfg.onSend(doc)
	}

	if c.cfg.logger != nil {
		c.cfg.logger.Debug("sending command",
			slog.String("client_id", c.id),
			slog.String("command", cmd),
		)
	}

	if err := c.transport.WriteFrame(c.ctx, data); err != nil {
		if c.cfg.logger != nil {
			c.cfg.logger.Error("write command",
				slog.String("client_id", c.id),
				slog.String("command", cmd),
				slog.Any("error", err),
			)
		}
		return Message{}
	}

	resp, ok := c.FindMsg(c.cfg.invokeTimeout, Message.IsResponse)
	if !ok {
		return Message{}
	}

	return normalizeResponse(resp)
}

// GetMsg removes and returns the oldest buffered message, waiting up to
// timeout for one to arrive. Used to drain unsolicited notifications. Note
// that a prior predicate claim may have removed an older message, so arrival
// order is only preserved among messages nothing else claimed.
func (c *Client) GetMsg(timeout time.Duration) (Message, bool) {
	return c.inbox.claimAny(timeout)
}

// FindMsg removes and returns the first buffered message matching pred,
// waiting up to timeout and re-checking on every arrival. This is the
// mechanism Invoke is built on, exposed so callers can correlate on
// arbitrary criteria.
func (c *Client) FindMsg(timeout time.Duration, pred func(Message) bool) (Message, bool) {
	return c.inbox.claimMatching(timeout, pred)
}

// Close performs the orderly shutdown: close the transport, stop the
// background reader, then block until it has fully exited so no read
// completion can touch a torn-down client. Idempotent.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	err := c.transport.Close()
	c.cancel()
	<-c.readerDone

	return err
}

// readLoop keeps exactly one read in flight for the lifetime of the
// connection, decoding each completed frame into the inbox. It terminates
// on the first read error; pending and future claims then degrade to their
// timeout path rather than raising.
func (c *Client) readLoop() {
	defer close(c.readerDone)

	for {
		data, err := c.transport.ReadFrame(c.ctx)
		if err != nil {
			return
		}

		// Best-effort parse: a corrupt frame yields an empty document
		// rather than killing the connection.
		var m Message
		if err := json.Unmarshal(data, &m); err != nil || m == nil {
			m = Message{}
		}

		if c.cfg.onReceive != nil {
			c.cfg.onReceive(m)
		}

		if c.cfg.logger != nil {
			c.cfg.logger.Debug("received message",
				slog.String("client_id", c.id),
				slog.String("type", m.Type()),
			)
		}

		c.inbox.push(m)
	}
}

// normalizeResponse rewrites a raw response document into the shape callers
// consume. m is owned by the caller at this point and may be mutated.
func normalizeResponse(m Message) Message {
	delete(m, fieldType)

	if m.Status() == statusError {
		ret := Message{
			fieldStatus: statusError,
			fieldResult: m,
		}
		if ev, ok := m[fieldError]; ok {
			ret[fieldError] = ev
		}
		return ret
	}

	if status, ok := m[fieldStatus]; ok {
		if result, ok := m[fieldResult].(map[string]any); ok {
			result[fieldStatus] = status
		}
		delete(m, fieldStatus)
	}

	return m
}
