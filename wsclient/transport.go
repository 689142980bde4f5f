package wsclient

import (
	"context"
	"net/http"
	"sync"

	"github.com/coder/websocket"
)

// Transport provides whole-frame access to the duplex connection.
// Implementations must be safe for concurrent use, though at most one
// ReadFrame is ever in flight (the background reader owns the read side).
type Transport interface {
	// WriteFrame sends payload as a single complete text frame.
	WriteFrame(ctx context.Context, payload []byte) error

	// ReadFrame blocks until a complete text frame arrives or the
	// connection closes or errors.
	ReadFrame(ctx context.Context) ([]byte, error)

	// Close sends the close control frame and closes the underlying
	// socket. Idempotent.
	Close() error
}

// DialOptions configures the WebSocket connection.
type DialOptions struct {
	// HTTPHeader specifies additional HTTP headers to send during handshake.
	HTTPHeader http.Header

	// HTTPClient is the HTTP client used for the handshake.
	// If nil, http.DefaultClient is used.
	HTTPClient *http.Client
}

// Dial opens the connection and performs the WebSocket upgrade handshake,
// returning a Transport. The URL should be of the form "ws://host:port/".
func Dial(ctx context.Context, url string, opts *DialOptions) (Transport, error) {
	dialOpts := &websocket.DialOptions{}
	if opts != nil {
		dialOpts.HTTPHeader = opts.HTTPHeader
		dialOpts.HTTPClient = opts.HTTPClient
	}

	conn, _, err := websocket.Dial(ctx, url, dialOpts)
	if err != nil {
		return nil, &ConnectionError{Op: "dial", URL: url, Err: err}
	}

	// Control responses can be large (full ledger dumps and the like).
	conn.SetReadLimit(32 * 1024 * 1024) // 32MB

	return &wsTransport{conn: conn}, nil
}

// wsTransport implements Transport over WebSocket.
type wsTransport struct {
	conn *websocket.Conn

	// Serializes writes so at most one frame is outstanding.
	mu     sync.Mutex
	closed bool
}

func (t *wsTransport) WriteFrame(ctx context.Context, payload []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}

	if err := t.conn.Write(ctx, websocket.MessageText, payload); err != nil {
		return &ConnectionError{Op: "write", Err: err}
	}

	return nil
}

func (t *wsTransport) ReadFrame(ctx context.Context) ([]byte, error) {
	_, data, err := t.conn.Read(ctx)
	if err != nil {
		t.mu.Lock()
		closed := t.closed
		t.mu.Unlock()
		if closed {
			return nil, ErrClosed
		}
		return nil, &ConnectionError{Op: "read", Err: err}
	}

	return data, nil
}

func (t *wsTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	return t.conn.Close(websocket.StatusNormalClosure, "")
}
