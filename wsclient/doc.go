// Package wsclient provides an asynchronous JSON-over-WebSocket client for
// driving and observing a server under test.
//
// A single persistent connection carries both responses to commands the
// client issued and unsolicited notifications pushed by the server, in an
// order unrelated to when requests were made. A background goroutine pulls
// frames off the wire and buffers each decoded document in an inbox; callers
// correlate traffic by predicate rather than by request identifier.
//
// # Thread Safety
//
// [Client] is safe for concurrent use by multiple goroutines. [Client.GetMsg]
// and [Client.FindMsg] may be called concurrently with each other and with
// [Client.Invoke]; each buffered message is claimed by exactly one caller.
//
// # Basic Usage
//
//	ctx := context.Background()
//
//	client, err := wsclient.Connect(ctx, "ws://127.0.0.1:6006/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Issue a command and wait for its response.
//	result := client.Invoke("server_info", nil)
//
//	// Drain an unsolicited notification.
//	if msg, ok := client.GetMsg(time.Second); ok {
//	    fmt.Println(msg["type"])
//	}
//
//	// Correlate on arbitrary criteria.
//	msg, ok := client.FindMsg(time.Second, func(m wsclient.Message) bool {
//	    return m.Type() == "ledgerClosed"
//	})
//
// # Observability
//
// Use [WithLogger], [WithOnSend], and [WithOnReceive] to record traffic:
//
//	client, err := wsclient.Connect(ctx, url,
//	    wsclient.WithLogger(slog.Default()),
//	    wsclient.WithOnSend(func(m wsclient.Message) {
//	        fmt.Println("sent", m["command"])
//	    }),
//	)
package wsclient
