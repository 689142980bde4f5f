package wsclient

import (
	"sync"
	"time"
)

// inbox buffers decoded inbound messages between the background reader and
// consumers. New arrivals are inserted at the front; a plain drain removes
// from the back (oldest still present) while a predicate claim scans
// front-to-back and may remove from any position. The sequence is therefore
// not strictly FIFO once matched and unmatched traffic interleave.
type inbox struct {
	mu   sync.Mutex
	msgs []Message // index 0 is the front (most recent arrival)

	// arrival is closed and replaced on every push; waiters grab the
	// current channel under the lock and block on it outside the lock.
	arrival chan struct{}
}

func newInbox() *inbox {
	return &inbox{arrival: make(chan struct{})}
}

// push inserts m at the front and wakes every waiter.
func (b *inbox) push(m Message) {
	b.mu.Lock()
	b.msgs = append(b.msgs, nil)
	copy(b.msgs[1:], b.msgs)
	b.msgs[0] = m
	close(b.arrival)
	b.arrival = make(chan struct{})
	b.mu.Unlock()
}

// claimAny removes and returns the message at the back, waiting up to
// timeout for one to arrive. Returns false if the timeout elapses first.
func (b *inbox) claimAny(timeout time.Duration) (Message, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		b.mu.Lock()
		if n := len(b.msgs); n > 0 {
			m := b.msgs[n-1]
			b.msgs[n-1] = nil
			b.msgs = b.msgs[:n-1]
			b.mu.Unlock()
			return m, true
		}
		arrival := b.arrival
		b.mu.Unlock()

		select {
		case <-arrival:
		case <-timer.C:
			return nil, false
		}
	}
}

// claimMatching removes and returns the first message, scanning
// front-to-back, for which pred is true, waiting up to timeout and
// re-evaluating on every arrival. Returns false on timeout with the
// buffered sequence unchanged.
func (b *inbox) claimMatching(timeout time.Duration, pred func(Message) bool) (Message, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		b.mu.Lock()
		for i, m := range b.msgs {
			if pred(m) {
				b.msgs = append(b.msgs[:i], b.msgs[i+1:]...)
				b.mu.Unlock()
				return m, true
			}
		}
		arrival := b.arrival
		b.mu.Unlock()

		select {
		case <-arrival:
		case <-timer.C:
			return nil, false
		}
	}
}

// len reports the number of buffered messages.
func (b *inbox) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.msgs)
}
