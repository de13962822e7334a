// Copyright (c) 2026, ZoomStack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync"

// Queue is a FIFO event queue. Producers (platform callbacks, or any
// goroutine) post events with [Queue.Send]; the single consumer (the
// frame loop) empties it once per tick with [Queue.Drain]. All state
// mutation driven by events therefore happens on the one goroutine
// that owns the rendering session.
//
// Successive Scroll events with the same delta unit are compressed
// into one, integrating their deltas, so a burst of wheel events
// between two frames does not grow the queue.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if sc, ok := ev.(*ScrollEvent); ok && len(q.events) > 0 {
		if last, ok := q.events[len(q.events)-1].(*ScrollEvent); ok && last.Mode == sc.Mode {
			last.Delta += sc.Delta
			return
		}
	}
	q.events = append(q.events, ev)
}

// Drain removes and returns all pending events, in posting order.
// It returns nil if the queue is empty.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	evs := q.events
	q.events = nil
	return evs
}
