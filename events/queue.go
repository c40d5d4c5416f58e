// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "image"

// Queue collects events sent from window system callbacks
// until they are drained once per loop iteration.
// It is only used from the main thread.
type Queue struct {
	events []Event
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.events = append(q.events, ev)
}

// Resize sends a [ResizeEvent].
func (q *Queue) Resize(size image.Point) {
	q.Send(&ResizeEvent{Size: size})
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in the order they were sent,
// and empties the queue.
func (q *Queue) Drain() []Event {
	evs := q.events
	q.events = nil
	return evs
}
