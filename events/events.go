// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the closed set of window and input events
// that drive the render loop.
package events

import (
	"fmt"
	"image"
)

// Types is the type of event. The set is closed: the render loop
// dispatches on it with a type switch and ignores anything else.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Resize happens when the drawable size of the window has changed.
	Resize

	// Fullscreen is a request to toggle between windowed and fullscreen
	// state (F11 key).
	Fullscreen

	// Quit is a request to end the render loop, from the window close
	// button or the Escape key.
	Quit

	// PointerMove is sent when the pointer moves over the window.
	// It is only used for diagnostic logging.
	PointerMove

	// KeyDown is sent for any other key press.
	KeyDown
)

var typesNames = map[Types]string{
	UnknownType: "UnknownType",
	Resize:      "Resize",
	Fullscreen:  "Fullscreen",
	Quit:        "Quit",
	PointerMove: "PointerMove",
	KeyDown:     "KeyDown",
}

func (tp Types) String() string {
	if nm, ok := typesNames[tp]; ok {
		return nm
	}
	return fmt.Sprintf("Types(%d)", int32(tp))
}

// Event is the interface for all events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types
}

// ResizeEvent reports the new drawable size of the window, in pixels.
type ResizeEvent struct {
	Size image.Point
}

func (ev *ResizeEvent) Type() Types { return Resize }

func (ev *ResizeEvent) String() string {
	return fmt.Sprintf("Resize{%dx%d}", ev.Size.X, ev.Size.Y)
}

// FullscreenEvent requests a fullscreen toggle.
type FullscreenEvent struct{}

func (ev *FullscreenEvent) Type() Types { return Fullscreen }

func (ev *FullscreenEvent) String() string { return "Fullscreen" }

// QuitEvent requests the end of the render loop.
type QuitEvent struct{}

func (ev *QuitEvent) Type() Types { return Quit }

func (ev *QuitEvent) String() string { return "Quit" }

// PointerMoveEvent reports the pointer position in window coordinates.
type PointerMoveEvent struct {
	Pos image.Point
}

func (ev *PointerMoveEvent) Type() Types { return PointerMove }

func (ev *PointerMoveEvent) String() string {
	return fmt.Sprintf("PointerMove{x: %d, y: %d}", ev.Pos.X, ev.Pos.Y)
}

// KeyEvent is a key press that has no dedicated event type.
type KeyEvent struct {
	// Key is the platform key name, or the key code if it has no name.
	Key string
}

func (ev *KeyEvent) Type() Types { return KeyDown }

func (ev *KeyEvent) String() string { return "KeyDown{" + ev.Key + "}" }
