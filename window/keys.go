// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"strconv"

	"cogentcore.org/triangle/events"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// KeyToEvent returns the event for a glfw key action, given the
// layout name of the key if it has one. Escape quits, F11 toggles
// fullscreen, and other key presses are reported by name.
// Releases and repeats return nil.
func KeyToEvent(ky glfw.Key, name string, action glfw.Action) events.Event {
	if action != glfw.Press {
		return nil
	}
	switch ky {
	case glfw.KeyEscape:
		return &events.QuitEvent{}
	case glfw.KeyF11:
		return &events.FullscreenEvent{}
	}
	return &events.KeyEvent{Key: KeyName(ky, name)}
}

// KeyName returns the name of the key: the layout name if not empty,
// else the name of a known non-printable key, else its key code.
func KeyName(ky glfw.Key, name string) string {
	if name != "" {
		return name
	}
	if nm, ok := keyNames[ky]; ok {
		return nm
	}
	return "Key" + strconv.Itoa(int(ky))
}

var keyNames = map[glfw.Key]string{
	glfw.KeySpace:     "Space",
	glfw.KeyEnter:     "Enter",
	glfw.KeyTab:       "Tab",
	glfw.KeyBackspace: "Backspace",
	glfw.KeyLeft:      "Left",
	glfw.KeyRight:     "Right",
	glfw.KeyUp:        "Up",
	glfw.KeyDown:      "Down",
	glfw.KeyF1:        "F1",
	glfw.KeyF2:        "F2",
	glfw.KeyF3:        "F3",
	glfw.KeyF4:        "F4",
	glfw.KeyF5:        "F5",
	glfw.KeyF6:        "F6",
	glfw.KeyF7:        "F7",
	glfw.KeyF8:        "F8",
	glfw.KeyF9:        "F9",
	glfw.KeyF10:       "F10",
	glfw.KeyF12:       "F12",
}
