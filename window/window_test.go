// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"image"
	"testing"

	"cogentcore.org/triangle/events"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyToEvent(t *testing.T) {
	assert.IsType(t, &events.QuitEvent{}, KeyToEvent(glfw.KeyEscape, "", glfw.Press))
	assert.IsType(t, &events.FullscreenEvent{}, KeyToEvent(glfw.KeyF11, "", glfw.Press))
	assert.Equal(t, &events.KeyEvent{Key: "a"}, KeyToEvent(glfw.KeyA, "a", glfw.Press))
	assert.Equal(t, &events.KeyEvent{Key: "Space"}, KeyToEvent(glfw.KeySpace, "", glfw.Press))

	assert.Nil(t, KeyToEvent(glfw.KeyEscape, "", glfw.Release))
	assert.Nil(t, KeyToEvent(glfw.KeyF11, "", glfw.Repeat))
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "q", KeyName(glfw.KeyQ, "q"))
	assert.Equal(t, "Enter", KeyName(glfw.KeyEnter, ""))
	assert.Equal(t, "Key340", KeyName(glfw.KeyLeftShift, ""))
}

func TestCallbacks(t *testing.T) {
	w := &Window{}
	w.FramebufferSizeEvent(nil, 800, 600)
	w.CursorPosEvent(nil, 12.7, 30.2)
	w.CloseEvent(nil)
	evs := w.Events.Drain()
	if assert.Len(t, evs, 3) {
		assert.Equal(t, &events.ResizeEvent{Size: image.Pt(800, 600)}, evs[0])
		assert.Equal(t, &events.PointerMoveEvent{Pos: image.Pt(12, 30)}, evs[1])
		assert.Equal(t, events.Quit, evs[2].Type())
	}
	assert.Equal(t, 0, w.Events.Len())
}

func TestWindowFullscreen(t *testing.T) {
	t.Skip("Need display on CI")
	w, err := New("Window", image.Pt(1600, 900), false)
	assert.NoError(t, err)
	defer w.Destroy()
	sz, err := w.ToggleFullscreen()
	assert.NoError(t, err)
	assert.True(t, w.IsFullscreen())
	assert.NotEqual(t, image.Point{}, sz)
	assert.Equal(t, w.Size(), sz)
	_, err = w.ToggleFullscreen()
	assert.NoError(t, err)
	assert.False(t, w.IsFullscreen())
}
