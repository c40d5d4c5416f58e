// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window provides the desktop window, using glfw, and turns
// its callbacks into [events.Event] values for the render loop.
package window

import (
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/triangle/events"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a desktop window with no client graphics API, to be
// rendered into with a WebGPU surface. All methods must be called
// on the main thread.
type Window struct {
	// Glw is the glfw window.
	Glw *glfw.Window

	// Events has the events from the glfw callbacks,
	// drained by [Window.PollEvents].
	Events events.Queue

	fullscreen bool

	// position and size of the window before going fullscreen
	windowedPos  image.Point
	windowedSize image.Point
}

// New initializes glfw and returns a new window with the given title
// and size in screen coordinates, optionally made fullscreen on the
// primary monitor.
// IMPORTANT: must be called on the main initial thread!
func New(title string, size image.Point, fullscreen bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glw, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Log(err)
	}
	w := &Window{Glw: glw}
	glw.SetKeyCallback(w.KeyEvent)
	glw.SetCursorPosCallback(w.CursorPosEvent)
	glw.SetFramebufferSizeCallback(w.FramebufferSizeEvent)
	glw.SetCloseCallback(w.CloseEvent)
	if fullscreen {
		w.SetFullscreen(true)
	}
	return w, nil
}

// Size returns the drawable size of the window, in pixels.
func (w *Window) Size() image.Point {
	wd, ht := w.Glw.GetFramebufferSize()
	return image.Pt(wd, ht)
}

// IsFullscreen returns whether the window is fullscreen.
func (w *Window) IsFullscreen() bool {
	return w.fullscreen
}

// PollEvents processes pending window system events and returns
// the resulting events, in order. It does not block.
func (w *Window) PollEvents() []events.Event {
	glfw.PollEvents()
	return w.Events.Drain()
}

// ToggleFullscreen switches between fullscreen on the primary monitor
// and the prior windowed position and size, and returns the new
// drawable size. The monitor change is asynchronous on some platforms
// (X11), so window events are processed once before reading the size.
// If the size is still stale, the framebuffer size event queued when
// the change completes corrects it on a later poll.
func (w *Window) ToggleFullscreen() (image.Point, error) {
	if err := w.SetFullscreen(!w.fullscreen); err != nil {
		return w.Size(), err
	}
	glfw.PollEvents()
	return w.Size(), nil
}

// SetFullscreen makes the window fullscreen on the primary monitor,
// or restores the windowed position and size saved when it went
// fullscreen.
func (w *Window) SetFullscreen(on bool) error {
	if on == w.fullscreen {
		return nil
	}
	if !on {
		pos, sz := w.windowedPos, w.windowedSize
		w.Glw.SetMonitor(nil, pos.X, pos.Y, sz.X, sz.Y, 0)
		w.fullscreen = false
		slog.Debug("window.Window: windowed", "pos", pos, "size", sz)
		return nil
	}
	mon := glfw.GetPrimaryMonitor()
	if mon == nil {
		return errors.Log(errors.New("window.Window: no primary monitor for fullscreen"))
	}
	mode := mon.GetVideoMode()
	x, y := w.Glw.GetPos()
	wd, ht := w.Glw.GetSize()
	w.windowedPos = image.Pt(x, y)
	w.windowedSize = image.Pt(wd, ht)
	w.Glw.SetMonitor(mon, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	w.fullscreen = true
	slog.Debug("window.Window: fullscreen", "width", mode.Width, "height", mode.Height)
	return nil
}

// Destroy destroys the window and terminates glfw.
// IMPORTANT: must be called on the main initial thread!
func (w *Window) Destroy() {
	if w.Glw != nil {
		w.Glw.Destroy()
		w.Glw = nil
	}
	glfw.Terminate()
}

// physical key
func (w *Window) KeyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	if ev := KeyToEvent(ky, glfw.GetKeyName(ky, scancode), action); ev != nil {
		w.Events.Send(ev)
	}
}

func (w *Window) CursorPosEvent(gw *glfw.Window, x, y float64) {
	w.Events.Send(&events.PointerMoveEvent{Pos: image.Pt(int(x), int(y))})
}

func (w *Window) FramebufferSizeEvent(gw *glfw.Window, width, height int) {
	w.Events.Resize(image.Pt(width, height))
}

func (w *Window) CloseEvent(gw *glfw.Window) {
	w.Events.Send(&events.QuitEvent{})
}
