// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs the render loop: each iteration drains the window
// events, applies them to the surface, and renders one frame.
package app

import (
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/triangle/events"
	"cogentcore.org/triangle/render"
)

// Window is the source of events for the [Loop].
type Window interface {
	// PollEvents returns the pending events in order, without blocking.
	PollEvents() []events.Event

	// ToggleFullscreen switches fullscreen on or off and
	// returns the new drawable size.
	ToggleFullscreen() (image.Point, error)
}

// Renderer renders one frame per call.
type Renderer interface {
	RenderFrame() error
}

// Loop is the cooperative single-threaded render loop.
// Events are always applied before the frame of the same iteration
// is rendered, so a frame never uses a configuration older than the
// last resize seen.
type Loop struct {
	Window   Window
	Surface  *render.Surface
	Renderer Renderer

	// Frames is the number of frames presented.
	Frames int

	// Skipped is the number of frames skipped.
	Skipped int
}

// Step runs one iteration of the loop. It returns quit = true when a
// quit event is seen, or with a fatal error. After a quit event the
// remaining events are ignored, but the iteration still renders its frame.
func (lp *Loop) Step() (quit bool, err error) {
poll:
	for _, ev := range lp.Window.PollEvents() {
		switch ev := ev.(type) {
		case *events.QuitEvent:
			slog.Info("app.Loop: quit")
			quit = true
			break poll
		case *events.ResizeEvent:
			if _, err := lp.Surface.SetSize(ev.Size); err != nil {
				return true, err
			}
		case *events.FullscreenEvent:
			size, err := lp.Window.ToggleFullscreen()
			if errors.Log(err) != nil {
				continue
			}
			if _, err := lp.Surface.SetSize(size); err != nil {
				return true, err
			}
		case *events.PointerMoveEvent:
			slog.Debug("app.Loop: pointer", "pos", ev.Pos)
		case *events.KeyEvent:
			slog.Debug("app.Loop: key", "key", ev.Key)
		}
	}
	err = lp.Renderer.RenderFrame()
	switch {
	case err == nil:
		lp.Frames++
	case errors.Is(err, render.ErrFrameSkipped):
		lp.Skipped++
	default:
		return true, err
	}
	return quit, nil
}

// Run runs the loop until quit or a fatal error, which is returned.
func (lp *Loop) Run() error {
	for {
		quit, err := lp.Step()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
