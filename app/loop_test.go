// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"errors"
	"image"
	"testing"

	"cogentcore.org/triangle/events"
	"cogentcore.org/triangle/geom"
	"cogentcore.org/triangle/render"
	"cogentcore.org/triangle/render/rendertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testWindow returns scripted event batches, one per PollEvents call.
type testWindow struct {
	batches [][]events.Event

	fullscreen   bool
	windowed     image.Point
	screen       image.Point
	toggleErr    error
	nPolls       int
	nFullscreens int
}

func (w *testWindow) PollEvents() []events.Event {
	w.nPolls++
	if len(w.batches) == 0 {
		return nil
	}
	evs := w.batches[0]
	w.batches = w.batches[1:]
	return evs
}

func (w *testWindow) ToggleFullscreen() (image.Point, error) {
	if w.toggleErr != nil {
		return image.Point{}, w.toggleErr
	}
	w.nFullscreens++
	w.fullscreen = !w.fullscreen
	if w.fullscreen {
		return w.screen, nil
	}
	return w.windowed, nil
}

type testLoop struct {
	*Loop
	win *testWindow
	sc  *rendertest.Swapchain
	dev *rendertest.Device
	rd  *render.Renderer
}

func newTestLoop(t *testing.T, statuses ...render.AcquireStatus) *testLoop {
	win := &testWindow{windowed: image.Pt(1600, 900), screen: image.Pt(2560, 1440)}
	sc := rendertest.NewSwapchain(statuses...)
	sf, err := render.NewSurface(sc, win.windowed)
	require.NoError(t, err)
	dev := &rendertest.Device{}
	rd := render.NewRenderer(dev, sf, &rendertest.Pipeline{Label: PipelineLabel}, geom.NewSource(geom.Triangle()))
	lp := &Loop{Window: win, Surface: sf, Renderer: rd}
	return &testLoop{Loop: lp, win: win, sc: sc, dev: dev, rd: rd}
}

func TestLoopIterations(t *testing.T) {
	tl := newTestLoop(t)
	for range 10 {
		quit, err := tl.Step()
		require.NoError(t, err)
		require.False(t, quit)
	}
	assert.Equal(t, 10, tl.Frames)
	assert.Equal(t, 10, tl.sc.Presents)
	assert.InDelta(t, 0.2, tl.rd.Angle(), 1e-6)
}

func TestLoopResizeBeforeRender(t *testing.T) {
	tl := newTestLoop(t)
	tl.win.batches = [][]events.Event{{
		&events.ResizeEvent{Size: image.Pt(640, 480)},
		&events.PointerMoveEvent{Pos: image.Pt(3, 4)},
		&events.ResizeEvent{Size: image.Pt(800, 600)},
	}}
	_, err := tl.Step()
	require.NoError(t, err)
	require.Len(t, tl.sc.Textures, 1)
	assert.Equal(t, image.Pt(800, 600), tl.sc.Textures[0].Config.Size())
	assert.Len(t, tl.sc.Configs, 3)
}

func TestLoopFullscreen(t *testing.T) {
	tl := newTestLoop(t)
	tl.win.batches = [][]events.Event{
		{&events.FullscreenEvent{}},
		{&events.FullscreenEvent{}},
	}
	_, err := tl.Step()
	require.NoError(t, err)
	assert.Equal(t, image.Pt(2560, 1440), tl.Surface.Config().Size())
	assert.Equal(t, image.Pt(2560, 1440), tl.sc.Textures[0].Config.Size())

	_, err = tl.Step()
	require.NoError(t, err)
	assert.Equal(t, image.Pt(1600, 900), tl.Surface.Config().Size())
	assert.Equal(t, image.Pt(1600, 900), tl.sc.Textures[1].Config.Size())
	assert.Equal(t, 2, tl.win.nFullscreens)
}

func TestLoopFullscreenStaleSize(t *testing.T) {
	tl := newTestLoop(t)
	tl.win.screen = tl.win.windowed
	tl.win.batches = [][]events.Event{
		{&events.FullscreenEvent{}},
		{&events.ResizeEvent{Size: image.Pt(2560, 1440)}},
	}
	_, err := tl.Step()
	require.NoError(t, err)
	assert.Equal(t, image.Pt(1600, 900), tl.sc.Textures[0].Config.Size())

	_, err = tl.Step()
	require.NoError(t, err)
	assert.Equal(t, image.Pt(2560, 1440), tl.Surface.Config().Size())
	assert.Equal(t, image.Pt(2560, 1440), tl.sc.Textures[1].Config.Size())
}

func TestLoopFullscreenError(t *testing.T) {
	tl := newTestLoop(t)
	tl.win.toggleErr = errors.New("no monitor")
	tl.win.batches = [][]events.Event{{&events.FullscreenEvent{}}}
	quit, err := tl.Step()
	assert.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, image.Pt(1600, 900), tl.Surface.Config().Size())
	assert.Equal(t, 1, tl.Frames)
}

func TestLoopQuit(t *testing.T) {
	tl := newTestLoop(t)
	tl.win.batches = [][]events.Event{
		nil,
		{&events.KeyEvent{Key: "a"}, &events.QuitEvent{}, &events.ResizeEvent{Size: image.Pt(10, 10)}},
	}
	assert.NoError(t, tl.Run())
	assert.Equal(t, 2, tl.win.nPolls)
	assert.Equal(t, 2, tl.Frames)
	assert.Equal(t, image.Pt(1600, 900), tl.Surface.Config().Size())
}

func TestLoopZeroSize(t *testing.T) {
	tl := newTestLoop(t)
	tl.win.batches = [][]events.Event{
		{&events.ResizeEvent{Size: image.Point{}}},
		nil,
		{&events.ResizeEvent{Size: image.Pt(1024, 768)}},
	}
	for range 3 {
		_, err := tl.Step()
		require.NoError(t, err)
	}
	assert.Equal(t, 2, tl.Skipped)
	assert.Equal(t, 1, tl.Frames)
	assert.InDelta(t, 0.06, tl.rd.Angle(), 1e-6)
	assert.Equal(t, image.Pt(1024, 768), tl.sc.Textures[0].Config.Size())
}

func TestLoopTimeoutSkips(t *testing.T) {
	tl := newTestLoop(t, render.AcquireTimeout)
	quit, err := tl.Step()
	assert.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 1, tl.Skipped)
	_, err = tl.Step()
	assert.NoError(t, err)
	assert.Equal(t, 1, tl.Frames)
}

func TestLoopOutOfMemory(t *testing.T) {
	tl := newTestLoop(t, render.AcquireSuccess, render.AcquireOutOfMemory)
	err := tl.Run()
	require.Error(t, err)
	assert.True(t, render.IsFatal(err))
	assert.Equal(t, 1, tl.Frames)
	assert.Equal(t, 2, tl.win.nPolls)
	assert.Equal(t, 1, tl.sc.Presents)
	assert.Contains(t, Diagnostic(err), "fatal error during frame acquisition")
}

func TestDiagnostic(t *testing.T) {
	err := render.Fatal(render.ShaderStage, errors.New("unknown identifier"))
	assert.Equal(t, "fatal error during shader compilation: unknown identifier", Diagnostic(err))
	assert.Equal(t, "fatal error: boom", Diagnostic(errors.New("boom")))
}

func TestFailure(t *testing.T) {
	assert.NoError(t, Failure(nil))
	err := render.Fatal(render.AcquireStage, errors.New("out-of-memory"))
	assert.EqualError(t, Failure(err), "fatal error during frame acquisition: out-of-memory")
	assert.EqualError(t, Failure(errors.New("boom")), "fatal error: boom")
}
