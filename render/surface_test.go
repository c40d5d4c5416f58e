// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render_test

import (
	"errors"
	"image"
	"testing"

	"cogentcore.org/triangle/render"
	"cogentcore.org/triangle/render/rendertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSurface(t *testing.T, size image.Point, statuses ...render.AcquireStatus) (*render.Surface, *rendertest.Swapchain) {
	sc := rendertest.NewSwapchain(statuses...)
	sf, err := render.NewSurface(sc, size)
	require.NoError(t, err)
	return sf, sc
}

func TestNewSurfaceConfigures(t *testing.T) {
	sf, sc := newSurface(t, image.Pt(1600, 900))
	require.Len(t, sc.Configs, 1)
	cfg := sc.Configs[0]
	assert.Equal(t, uint32(1600), cfg.Width)
	assert.Equal(t, uint32(900), cfg.Height)
	assert.Equal(t, rendertest.Format, cfg.Format)
	assert.Equal(t, render.PresentModeFifo, cfg.PresentMode)
	assert.Equal(t, render.RenderAttachment, cfg.Usage)
	assert.Equal(t, cfg, sf.Config())
	assert.True(t, sf.Renderable())
}

func TestSurfaceSetSize(t *testing.T) {
	sf, sc := newSurface(t, image.Pt(1600, 900))
	for _, sz := range []image.Point{{800, 600}, {1, 1}, {3840, 2160}, {800, 600}} {
		changed, err := sf.SetSize(sz)
		assert.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, sz, sc.LastConfig().Size())
		assert.Equal(t, sz, sf.Config().Size())
	}
	assert.Len(t, sc.Configs, 5)
}

func TestSurfaceZeroSize(t *testing.T) {
	sf, sc := newSurface(t, image.Pt(640, 480))
	changed, err := sf.SetSize(image.Pt(0, 0))
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.False(t, sf.Renderable())
	assert.Len(t, sc.Configs, 1)
	assert.Equal(t, image.Pt(640, 480), sf.Config().Size())

	_, err = sf.AcquireNextTexture()
	assert.ErrorIs(t, err, render.ErrFrameSkipped)
	assert.False(t, render.IsFatal(err))
	assert.Equal(t, 0, sc.Acquires)

	changed, err = sf.SetSize(image.Pt(320, 200))
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, sf.Renderable())
	assert.Equal(t, image.Pt(320, 200), sc.LastConfig().Size())
}

func TestSurfaceZeroInitialSize(t *testing.T) {
	sf, sc := newSurface(t, image.Point{})
	assert.Empty(t, sc.Configs)
	assert.False(t, sf.Renderable())
	_, err := sf.SetSize(image.Pt(10, 20))
	assert.NoError(t, err)
	assert.Len(t, sc.Configs, 1)
	assert.True(t, sf.Renderable())
}

func TestSurfaceConfigureError(t *testing.T) {
	sc := rendertest.NewSwapchain()
	sc.ConfigureErr = errors.New("bad config")
	_, err := render.NewSurface(sc, image.Pt(10, 10))
	assert.True(t, render.IsFatal(err))
	st, ok := render.FatalStage(err)
	assert.True(t, ok)
	assert.Equal(t, render.SurfaceStage, st)
}

func TestAcquireSuccess(t *testing.T) {
	sf, sc := newSurface(t, image.Pt(100, 100))
	tex, err := sf.AcquireNextTexture()
	require.NoError(t, err)
	assert.NotNil(t, tex)
	assert.Equal(t, 1, sc.Acquires)
	assert.Len(t, sc.Configs, 1)
}

func TestAcquireStaleRecovers(t *testing.T) {
	for _, st := range []render.AcquireStatus{render.AcquireOutdated, render.AcquireLost} {
		sf, sc := newSurface(t, image.Pt(100, 50), st, render.AcquireSuccess)
		tex, err := sf.AcquireNextTexture()
		require.NoError(t, err, st.String())
		require.NotNil(t, tex)
		assert.Len(t, sc.Configs, 2, "exactly one reconfiguration")
		assert.Equal(t, image.Pt(100, 50), sc.LastConfig().Size())
		assert.Equal(t, 2, sc.Acquires)
	}
}

func TestAcquireStaleTwiceIsFatal(t *testing.T) {
	sf, sc := newSurface(t, image.Pt(100, 50), render.AcquireOutdated, render.AcquireLost)
	_, err := sf.AcquireNextTexture()
	require.Error(t, err)
	assert.True(t, render.IsFatal(err))
	st, _ := render.FatalStage(err)
	assert.Equal(t, render.AcquireStage, st)
	assert.Equal(t, render.AcquireLost, render.AcquireStatusOf(err))
	assert.Equal(t, 2, sc.Acquires)
}

func TestAcquireStaleThenTimeoutSkips(t *testing.T) {
	sf, _ := newSurface(t, image.Pt(100, 50), render.AcquireOutdated, render.AcquireTimeout)
	_, err := sf.AcquireNextTexture()
	assert.ErrorIs(t, err, render.ErrFrameSkipped)
	assert.False(t, render.IsFatal(err))
}

func TestAcquireTimeoutSkips(t *testing.T) {
	sf, sc := newSurface(t, image.Pt(100, 50), render.AcquireTimeout)
	_, err := sf.AcquireNextTexture()
	assert.ErrorIs(t, err, render.ErrFrameSkipped)
	assert.False(t, render.IsFatal(err))
	assert.Equal(t, render.AcquireTimeout, render.AcquireStatusOf(err))
	assert.Len(t, sc.Configs, 1, "no reconfiguration on timeout")

	tex, err := sf.AcquireNextTexture()
	assert.NoError(t, err)
	assert.NotNil(t, tex)
}

func TestAcquireOutOfMemoryIsFatal(t *testing.T) {
	for _, st := range []render.AcquireStatus{render.AcquireOutOfMemory, render.AcquireDeviceLost} {
		sf, sc := newSurface(t, image.Pt(100, 50), st)
		_, err := sf.AcquireNextTexture()
		assert.True(t, render.IsFatal(err))
		assert.Len(t, sc.Configs, 1)
		assert.Equal(t, 1, sc.Acquires)
		assert.Contains(t, err.Error(), "frame acquisition")
		assert.Contains(t, err.Error(), st.String())
	}
}

func TestAcquireStatusOf(t *testing.T) {
	assert.Equal(t, render.AcquireSuccess, render.AcquireStatusOf(nil))
	assert.Equal(t, render.AcquireLost, render.AcquireStatusOf(errors.New("other")))
	assert.Equal(t, render.AcquireTimeout, render.AcquireStatusOf(render.NewAcquireError(render.AcquireTimeout, nil)))

	assert.Equal(t, render.Transient, render.AcquireTimeout.Kind())
	assert.Equal(t, render.Stale, render.AcquireOutdated.Kind())
	assert.Equal(t, render.Stale, render.AcquireLost.Kind())
	assert.Equal(t, render.Unrecoverable, render.AcquireOutOfMemory.Kind())
	assert.Equal(t, render.Unrecoverable, render.AcquireDeviceLost.Kind())
}

func TestFatal(t *testing.T) {
	assert.NoError(t, render.Fatal(render.ShaderStage, nil))
	base := errors.New("parse error")
	err := render.Fatal(render.ShaderStage, base)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "fatal error during shader compilation: parse error", err.Error())
	assert.Same(t, err, render.Fatal(render.AcquireStage, err))
	_, ok := render.FatalStage(base)
	assert.False(t, ok)
}
