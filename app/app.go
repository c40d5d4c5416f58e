// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/triangle/config"
	"cogentcore.org/triangle/geom"
	"cogentcore.org/triangle/gpu"
	"cogentcore.org/triangle/render"
	"cogentcore.org/triangle/shaders"
	"cogentcore.org/triangle/window"
)

// PipelineLabel is the label of the render pipeline.
const PipelineLabel = "Render Pipeline"

// Run opens the window, sets up the GPU, surface and pipeline, and runs
// the render loop until the window is closed or there is a fatal error.
// All GPU resources and the window are released before returning.
// IMPORTANT: must be called on the main initial thread!
func Run(cfg *config.Config) error {
	if cfg.Debug {
		logx.UserLevel = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(logx.UserLevel)
	if s, err := cfg.TOML(); err == nil {
		slog.Debug("app.Run: config\n" + s)
	}

	src, err := shaders.Load(cfg.Shader)
	if err != nil {
		return render.Fatal(render.ShaderStage, err)
	}

	win, err := window.New(cfg.Title, cfg.Size(), cfg.Fullscreen)
	if err != nil {
		return render.Fatal(render.WindowStage, err)
	}
	defer win.Destroy()
	defer gpu.ReleaseInstance()

	ws := gpu.NewWindowSurface(win.Glw)
	gp, err := gpu.NewGPU(ws, !cfg.LowPower)
	if err != nil {
		ws.Release()
		return err
	}
	defer gp.Release()
	gs := gpu.NewSurface(gp, ws)
	defer gs.Release()

	pl, err := gpu.NewGraphicsPipeline(gp, PipelineLabel, src, gs.Format())
	if err != nil {
		return err
	}
	defer pl.Release()

	sf, err := render.NewSurface(gs, win.Size())
	if err != nil {
		return err
	}
	rd := render.NewRenderer(gpu.NewDevice(gp), sf, pl, geom.NewSource(geom.Triangle()))
	lp := &Loop{Window: win, Surface: sf, Renderer: rd}
	err = lp.Run()
	slog.Info("app.Run: done", "frames", lp.Frames, "skipped", lp.Skipped)
	return err
}

// Diagnostic returns the one-line diagnostic for an error ending the
// program: "fatal error during <stage>: <cause>".
func Diagnostic(err error) string {
	if render.IsFatal(err) {
		return err.Error()
	}
	return "fatal error: " + err.Error()
}

// Failure returns an error whose message is the [Diagnostic] for err,
// or nil for a nil error. It is returned from the command run by
// cli.Run, which prints it as a failure and exits with status 1.
func Failure(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(Diagnostic(err))
}
