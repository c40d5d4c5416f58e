// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spintri opens a window and draws a triangle with red, green
// and blue corners rocking back and forth about the window center.
// Press F11 to toggle fullscreen and Escape to quit.
package main

import (
	"runtime"

	"cogentcore.org/core/cli"
	"cogentcore.org/triangle/app"
	"cogentcore.org/triangle/config"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	opts := cli.DefaultOptions("spintri", "Spintri draws an animated triangle with WebGPU.")
	opts.DefaultFiles = []string{config.ConfigFile}
	cli.Run(opts, &config.Config{}, &cli.Cmd[*config.Config]{
		Func: run,
		Name: "run",
		Doc:  "run opens the window and runs the render loop until it is closed",
		Root: true,
	})
}

func run(cfg *config.Config) error {
	return app.Failure(app.Run(cfg))
}
