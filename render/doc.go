// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package render manages the frame lifecycle of the triangle:
the configuration of the presentable [Surface] across window
resizes, the acquisition of frames with recovery from stale
or lost surfaces, and the [Renderer] that records, submits
and presents one frame per loop iteration.

The GPU objects it drives are behind the small interfaces in
backend.go, implemented for WebGPU by package gpu.

Errors are classified into three kinds: transient errors skip the
frame ([ErrFrameSkipped]), stale surfaces are reconfigured and the
acquisition retried once, and anything else is a [FatalError] that
names the failing [Stages] and ends the process.
*/
package render
