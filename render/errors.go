// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// Stages are the stages of startup and rendering at which
// a fatal error can occur. They are reported in diagnostics.
type Stages int32

const (
	UnknownStage Stages = iota

	// AdapterStage is the selection of a GPU adapter.
	AdapterStage

	// DeviceStage is the request for a logical device.
	DeviceStage

	// ShaderStage is the compilation of the shader module.
	ShaderStage

	// PipelineStage is the construction of the render pipeline.
	PipelineStage

	// SurfaceStage is the configuration of the presentable surface.
	SurfaceStage

	// BufferStage is the creation of the per-frame vertex buffer.
	BufferStage

	// AcquireStage is the acquisition of the next presentable frame.
	AcquireStage

	// RecordStage is the recording of render commands.
	RecordStage

	// WindowStage is the creation of the window.
	WindowStage
)

var stagesNames = map[Stages]string{
	UnknownStage:  "unknown stage",
	AdapterStage:  "adapter selection",
	DeviceStage:   "device creation",
	ShaderStage:   "shader compilation",
	PipelineStage: "pipeline creation",
	SurfaceStage:  "surface configuration",
	BufferStage:   "vertex buffer creation",
	AcquireStage:  "frame acquisition",
	RecordStage:   "command recording",
	WindowStage:   "window creation",
}

func (st Stages) String() string {
	if nm, ok := stagesNames[st]; ok {
		return nm
	}
	return fmt.Sprintf("Stages(%d)", int32(st))
}

// FatalError is an error that the process cannot recover from.
// It ends the render loop, and the process exits with a diagnostic
// naming the failing stage.
type FatalError struct {
	Stage Stages
	Err   error
}

func (fe *FatalError) Error() string {
	return "fatal error during " + fe.Stage.String() + ": " + fe.Err.Error()
}

func (fe *FatalError) Unwrap() error { return fe.Err }

// Fatal returns a [FatalError] for the given stage wrapping err,
// or nil if err is nil. An err that is already fatal is returned as is.
func Fatal(stage Stages, err error) error {
	if err == nil {
		return nil
	}
	if IsFatal(err) {
		return err
	}
	return &FatalError{Stage: stage, Err: err}
}

// IsFatal returns whether the given error is, or wraps, a [FatalError].
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

// FatalStage returns the stage of the given fatal error,
// and false if it is not fatal.
func FatalStage(err error) (Stages, bool) {
	var fe *FatalError
	if !errors.As(err, &fe) {
		return UnknownStage, false
	}
	return fe.Stage, true
}

// ErrFrameSkipped is returned (wrapped) when a frame could not be
// rendered for a transient reason, such as an acquisition timeout or a
// zero-area window. The loop just tries again on the next iteration.
var ErrFrameSkipped = errors.New("render: frame skipped")

// Kinds classifies errors by how they are handled.
type Kinds int32

const (
	// Transient errors skip the current frame and leave all state as is.
	Transient Kinds = iota

	// Stale errors mean the surface configuration no longer matches
	// the surface: reconfigure and retry once.
	Stale

	// Unrecoverable errors end the process.
	Unrecoverable
)

// AcquireStatus is the outcome of requesting the next presentable texture.
type AcquireStatus int32

const (
	AcquireSuccess AcquireStatus = iota
	AcquireTimeout
	AcquireOutdated
	AcquireLost
	AcquireOutOfMemory
	AcquireDeviceLost
)

var acquireStatusNames = map[AcquireStatus]string{
	AcquireSuccess:     "Success",
	AcquireTimeout:     "Timeout",
	AcquireOutdated:    "Outdated",
	AcquireLost:        "Lost",
	AcquireOutOfMemory: "OutOfMemory",
	AcquireDeviceLost:  "DeviceLost",
}

func (as AcquireStatus) String() string {
	if nm, ok := acquireStatusNames[as]; ok {
		return nm
	}
	return fmt.Sprintf("AcquireStatus(%d)", int32(as))
}

// Kind returns how a failure with this status is handled.
func (as AcquireStatus) Kind() Kinds {
	switch as {
	case AcquireSuccess, AcquireTimeout:
		return Transient
	case AcquireOutdated, AcquireLost:
		return Stale
	default:
		return Unrecoverable
	}
}

// AcquireError is returned by [Swapchain.CurrentTexture] when no
// texture could be acquired.
type AcquireError struct {
	Status AcquireStatus
	Err    error
}

// NewAcquireError returns a new [AcquireError].
func NewAcquireError(status AcquireStatus, err error) error {
	return &AcquireError{Status: status, Err: err}
}

func (ae *AcquireError) Error() string {
	if ae.Err == nil {
		return "surface texture acquisition failed: " + ae.Status.String()
	}
	return "surface texture acquisition failed: " + ae.Status.String() + ": " + ae.Err.Error()
}

func (ae *AcquireError) Unwrap() error { return ae.Err }

// AcquireStatusOf returns the [AcquireStatus] carried by err.
// A nil error is [AcquireSuccess], and an error that carries no
// status is treated as [AcquireLost], so that it gets one
// reconfigure-and-retry before being considered fatal.
func AcquireStatusOf(err error) AcquireStatus {
	if err == nil {
		return AcquireSuccess
	}
	var ae *AcquireError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return AcquireLost
}
