// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu implements the render backend on WebGPU:
// the GPU context (adapter, device, queue), the render pipeline,
// the window surface swapchain, and per-frame buffers and commands.
package gpu

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/triangle/render"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug turns on extra logging of GPU setup.
var Debug = false

// theInstance is the WebGPU instance, created on first use.
var theInstance *wgpu.Instance

// Instance returns the WebGPU instance, creating it if needed.
// It is the highest-level handle, needed to make a window surface
// before there is a [GPU].
func Instance() *wgpu.Instance {
	if theInstance == nil {
		theInstance = wgpu.CreateInstance(nil)
	}
	return theInstance
}

// ReleaseInstance releases the WebGPU instance; call as the last
// thing before quitting.
func ReleaseInstance() {
	if theInstance == nil {
		return
	}
	theInstance.Release()
	theInstance = nil
}

// GPU is the graphics context: the adapter, the logical device,
// and its command queue. It is created once at startup and is
// immutable afterwards.
type GPU struct {
	// Adapter is the physical GPU selected for the surface.
	Adapter *wgpu.Adapter

	// Device is the logical device.
	Device *wgpu.Device

	// Queue is the command queue of the Device.
	Queue *wgpu.Queue
}

// NewGPU selects an adapter compatible with the given surface, and
// requests a logical device from it with default limits and no
// optional features. A high-performance adapter is preferred unless
// highPerformance is false. Failure is a [render.FatalError] at
// [render.AdapterStage] or [render.DeviceStage]: there is no way to
// proceed without a device, so there is no retry.
func NewGPU(sf *wgpu.Surface, highPerformance bool) (*GPU, error) {
	power := wgpu.PowerPreferenceHighPerformance
	if !highPerformance {
		power = wgpu.PowerPreferenceLowPower
	}
	ad, err := Instance().RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface:    sf,
		PowerPreference:      power,
		ForceFallbackAdapter: false,
	})
	if err == nil && ad == nil {
		err = errors.New("no suitable adapter found")
	}
	if errors.Log(err) != nil {
		return nil, render.Fatal(render.AdapterStage, err)
	}
	dev, err := ad.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "device",
	})
	if err == nil && dev == nil {
		err = errors.New("could not get requested device")
	}
	if errors.Log(err) != nil {
		ad.Release()
		return nil, render.Fatal(render.DeviceStage, err)
	}
	gp := &GPU{Adapter: ad, Device: dev, Queue: dev.GetQueue()}
	if Debug {
		slog.Info("gpu.NewGPU: device ready", "highPerformance", highPerformance)
	}
	return gp, nil
}

// WaitDone waits until the device is done with all submitted work.
func (gp *GPU) WaitDone() {
	if gp.Device == nil {
		return
	}
	gp.Device.Poll(true, nil)
}

// Release releases the queue, device and adapter.
func (gp *GPU) Release() {
	gp.WaitDone()
	if gp.Queue != nil {
		gp.Queue.Release()
		gp.Queue = nil
	}
	if gp.Device != nil {
		gp.Device.Release()
		gp.Device = nil
	}
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
}
