// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders has the WGSL shader source for drawing
// colored vertex lists.
package shaders

import (
	"embed"
	"os"

	"cogentcore.org/core/base/errors"
)

//go:embed *.wgsl
var shaders embed.FS

// TriangleFile is the name of the embedded triangle shader.
const TriangleFile = "triangle.wgsl"

// Triangle returns the embedded triangle shader source. Its vertex
// entry point vs_main takes the position at location 0 and the color
// at location 1 and passes them through unchanged, and its fragment
// entry point fs_main outputs the interpolated color with alpha 1.
func Triangle() string {
	b, err := shaders.ReadFile(TriangleFile)
	errors.Log(err)
	return string(b)
}

// Load returns the shader source in the given file,
// or the embedded [Triangle] shader if file is empty.
func Load(file string) (string, error) {
	if file == "" {
		return Triangle(), nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", errors.Log(err)
	}
	return string(b), nil
}
