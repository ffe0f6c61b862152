// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package table

// Default returns the built-in shader table of the engine.
// Each call returns a fresh copy.
func Default() *Table {
	return &Table{Shaders: []Shader{
		{
			Name:         "circle",
			VertexPath:   "circle.vert",
			FragmentPath: "circle.frag",
			Attributes:   []string{"vertex"},
			Uniforms:     []string{"projection", "color", "radius"},
		},
		{
			Name:         "circle_filled",
			VertexPath:   "circle.vert",
			FragmentPath: "circle_filled.frag",
			Attributes:   []string{"vertex"},
			Uniforms:     []string{"projection", "color", "radius"},
		},
		{
			Name:         "solid",
			VertexPath:   "solid.vert",
			FragmentPath: "solid.frag",
			Attributes:   []string{"vertex"},
			Uniforms:     []string{"projection", "color"},
		},
		{
			Name:         "smooth",
			VertexPath:   "smooth.vert",
			FragmentPath: "smooth.frag",
			Attributes:   []string{"vertex", "vertex_color"},
			Uniforms:     []string{"projection"},
		},
		{
			Name:         "texture",
			VertexPath:   "texture.vert",
			FragmentPath: "texture.frag",
			Attributes:   []string{"vertex"},
			Uniforms:     []string{"projection", "color", "tex_mat"},
		},
		{
			Name:         "texture_interpolate",
			VertexPath:   "texture.vert",
			FragmentPath: "texture_interpolate.frag",
			Attributes:   []string{"vertex"},
			Uniforms:     []string{"projection", "color", "tex_mat", "sampler1", "sampler2", "inter"},
		},
		{
			Name:         "nebula",
			VertexPath:   "nebula.vert",
			FragmentPath: "nebula.frag",
			Attributes:   []string{"vertex"},
			Uniforms:     []string{"projection", "color", "center", "radius"},
		},
		{
			Name:         "stars",
			VertexPath:   "stars.vert",
			FragmentPath: "stars.frag",
			Attributes:   []string{"vertex", "brightness"},
			Uniforms:     []string{"projection", "star_xy", "wh", "xy"},
		},
		{
			Name:         "font",
			VertexPath:   "font.vert",
			FragmentPath: "font.frag",
			Attributes:   []string{"vertex", "tex_coord"},
			Uniforms:     []string{"projection", "color"},
		},
		{
			Name:         "beam",
			VertexPath:   "beam.vert",
			FragmentPath: "beam.frag",
			Attributes:   []string{"vertex"},
			Uniforms:     []string{"projection", "color", "tex_mat"},
		},
		{
			Name:         "tk",
			VertexPath:   "tk.vert",
			FragmentPath: "tk.frag",
			Attributes:   []string{"vertex"},
			Uniforms:     []string{"projection", "c", "dc", "lc", "oc", "wh", "corner_radius"},
		},
	}}
}
