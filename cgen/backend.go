// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cgen

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// API names the graphics driver entry points the generated code calls.
type API struct {
	// HandleType is the C type of every handle field.
	HandleType string

	// LinkProgram compiles and links a program: handle f(const char *vert, const char *frag).
	LinkProgram string

	// AttribLocation resolves an attribute: handle f(handle program, const char *name).
	AttribLocation string

	// UniformLocation resolves a uniform: handle f(handle program, const char *name).
	UniformLocation string

	// DeleteProgram releases a program: void f(handle program).
	DeleteProgram string
}

// DefaultAPI returns the OpenGL entry points of the engine.
func DefaultAPI() API {
	return API{
		HandleType:      "GLuint",
		LinkProgram:     "gl_program_vert_frag",
		AttribLocation:  "glGetAttribLocation",
		UniformLocation: "glGetUniformLocation",
		DeleteProgram:   "glDeleteProgram",
	}
}

// Options configures C code generation.
type Options struct {
	// Generator names the generating tool in the leading marker comment.
	Generator string

	// HeaderName is the file name the definitions use to include the declarations.
	HeaderName string

	// IncludeGuard is the macro guarding the declarations.
	IncludeGuard string

	// HeaderIncludes are written into the declarations, after the guard.
	// Entries are included verbatim, so they carry their own quotes or brackets.
	HeaderIncludes []string

	// SystemIncludes are written into the definitions before the declarations header.
	SystemIncludes []string

	// SourceIncludes are written into the definitions after the declarations header.
	SourceIncludes []string

	// API names the driver entry points.
	API API

	// Indent is one level of indentation.
	// Defaults to three spaces if empty.
	Indent string
}

// DefaultOptions returns the options matching the engine's build.
func DefaultOptions() Options {
	return Options{
		Generator:      "shadergen",
		HeaderName:     "shaders.gen.h",
		IncludeGuard:   "SHADER_GEN_C_H",
		HeaderIncludes: []string{`"opengl.h"`},
		SystemIncludes: []string{"<string.h>"},
		SourceIncludes: []string{`"opengl_shader.h"`},
		API:            DefaultAPI(),
		Indent:         "   ",
	}
}

// applyDefaults fills empty option fields from DefaultOptions.
// Include lists are left alone: an empty list is a valid choice.
func (o *Options) applyDefaults() {
	def := DefaultOptions()
	if o.Generator == "" {
		o.Generator = def.Generator
	}
	if o.HeaderName == "" {
		o.HeaderName = def.HeaderName
	}
	if o.IncludeGuard == "" {
		o.IncludeGuard = def.IncludeGuard
	}
	if o.API.HandleType == "" {
		o.API.HandleType = def.API.HandleType
	}
	if o.API.LinkProgram == "" {
		o.API.LinkProgram = def.API.LinkProgram
	}
	if o.API.AttribLocation == "" {
		o.API.AttribLocation = def.API.AttribLocation
	}
	if o.API.UniformLocation == "" {
		o.API.UniformLocation = def.API.UniformLocation
	}
	if o.API.DeleteProgram == "" {
		o.API.DeleteProgram = def.API.DeleteProgram
	}
	if o.Indent == "" {
		o.Indent = def.Indent
	}
}

// Output holds the two generated C files.
type Output struct {
	// Declarations is the header text: aggregate type, instance and function declarations.
	Declarations string

	// Definitions is the source text: instance and load/unload function bodies.
	Definitions string

	// Records is the number of shader records in the aggregate.
	Records int

	// Handles is the number of handle fields across all records.
	Handles int
}

// Compile generates C declarations and definitions from an IR module.
func Compile(module *ir.Module, options Options) (Output, error) {
	if module == nil {
		return Output{}, fmt.Errorf("cgen: module is nil")
	}

	options.applyDefaults()

	w := newWriter(module, &options)
	if err := w.checkNames(); err != nil {
		return Output{}, fmt.Errorf("cgen: %w", err)
	}

	decls, err := w.writeDeclarations()
	if err != nil {
		return Output{}, fmt.Errorf("cgen: declarations: %w", err)
	}
	defs, err := w.writeDefinitions()
	if err != nil {
		return Output{}, fmt.Errorf("cgen: definitions: %w", err)
	}

	return Output{
		Declarations: decls,
		Definitions:  defs,
		Records:      len(module.Records),
		Handles:      module.HandleCount(),
	}, nil
}
