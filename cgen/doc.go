// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package cgen provides a C backend for shadergen.
//
// This package renders an IR module into a pair of C files: a header
// declaring the aggregate structure, its instance and the load/unload
// functions, and a source file defining them.
//
// # Basic Usage
//
//	out, err := cgen.Compile(module, cgen.DefaultOptions())
//	// out.Declarations -> shaders.gen.h
//	// out.Definitions  -> shaders.gen.c
//
// # Driver API
//
// The generated code does not know how programs are built. It calls the
// functions named in Options.API: by default gl_program_vert_frag to link
// a program, glGetAttribLocation and glGetUniformLocation to resolve
// locations, and glDeleteProgram to release it.
//
// # Reserved Words
//
// Shader, attribute and uniform names are emitted verbatim as struct
// members and as lookup strings. Names that collide with C reserved
// words are rejected instead of renamed.
package cgen
