// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package table holds the shader table that drives generation.
//
// A table is an ordered list of shader programs. It can be decoded from a
// JSON document or taken from Default, and is turned into IR by Lower:
//
//	{
//	  "shaders": [
//	    {
//	      "name": "solid",
//	      "vertex": "solid.vert",
//	      "fragment": "solid.frag",
//	      "attributes": ["vertex"],
//	      "uniforms": ["projection", "color"]
//	    }
//	  ]
//	}
package table

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Shader describes one shader program.
type Shader struct {
	// Name identifies the program and names its record in generated code.
	Name string `json:"name"`

	// VertexPath and FragmentPath are handed to the program loader as is.
	VertexPath   string `json:"vertex"`
	FragmentPath string `json:"fragment"`

	// Attributes are per-vertex inputs, in field order.
	Attributes []string `json:"attributes"`

	// Uniforms are shader globals, in field order after the attributes.
	Uniforms []string `json:"uniforms"`
}

// Table is an ordered list of shader programs.
type Table struct {
	Shaders []Shader `json:"shaders"`
}

// Names returns the shader names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Shaders))
	for i := range t.Shaders {
		names[i] = t.Shaders[i].Name
	}
	return names
}

// Parse decodes a table from its JSON representation.
// Unknown keys and trailing data are rejected.
func Parse(data []byte) (*Table, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("table: decode: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("table: unexpected data after table")
	}
	return &t, nil
}

// Load reads and decodes the table file at path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
