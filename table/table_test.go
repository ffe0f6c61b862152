// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package table

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/shadergen/ir"
)

const solidJSON = `{
  "shaders": [
    {
      "name": "solid",
      "vertex": "solid.vert",
      "fragment": "solid.frag",
      "attributes": ["vertex"],
      "uniforms": ["projection", "color"]
    }
  ]
}`

func TestParse(t *testing.T) {
	tbl, err := Parse([]byte(solidJSON))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := &Table{Shaders: []Shader{{
		Name:         "solid",
		VertexPath:   "solid.vert",
		FragmentPath: "solid.frag",
		Attributes:   []string{"vertex"},
		Uniforms:     []string{"projection", "color"},
	}}}
	if !reflect.DeepEqual(tbl, want) {
		t.Errorf("Parse() = %+v, want %+v", tbl, want)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown key", `{"shaders": [{"name": "a", "geometry": "a.geom"}]}`, `unknown field "geometry"`},
		{"wrong type", `{"shaders": [{"name": 1}]}`, "cannot unmarshal number"},
		{"trailing data", `{"shaders": []} {}`, "unexpected data after table"},
		{"not json", `shaders:`, "table: decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shaders.json")
	if err := os.WriteFile(path, []byte(solidJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := tbl.Names(); !reflect.DeepEqual(got, []string{"solid"}) {
		t.Errorf("Names() = %v, want [solid]", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestDefault(t *testing.T) {
	tbl := Default()

	want := []string{
		"circle", "circle_filled", "solid", "smooth", "texture", "texture_interpolate",
		"nebula", "stars", "font", "beam", "tk",
	}
	if got := tbl.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Default().Names() = %v, want %v", got, want)
	}

	// Callers may modify the returned table freely.
	tbl.Shaders[0].Name = "changed"
	if Default().Shaders[0].Name != "circle" {
		t.Error("Default() returned shared state")
	}
}

func TestDefault_Validates(t *testing.T) {
	module, err := Lower(Default())
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	errors, err := ir.Validate(module)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	for _, e := range errors {
		t.Errorf("validation error: %s", e.Error())
	}
}

func TestLower_Solid(t *testing.T) {
	tbl, err := Parse([]byte(solidJSON))
	if err != nil {
		t.Fatal(err)
	}
	module, err := Lower(tbl)
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}

	if module.Names != ir.DefaultNames() {
		t.Errorf("Names = %+v, want defaults", module.Names)
	}

	wantRecords := []ir.Record{{
		Name: "solid",
		Fields: []ir.Field{
			{Name: "program", Kind: ir.FieldProgram},
			{Name: "vertex", Kind: ir.FieldAttribute},
			{Name: "projection", Kind: ir.FieldUniform},
			{Name: "color", Kind: ir.FieldUniform},
		},
	}}
	if !reflect.DeepEqual(module.Records, wantRecords) {
		t.Errorf("Records = %+v, want %+v", module.Records, wantRecords)
	}

	wantLoad := ir.Block{
		{Kind: ir.StmtLinkProgram{Record: 0, VertexPath: "solid.vert", FragmentPath: "solid.frag"}},
		{Kind: ir.StmtLookupAttribute{Record: 0, Field: 1}},
		{Kind: ir.StmtLookupUniform{Record: 0, Field: 2}},
		{Kind: ir.StmtLookupUniform{Record: 0, Field: 3}},
	}
	if !reflect.DeepEqual(module.Load, wantLoad) {
		t.Errorf("Load = %+v, want %+v", module.Load, wantLoad)
	}

	wantUnload := ir.Block{
		{Kind: ir.StmtDeleteProgram{Record: 0}},
		{Kind: ir.StmtResetInstance{}},
	}
	if !reflect.DeepEqual(module.Unload, wantUnload) {
		t.Errorf("Unload = %+v, want %+v", module.Unload, wantUnload)
	}
}

func TestLower_SeparatesShaders(t *testing.T) {
	tbl := &Table{Shaders: []Shader{
		{Name: "a", VertexPath: "a.vert", FragmentPath: "a.frag"},
		{Name: "b", VertexPath: "b.vert", FragmentPath: "b.frag"},
	}}
	module, err := Lower(tbl)
	if err != nil {
		t.Fatal(err)
	}

	wantLoad := ir.Block{
		{Kind: ir.StmtLinkProgram{Record: 0, VertexPath: "a.vert", FragmentPath: "a.frag"}},
		{Kind: ir.StmtSeparator{}},
		{Kind: ir.StmtLinkProgram{Record: 1, VertexPath: "b.vert", FragmentPath: "b.frag"}},
	}
	if !reflect.DeepEqual(module.Load, wantLoad) {
		t.Errorf("Load = %+v, want %+v", module.Load, wantLoad)
	}
}

func TestLower_Empty(t *testing.T) {
	module, err := Lower(&Table{})
	if err != nil {
		t.Fatal(err)
	}
	if len(module.Records) != 0 || len(module.Load) != 0 {
		t.Errorf("expected no records and empty load body, got %d records, %d statements", len(module.Records), len(module.Load))
	}
	if len(module.Unload) != 1 {
		t.Fatalf("expected a single reset in unload, got %d statements", len(module.Unload))
	}
	if _, ok := module.Unload[0].Kind.(ir.StmtResetInstance); !ok {
		t.Errorf("unload statement is %T, want ir.StmtResetInstance", module.Unload[0].Kind)
	}
}

func TestLower_DuplicateNamesFailValidation(t *testing.T) {
	tbl := &Table{Shaders: []Shader{
		{Name: "solid", VertexPath: "solid.vert", FragmentPath: "solid.frag"},
		{Name: "solid", VertexPath: "other.vert", FragmentPath: "other.frag"},
	}}
	module, err := Lower(tbl)
	if err != nil {
		t.Fatal(err)
	}
	errors, err := ir.Validate(module)
	if err != nil {
		t.Fatal(err)
	}
	if len(errors) == 0 {
		t.Error("expected duplicate shader names to be rejected")
	}
}

func TestLower_Nil(t *testing.T) {
	if _, err := Lower(nil); err == nil {
		t.Error("Expected error for nil table, got nil")
	}
}
