// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/gogpu/shadergen/ir"
)

// Lower converts a shader table to IR using the default top-level names.
func Lower(t *Table) (*ir.Module, error) {
	return LowerWithNames(t, ir.DefaultNames())
}

// LowerWithNames converts a shader table to IR.
//
// Records follow table order and hold the program field, then the
// attributes, then the uniforms. The load body links each program before
// looking up its attributes and uniforms; the unload body deletes every
// program and then resets the instance once.
//
// Lower does not check names; run ir.Validate on the result for that.
func LowerWithNames(t *Table, names ir.Names) (*ir.Module, error) {
	if t == nil {
		return nil, fmt.Errorf("table: nil table")
	}

	l := &lowerer{
		module: &ir.Module{
			Names:   names,
			Records: make([]ir.Record, 0, len(t.Shaders)),
		},
	}
	for i := range t.Shaders {
		if i > 0 {
			l.module.Load = append(l.module.Load, ir.Statement{Kind: ir.StmtSeparator{}})
		}
		l.lowerShader(&t.Shaders[i])
	}
	l.module.Unload = append(l.module.Unload, ir.Statement{Kind: ir.StmtResetInstance{}})

	return l.module, nil
}

// lowerer accumulates the module while walking the table.
type lowerer struct {
	module *ir.Module
}

func (l *lowerer) lowerShader(s *Shader) {
	handle := ir.RecordHandle(len(l.module.Records)) //nolint:gosec // G115: record count fits uint32

	rec := ir.Record{
		Name:   s.Name,
		Fields: make([]ir.Field, 0, 1+len(s.Attributes)+len(s.Uniforms)),
	}
	rec.Fields = append(rec.Fields, ir.Field{Name: ir.ProgramField, Kind: ir.FieldProgram})

	l.emit(ir.StmtLinkProgram{
		Record:       handle,
		VertexPath:   s.VertexPath,
		FragmentPath: s.FragmentPath,
	})
	for _, name := range s.Attributes {
		field := ir.FieldHandle(len(rec.Fields)) //nolint:gosec // G115: field count fits uint32
		rec.Fields = append(rec.Fields, ir.Field{Name: name, Kind: ir.FieldAttribute})
		l.emit(ir.StmtLookupAttribute{Record: handle, Field: field})
	}
	for _, name := range s.Uniforms {
		field := ir.FieldHandle(len(rec.Fields)) //nolint:gosec // G115: field count fits uint32
		rec.Fields = append(rec.Fields, ir.Field{Name: name, Kind: ir.FieldUniform})
		l.emit(ir.StmtLookupUniform{Record: handle, Field: field})
	}

	l.module.Records = append(l.module.Records, rec)
	l.module.Unload = append(l.module.Unload, ir.Statement{Kind: ir.StmtDeleteProgram{Record: handle}})
}

func (l *lowerer) emit(kind ir.StatementKind) {
	l.module.Load = append(l.module.Load, ir.Statement{Kind: kind})
}
