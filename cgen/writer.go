// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cgen

import (
	"fmt"
	"strings"

	"github.com/gogpu/shadergen/ir"
)

// Writer generates C source code from IR.
type Writer struct {
	module  *ir.Module
	options *Options

	// Output buffer
	out strings.Builder

	// Current indentation level
	indent int
}

// newWriter creates a new C writer.
func newWriter(module *ir.Module, options *Options) *Writer {
	return &Writer{
		module:  module,
		options: options,
	}
}

// checkNames rejects identifiers that cannot be emitted verbatim.
// Names are never renamed: the lookup strings must match the fields.
func (w *Writer) checkNames() error {
	names := w.module.Names
	check := func(role, name string) error {
		if !ir.IsIdentifier(name) {
			return fmt.Errorf("%s %q is not a valid C identifier", role, name)
		}
		if isKeyword(name) {
			return fmt.Errorf("%s %q is a reserved C identifier", role, name)
		}
		return nil
	}

	for _, n := range []struct{ role, name string }{
		{"aggregate name", names.Aggregate},
		{"instance name", names.Instance},
		{"load function name", names.Load},
		{"unload function name", names.Unload},
		{"include guard", w.options.IncludeGuard},
		{"link function", w.options.API.LinkProgram},
		{"attribute lookup function", w.options.API.AttribLocation},
		{"uniform lookup function", w.options.API.UniformLocation},
		{"delete function", w.options.API.DeleteProgram},
	} {
		if err := check(n.role, n.name); err != nil {
			return err
		}
	}

	for i := range w.module.Records {
		rec := &w.module.Records[i]
		if err := check("shader name", rec.Name); err != nil {
			return err
		}
		for _, f := range rec.Fields {
			if err := check(fmt.Sprintf("%s of %s", f.Kind, rec.Name), f.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeDeclarations generates the header text.
func (w *Writer) writeDeclarations() (string, error) {
	w.reset()

	w.writeMarker()

	w.writeLine("#ifndef %s", w.options.IncludeGuard)
	w.writeLine("#define %s", w.options.IncludeGuard)
	for _, inc := range w.options.HeaderIncludes {
		w.writeLine("#include %s", inc)
	}
	w.writeLine("")

	if err := w.writeAggregate(); err != nil {
		return "", err
	}
	w.writeLine("")

	names := w.module.Names
	w.writeLine("extern %s %s;", names.Aggregate, names.Instance)
	w.writeLine("")

	w.writeLine("void %s (void);", names.Load)
	w.writeLine("void %s (void);", names.Unload)
	w.writeLine("#endif")

	return w.out.String(), nil
}

// writeAggregate writes the aggregate typedef with one nested struct per record.
func (w *Writer) writeAggregate() error {
	agg := w.module.Names.Aggregate

	w.writeLine("typedef struct %s_ {", agg)
	w.pushIndent()
	for i := range w.module.Records {
		rec := &w.module.Records[i]
		if len(rec.Fields) == 0 {
			return fmt.Errorf("record %s has no fields", rec.Name)
		}
		w.writeLine("struct {")
		w.pushIndent()
		for _, f := range rec.Fields {
			w.writeLine("%s %s;", w.options.API.HandleType, f.Name)
		}
		w.popIndent()
		w.writeLine("} %s;", rec.Name)
	}
	w.popIndent()
	w.writeLine("} %s;", agg)

	return nil
}

// writeDefinitions generates the source text.
func (w *Writer) writeDefinitions() (string, error) {
	w.reset()

	w.writeMarker()

	for _, inc := range w.options.SystemIncludes {
		w.writeLine("#include %s", inc)
	}
	w.writeLine("#include %s", cString(w.options.HeaderName))
	for _, inc := range w.options.SourceIncludes {
		w.writeLine("#include %s", inc)
	}
	w.writeLine("")

	names := w.module.Names
	w.writeLine("%s %s;", names.Aggregate, names.Instance)
	w.writeLine("")

	if err := w.writeFunction(names.Load, w.module.Load); err != nil {
		return "", err
	}
	w.writeLine("")

	if err := w.writeFunction(names.Unload, w.module.Unload); err != nil {
		return "", err
	}

	return w.out.String(), nil
}

// writeFunction writes a void function taking no arguments.
func (w *Writer) writeFunction(name string, body ir.Block) error {
	w.writeLine("void %s (void) {", name)
	w.pushIndent()
	for i, stmt := range body {
		if err := w.writeStatement(stmt); err != nil {
			return fmt.Errorf("%s: statement %d: %w", name, i, err)
		}
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

// writeStatement writes a single statement.
func (w *Writer) writeStatement(stmt ir.Statement) error {
	switch s := stmt.Kind.(type) {
	case ir.StmtLinkProgram:
		program, err := w.fieldRef(s.Record, nil)
		if err != nil {
			return err
		}
		w.writeLine("%s = %s(%s, %s);", program, w.options.API.LinkProgram, cString(s.VertexPath), cString(s.FragmentPath))

	case ir.StmtLookupAttribute:
		return w.writeLookup(s.Record, s.Field, w.options.API.AttribLocation)

	case ir.StmtLookupUniform:
		return w.writeLookup(s.Record, s.Field, w.options.API.UniformLocation)

	case ir.StmtDeleteProgram:
		program, err := w.fieldRef(s.Record, nil)
		if err != nil {
			return err
		}
		w.writeLine("%s(%s);", w.options.API.DeleteProgram, program)

	case ir.StmtResetInstance:
		inst := w.module.Names.Instance
		w.writeLine("memset(&%s, 0, sizeof(%s));", inst, inst)

	case ir.StmtSeparator:
		w.writeLine("")

	default:
		return fmt.Errorf("unsupported statement %T", stmt.Kind)
	}
	return nil
}

// writeLookup writes a location lookup against the record's program.
func (w *Writer) writeLookup(record ir.RecordHandle, field ir.FieldHandle, fn string) error {
	target, err := w.fieldRef(record, &field)
	if err != nil {
		return err
	}
	program, err := w.fieldRef(record, nil)
	if err != nil {
		return err
	}
	rec, _ := w.module.Record(record)
	f, _ := rec.Field(field)
	w.writeLine("%s = %s(%s, %s);", target, fn, program, cString(f.Name))
	return nil
}

// fieldRef returns the C lvalue of a record field, or of its program field if field is nil.
func (w *Writer) fieldRef(record ir.RecordHandle, field *ir.FieldHandle) (string, error) {
	rec, ok := w.module.Record(record)
	if !ok {
		return "", fmt.Errorf("invalid record handle %d", record)
	}

	var handle ir.FieldHandle
	if field != nil {
		handle = *field
	} else {
		handle, ok = rec.Program()
		if !ok {
			return "", fmt.Errorf("record %s has no program field", rec.Name)
		}
	}

	f, ok := rec.Field(handle)
	if !ok {
		return "", fmt.Errorf("invalid field handle %d in record %s", handle, rec.Name)
	}
	return w.module.Names.Instance + "." + rec.Name + "." + f.Name, nil
}

// writeMarker writes the leading comment that marks the file as generated.
func (w *Writer) writeMarker() {
	w.writeLine("/* FILE GENERATED BY %s */", strings.ReplaceAll(w.options.Generator, "*/", "* /"))
	w.writeLine("")
}

// reset clears the output buffer for the next file.
func (w *Writer) reset() {
	w.out.Reset()
	w.indent = 0
}

// writeLine writes an indented line. Empty lines carry no indentation.
func (w *Writer) writeLine(format string, args ...any) {
	if format == "" {
		w.out.WriteByte('\n')
		return
	}
	w.writeIndent()
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString(w.options.Indent)
	}
}

// pushIndent increases indentation.
func (w *Writer) pushIndent() {
	w.indent++
}

// popIndent decreases indentation.
func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}

// cString returns s as a C string literal.
func cString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '?':
			// Avoid trigraphs such as ??/ in older compilers.
			if i+1 < len(s) && s[i+1] == '?' {
				b.WriteString(`\?`)
			} else {
				b.WriteByte(c)
			}
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\%03o`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
