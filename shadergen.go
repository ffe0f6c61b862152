// Package shadergen generates the C glue that binds a table of shader
// programs to an OpenGL engine.
//
// For every program in the table the generator declares a nested struct of
// handles (the linked program, then one handle per attribute and per
// uniform) inside a single aggregate, and defines a load function that
// links each program and resolves its locations, and an unload function
// that deletes every program and zeroes the aggregate.
//
// Example usage:
//
//	artifacts, err := shadergen.Generate(table.Default(), shadergen.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := artifacts.WriteFiles("src"); err != nil {
//	    log.Fatal(err)
//	}
//
// The lower-level stages are available separately:
//
//	module, _ := table.Lower(tbl)
//	errs, _ := ir.Validate(module)
//	out, _ := cgen.Compile(module, cgen.DefaultOptions())
package shadergen

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/txtar"

	"github.com/gogpu/shadergen/cgen"
	"github.com/gogpu/shadergen/ir"
	"github.com/gogpu/shadergen/table"
)

// Options configures generation.
type Options struct {
	// Names are the top-level identifiers of the generated code.
	Names ir.Names

	// C configures the C backend. C.HeaderName is also the file name of the declarations.
	C cgen.Options

	// SourceName is the file name of the definitions (default: shaders.gen.c).
	SourceName string

	// Validate enables IR validation before code generation
	Validate bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Names:      ir.DefaultNames(),
		C:          cgen.DefaultOptions(),
		SourceName: "shaders.gen.c",
		Validate:   true,
	}
}

// Artifacts holds the generated declarations and definitions files.
type Artifacts struct {
	HeaderName   string
	SourceName   string
	Declarations string
	Definitions  string

	// Records and Handles count the shader records and their handle fields.
	Records int
	Handles int
}

// Generate turns a shader table into C declarations and definitions.
//
// The pipeline is:
//  1. Lower the table to IR
//  2. Validate IR (if enabled)
//  3. Generate C code
func Generate(t *table.Table, opts Options) (Artifacts, error) {
	if opts.Names == (ir.Names{}) {
		opts.Names = ir.DefaultNames()
	}
	if opts.SourceName == "" {
		opts.SourceName = DefaultOptions().SourceName
	}
	if opts.C.HeaderName == "" {
		opts.C.HeaderName = cgen.DefaultOptions().HeaderName
	}

	module, err := table.LowerWithNames(t, opts.Names)
	if err != nil {
		return Artifacts{}, fmt.Errorf("lowering error: %w", err)
	}

	if opts.Validate {
		if err := Validate(module); err != nil {
			return Artifacts{}, err
		}
	}

	out, err := cgen.Compile(module, opts.C)
	if err != nil {
		return Artifacts{}, fmt.Errorf("C generation error: %w", err)
	}

	return Artifacts{
		HeaderName:   opts.C.HeaderName,
		SourceName:   opts.SourceName,
		Declarations: out.Declarations,
		Definitions:  out.Definitions,
		Records:      out.Records,
		Handles:      out.Handles,
	}, nil
}

// Validate validates an IR module and returns the first validation error, if any.
// The returned error reports how many problems were found in total.
func Validate(module *ir.Module) error {
	validationErrors, err := ir.Validate(module)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	switch len(validationErrors) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("validation failed: %w", &validationErrors[0])
	default:
		return fmt.Errorf("validation failed: %w (and %d more)", &validationErrors[0], len(validationErrors)-1)
	}
}

// WriteFiles writes both files into dir, replacing any previous content.
func (a Artifacts) WriteFiles(dir string) error {
	for _, f := range a.files() {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Data, 0o644); err != nil { //nolint:gosec // G306: generated sources are world-readable
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

// Archive returns both files as a txtar archive, declarations first.
func (a Artifacts) Archive() []byte {
	return txtar.Format(&txtar.Archive{
		Comment: []byte(fmt.Sprintf("shadergen: %d records, %d handles\n", a.Records, a.Handles)),
		Files:   a.files(),
	})
}

// ParseArchive reads artifacts back from the output of Archive.
// Record and handle counts are not restored.
func ParseArchive(data []byte) (Artifacts, error) {
	ar := txtar.Parse(data)
	if len(ar.Files) != 2 {
		return Artifacts{}, fmt.Errorf("archive: expected 2 files, got %d", len(ar.Files))
	}
	return Artifacts{
		HeaderName:   ar.Files[0].Name,
		SourceName:   ar.Files[1].Name,
		Declarations: string(ar.Files[0].Data),
		Definitions:  string(ar.Files[1].Data),
	}, nil
}

func (a Artifacts) files() []txtar.File {
	return []txtar.File{
		{Name: a.HeaderName, Data: []byte(a.Declarations)},
		{Name: a.SourceName, Data: []byte(a.Definitions)},
	}
}
