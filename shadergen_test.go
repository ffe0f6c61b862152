package shadergen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/shadergen/table"
)

// TestGenerateSolid checks the single-program scenario end to end.
func TestGenerateSolid(t *testing.T) {
	tbl := &table.Table{Shaders: []table.Shader{{
		Name:         "solid",
		VertexPath:   "solid.vert",
		FragmentPath: "solid.frag",
		Attributes:   []string{"vertex"},
		Uniforms:     []string{"projection", "color"},
	}}}

	a, err := Generate(tbl, DefaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if a.HeaderName != "shaders.gen.h" || a.SourceName != "shaders.gen.c" {
		t.Errorf("file names = %q, %q", a.HeaderName, a.SourceName)
	}
	if a.Records != 1 || a.Handles != 4 {
		t.Errorf("Records/Handles = %d/%d, want 1/4", a.Records, a.Handles)
	}

	for _, field := range []string{"program", "vertex", "projection", "color"} {
		if !strings.Contains(a.Declarations, "      GLuint "+field+";\n") {
			t.Errorf("declarations missing field %s", field)
		}
	}

	load := []string{
		`shaders.solid.program = gl_program_vert_frag("solid.vert", "solid.frag");`,
		`shaders.solid.vertex = glGetAttribLocation(shaders.solid.program, "vertex");`,
		`shaders.solid.projection = glGetUniformLocation(shaders.solid.program, "projection");`,
		`shaders.solid.color = glGetUniformLocation(shaders.solid.program, "color");`,
	}
	last := -1
	for _, line := range load {
		idx := strings.Index(a.Definitions, line)
		if idx < 0 {
			t.Fatalf("definitions missing %q:\n%s", line, a.Definitions)
		}
		if idx < last {
			t.Errorf("%q is out of order", line)
		}
		last = idx
	}
}

// TestGenerateDefaultTable generates the built-in engine table.
func TestGenerateDefaultTable(t *testing.T) {
	a, err := Generate(table.Default(), DefaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if a.Records != 11 {
		t.Errorf("Records = %d, want 11", a.Records)
	}
	if a.Handles != 63 {
		t.Errorf("Handles = %d, want 63", a.Handles)
	}
}

// TestGenerateIdempotent runs the generator twice over the same table.
func TestGenerateIdempotent(t *testing.T) {
	first, err := Generate(table.Default(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Generate(table.Default(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("generator output differs between runs")
	}
}

// TestGenerateRejectsDuplicateNames checks that duplicates fail at generation time.
func TestGenerateRejectsDuplicateNames(t *testing.T) {
	tbl := table.Default()
	tbl.Shaders = append(tbl.Shaders, tbl.Shaders[2])

	_, err := Generate(tbl, DefaultOptions())
	if err == nil {
		t.Fatal("Expected error for duplicate shader names, got nil")
	}
	if !strings.Contains(err.Error(), `duplicate name "solid"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestGenerateWithoutValidation still catches names C cannot express.
func TestGenerateWithoutValidation(t *testing.T) {
	tbl := &table.Table{Shaders: []table.Shader{{Name: "bad name"}}}
	opts := DefaultOptions()
	opts.Validate = false

	_, err := Generate(tbl, opts)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "C generation error") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestGenerateZeroOptions falls back to default names and file names.
func TestGenerateZeroOptions(t *testing.T) {
	a, err := Generate(table.Default(), Options{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if a.HeaderName != "shaders.gen.h" || a.SourceName != "shaders.gen.c" {
		t.Errorf("file names = %q, %q", a.HeaderName, a.SourceName)
	}
	if !strings.Contains(a.Declarations, "extern Shaders shaders;") {
		t.Errorf("declarations do not use default names:\n%s", a.Declarations)
	}
}

// TestWriteFilesOverwrites checks that previous content is fully replaced.
func TestWriteFilesOverwrites(t *testing.T) {
	dir := t.TempDir()
	stale := strings.Repeat("stale content\n", 1000)
	for _, name := range []string{"shaders.gen.h", "shaders.gen.c"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(stale), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	a, err := Generate(table.Default(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if err := a.WriteFiles(dir); err != nil {
		t.Fatalf("WriteFiles failed: %v", err)
	}

	header, err := os.ReadFile(filepath.Join(dir, "shaders.gen.h"))
	if err != nil {
		t.Fatal(err)
	}
	if string(header) != a.Declarations {
		t.Error("header content does not match declarations")
	}
	source, err := os.ReadFile(filepath.Join(dir, "shaders.gen.c"))
	if err != nil {
		t.Fatal(err)
	}
	if string(source) != a.Definitions {
		t.Error("source content does not match definitions")
	}
}

func TestWriteFilesMissingDir(t *testing.T) {
	a, err := Generate(table.Default(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if err := a.WriteFiles(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error writing into a missing directory, got nil")
	}
}

// TestArchiveRoundTrip formats the artifacts as txtar and reads them back.
func TestArchiveRoundTrip(t *testing.T) {
	a, err := Generate(table.Default(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	data := a.Archive()
	if !strings.HasPrefix(string(data), "shadergen: 11 records, 63 handles\n-- shaders.gen.h --\n") {
		t.Errorf("unexpected archive prefix:\n%.120s", data)
	}

	got, err := ParseArchive(data)
	if err != nil {
		t.Fatalf("ParseArchive failed: %v", err)
	}
	if got.HeaderName != a.HeaderName || got.SourceName != a.SourceName {
		t.Errorf("names = %q, %q", got.HeaderName, got.SourceName)
	}
	if got.Declarations != a.Declarations {
		t.Error("declarations changed in round trip")
	}
	if got.Definitions != a.Definitions {
		t.Error("definitions changed in round trip")
	}
}

func TestParseArchiveWrongFileCount(t *testing.T) {
	if _, err := ParseArchive([]byte("-- only.h --\n")); err == nil {
		t.Error("Expected error for single-file archive, got nil")
	}
}
