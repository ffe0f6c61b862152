package ir

// Module represents a shader table in IR form.
type Module struct {
	// Names holds the identifiers of the generated aggregate and its functions
	Names Names

	// Records holds one record per shader program, in table order
	Records []Record

	// Load is the body of the load function
	Load Block

	// Unload is the body of the unload function
	Unload Block
}

// Names holds the top-level identifiers of a module.
type Names struct {
	Aggregate string // type name of the aggregate structure
	Instance  string // name of the process-wide instance
	Load      string
	Unload    string
}

// DefaultNames returns the identifiers used by the engine the table was written for.
func DefaultNames() Names {
	return Names{
		Aggregate: "Shaders",
		Instance:  "shaders",
		Load:      "shaders_load",
		Unload:    "shaders_unload",
	}
}

// Handle types for referencing IR objects
type (
	RecordHandle uint32
	FieldHandle  uint32
)

// Record represents the nested structure holding the handles of one shader program.
type Record struct {
	Name   string
	Fields []Field
}

// Field represents a single handle slot inside a record.
type Field struct {
	Name string
	Kind FieldKind
}

// FieldKind identifies what a field holds a handle to.
type FieldKind uint8

const (
	FieldProgram   FieldKind = iota // Linked program
	FieldAttribute                  // Per-vertex input location
	FieldUniform                    // Uniform location
)

// String returns a human-readable kind name.
func (k FieldKind) String() string {
	switch k {
	case FieldProgram:
		return "program"
	case FieldAttribute:
		return "attribute"
	case FieldUniform:
		return "uniform"
	default:
		return "unknown"
	}
}

// ProgramField is the name of the field holding the linked program of a record.
const ProgramField = "program"

// Field returns the field referenced by handle, if any.
func (r *Record) Field(handle FieldHandle) (Field, bool) {
	if int(handle) >= len(r.Fields) {
		return Field{}, false
	}
	return r.Fields[handle], true
}

// Program returns the handle of the record's program field.
func (r *Record) Program() (FieldHandle, bool) {
	for i, f := range r.Fields {
		if f.Kind == FieldProgram {
			return FieldHandle(i), true //nolint:gosec // G115: index bounded by len(Fields)
		}
	}
	return 0, false
}

// Record returns the record referenced by handle, if any.
func (m *Module) Record(handle RecordHandle) (*Record, bool) {
	if int(handle) >= len(m.Records) {
		return nil, false
	}
	return &m.Records[handle], true
}

// HandleCount returns the number of handle fields across all records.
func (m *Module) HandleCount() int {
	n := 0
	for i := range m.Records {
		n += len(m.Records[i].Fields)
	}
	return n
}
