package ir

import (
	"fmt"
)

// ValidationError represents a validation error.
type ValidationError struct {
	Message string
	// Optional context
	Function  string
	Statement int
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Function != "" {
		if e.Statement >= 0 {
			return fmt.Sprintf("in function %s, statement %d: %s", e.Function, e.Statement, e.Message)
		}
		return fmt.Sprintf("in function %s: %s", e.Function, e.Message)
	}
	return e.Message
}

// Validator validates IR modules.
type Validator struct {
	module  *Module
	errors  []ValidationError
	context validationContext
}

// validationContext holds current validation context.
type validationContext struct {
	function  string
	statement int
}

// Validate checks the IR module for correctness.
// Returns validation errors if any, or nil if module is valid.
func Validate(module *Module) ([]ValidationError, error) {
	if module == nil {
		return nil, fmt.Errorf("module is nil")
	}

	v := &Validator{
		module:  module,
		errors:  make([]ValidationError, 0),
		context: validationContext{statement: -1},
	}

	v.ValidateModule()

	if len(v.errors) > 0 {
		return v.errors, nil
	}
	return nil, nil
}

// ValidateModule validates the complete module.
func (v *Validator) ValidateModule() {
	v.validateNames()
	v.validateRecords()
	v.validateLoad()
	v.validateUnload()
}

// validateNames checks the top-level identifiers.
func (v *Validator) validateNames() {
	names := v.module.Names
	seen := make(map[string]string, 4)
	for _, n := range []struct{ role, name string }{
		{"aggregate", names.Aggregate},
		{"instance", names.Instance},
		{"load function", names.Load},
		{"unload function", names.Unload},
	} {
		if !IsIdentifier(n.name) {
			v.addError(fmt.Sprintf("%s name %q is not a valid identifier", n.role, n.name))
			continue
		}
		if prev, dup := seen[n.name]; dup {
			v.addError(fmt.Sprintf("%s name %q is already used as %s name", n.role, n.name, prev))
			continue
		}
		seen[n.name] = n.role
	}
}

// validateRecords checks record and field names.
func (v *Validator) validateRecords() {
	seen := make(map[string]int, len(v.module.Records))
	for i := range v.module.Records {
		rec := &v.module.Records[i]
		if !IsIdentifier(rec.Name) {
			v.addError(fmt.Sprintf("record %d: name %q is not a valid identifier", i, rec.Name))
		} else if prev, dup := seen[rec.Name]; dup {
			v.addError(fmt.Sprintf("record %d: duplicate name %q (first used by record %d)", i, rec.Name, prev))
		} else {
			seen[rec.Name] = i
		}
		v.validateFields(i, rec)
	}
}

// validateFields checks the fields of a single record.
func (v *Validator) validateFields(index int, rec *Record) {
	programs := 0
	fields := make(map[string]FieldKind, len(rec.Fields))
	for _, f := range rec.Fields {
		if f.Kind == FieldProgram {
			programs++
		}
		if !IsIdentifier(f.Name) {
			v.addError(fmt.Sprintf("record %d (%s): %s name %q is not a valid identifier", index, rec.Name, f.Kind, f.Name))
			continue
		}
		if prev, dup := fields[f.Name]; dup {
			v.addError(fmt.Sprintf("record %d (%s): %s %q clashes with %s field of the same name", index, rec.Name, f.Kind, f.Name, prev))
			continue
		}
		fields[f.Name] = f.Kind
	}
	if programs != 1 {
		v.addError(fmt.Sprintf("record %d (%s): expected exactly one program field, got %d", index, rec.Name, programs))
	}
}

// validateLoad checks that every field is assigned exactly once and that
// lookups happen only after the record's program has been linked.
//
//nolint:gocognit // Each statement kind has its own ordering rule
func (v *Validator) validateLoad() {
	v.context.function = v.module.Names.Load
	defer v.resetContext()

	assigned := make([][]bool, len(v.module.Records))
	for i := range v.module.Records {
		assigned[i] = make([]bool, len(v.module.Records[i].Fields))
	}

	for i, stmt := range v.module.Load {
		v.context.statement = i
		switch s := stmt.Kind.(type) {
		case StmtLinkProgram:
			rec, ok := v.record(s.Record)
			if !ok {
				continue
			}
			program, ok := rec.Program()
			if !ok {
				continue
			}
			if assigned[s.Record][program] {
				v.addError(fmt.Sprintf("program of %s is linked more than once", rec.Name))
			}
			assigned[s.Record][program] = true

		case StmtLookupAttribute:
			v.checkLookup(assigned, s.Record, s.Field, FieldAttribute)

		case StmtLookupUniform:
			v.checkLookup(assigned, s.Record, s.Field, FieldUniform)

		case StmtSeparator:

		case nil:
			v.addError("statement has nil kind")

		default:
			v.addError(fmt.Sprintf("unexpected statement %T in load function", s))
		}
	}

	v.context.statement = -1
	for r, fields := range assigned {
		for f, ok := range fields {
			if !ok {
				rec := &v.module.Records[r]
				v.addError(fmt.Sprintf("%s field %s.%s is never assigned", rec.Fields[f].Kind, rec.Name, rec.Fields[f].Name))
			}
		}
	}
}

// checkLookup validates a single attribute or uniform lookup.
func (v *Validator) checkLookup(assigned [][]bool, handle RecordHandle, field FieldHandle, kind FieldKind) {
	rec, ok := v.record(handle)
	if !ok {
		return
	}
	f, ok := rec.Field(field)
	if !ok {
		v.addError(fmt.Sprintf("%s lookup references field %d of %s, which has %d fields", kind, field, rec.Name, len(rec.Fields)))
		return
	}
	if f.Kind != kind {
		v.addError(fmt.Sprintf("%s lookup stores into %s field %s.%s", kind, f.Kind, rec.Name, f.Name))
		return
	}
	if program, ok := rec.Program(); ok && !assigned[handle][program] {
		v.addError(fmt.Sprintf("%s %q of %s is looked up before its program is linked", kind, f.Name, rec.Name))
	}
	if assigned[handle][field] {
		v.addError(fmt.Sprintf("%s field %s.%s is assigned more than once", kind, rec.Name, f.Name))
	}
	assigned[handle][field] = true
}

// validateUnload checks that each program is deleted once and that the
// instance is reset exactly once, at the end.
func (v *Validator) validateUnload() {
	v.context.function = v.module.Names.Unload
	defer v.resetContext()

	deleted := make([]bool, len(v.module.Records))
	resets := 0
	for i, stmt := range v.module.Unload {
		v.context.statement = i
		switch s := stmt.Kind.(type) {
		case StmtDeleteProgram:
			rec, ok := v.record(s.Record)
			if !ok {
				continue
			}
			if deleted[s.Record] {
				v.addError(fmt.Sprintf("program of %s is deleted more than once", rec.Name))
			}
			if resets > 0 {
				v.addError(fmt.Sprintf("program of %s is deleted after the instance was reset", rec.Name))
			}
			deleted[s.Record] = true

		case StmtResetInstance:
			resets++

		case StmtSeparator:

		case nil:
			v.addError("statement has nil kind")

		default:
			v.addError(fmt.Sprintf("unexpected statement %T in unload function", s))
		}
	}

	v.context.statement = -1
	for r, ok := range deleted {
		if !ok {
			v.addError(fmt.Sprintf("program of %s is never deleted", v.module.Records[r].Name))
		}
	}
	if resets != 1 {
		v.addError(fmt.Sprintf("expected exactly one instance reset, got %d", resets))
	}
}

// record resolves a record handle, reporting an error when it is out of range.
func (v *Validator) record(handle RecordHandle) (*Record, bool) {
	rec, ok := v.module.Record(handle)
	if !ok {
		v.addError(fmt.Sprintf("invalid record handle %d (module has %d records)", handle, len(v.module.Records)))
	}
	return rec, ok
}

func (v *Validator) resetContext() {
	v.context = validationContext{statement: -1}
}

// addError adds a validation error.
func (v *Validator) addError(msg string) {
	v.errors = append(v.errors, ValidationError{
		Message:   msg,
		Function:  v.context.function,
		Statement: v.context.statement,
	})
}

// IsIdentifier reports whether name is a C-style identifier:
// a letter or underscore followed by letters, digits or underscores.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
