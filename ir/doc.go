// Package ir defines the intermediate representation for shadergen.
//
// The IR describes the generated code independently of the target
// language. A backend only has to render it; all decisions about field
// order and statement order are taken when the IR is built.
//
// # Structure
//
// The IR is organized around a Module type that contains:
//   - Names: identifiers of the aggregate type, its instance and the load/unload functions
//   - Records: one nested record per shader program, each a list of handle fields
//   - Load: statements that link programs and resolve attribute/uniform locations
//   - Unload: statements that delete programs and reset the instance
//
// # Translation Pipeline
//
//	Shader table (JSON or built-in) → IR → Target (C header + source)
//
// Validate checks the invariants every backend relies on, most notably
// that each field is assigned exactly once and that a program is linked
// before any lookup against it.
package ir
