// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cgen

// cKeywords contains the C reserved words.
// Based on C89 through C23, plus names the generated code itself relies on.
var cKeywords = map[string]struct{}{
	// C89
	"auto": {}, "break": {}, "case": {}, "char": {}, "const": {}, "continue": {},
	"default": {}, "do": {}, "double": {}, "else": {}, "enum": {}, "extern": {},
	"float": {}, "for": {}, "goto": {}, "if": {}, "int": {}, "long": {},
	"register": {}, "return": {}, "short": {}, "signed": {}, "sizeof": {}, "static": {},
	"struct": {}, "switch": {}, "typedef": {}, "union": {}, "unsigned": {}, "void": {},
	"volatile": {}, "while": {},

	// C99
	"inline": {}, "restrict": {}, "_Bool": {}, "_Complex": {}, "_Imaginary": {},

	// C11
	"_Alignas": {}, "_Alignof": {}, "_Atomic": {}, "_Generic": {}, "_Noreturn": {},
	"_Static_assert": {}, "_Thread_local": {},

	// C23
	"alignas": {}, "alignof": {}, "bool": {}, "constexpr": {}, "false": {}, "nullptr": {},
	"static_assert": {}, "thread_local": {}, "true": {}, "typeof": {}, "typeof_unqual": {},
	"_BitInt": {}, "_Decimal128": {}, "_Decimal32": {}, "_Decimal64": {},

	// Used by generated code
	"memset": {}, "NULL": {},
}

// isKeyword reports whether name is reserved in C.
func isKeyword(name string) bool {
	_, ok := cKeywords[name]
	return ok
}
