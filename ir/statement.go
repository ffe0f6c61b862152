package ir

// Statement represents a statement in the body of the load or unload function.
type Statement struct {
	Kind StatementKind
}

// StatementKind represents the different kinds of statements.
type StatementKind interface {
	statementKind()
}

// Block represents a sequence of statements executed in order.
type Block []Statement

// StmtLinkProgram compiles and links a program from a vertex and a fragment
// shader and stores the result in the record's program field.
type StmtLinkProgram struct {
	Record       RecordHandle
	VertexPath   string
	FragmentPath string
}

func (StmtLinkProgram) statementKind() {}

// StmtLookupAttribute resolves an attribute location against the record's
// program and stores it in Field. The looked up name is the field name.
type StmtLookupAttribute struct {
	Record RecordHandle
	Field  FieldHandle
}

func (StmtLookupAttribute) statementKind() {}

// StmtLookupUniform resolves a uniform location against the record's
// program and stores it in Field. The looked up name is the field name.
type StmtLookupUniform struct {
	Record RecordHandle
	Field  FieldHandle
}

func (StmtLookupUniform) statementKind() {}

// StmtDeleteProgram releases the record's program.
type StmtDeleteProgram struct {
	Record RecordHandle
}

func (StmtDeleteProgram) statementKind() {}

// StmtResetInstance zeroes the whole aggregate instance.
type StmtResetInstance struct{}

func (StmtResetInstance) statementKind() {}

// StmtSeparator has no effect. Backends render it as a blank line.
type StmtSeparator struct{}

func (StmtSeparator) statementKind() {}
