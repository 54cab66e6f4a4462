package assoc

import (
	"fmt"
	"strings"

	"gorm.io/assoc/clause"
	"gorm.io/assoc/schema"
)

// Statement SQL builder state for one compilation
type Statement struct {
	Table    string
	Resolver schema.Resolver
	Clauses  map[string]clause.Clause
	SQL      strings.Builder
	Vars     []interface{}
	Error    error
}

// NewStatement initialize a statement against resolver
func NewStatement(resolver schema.Resolver) *Statement {
	return &Statement{
		Resolver: resolver,
		Clauses:  map[string]clause.Clause{},
	}
}

// WriteString write string
func (stmt *Statement) WriteString(str string) (int, error) {
	return stmt.SQL.WriteString(str)
}

// WriteByte write byte
func (stmt *Statement) WriteByte(c byte) error {
	return stmt.SQL.WriteByte(c)
}

// WriteQuoted write quoted value
func (stmt *Statement) WriteQuoted(value interface{}) {
	stmt.QuoteTo(&stmt.SQL, value)
}

// QuoteTo write quoted value to writer
func (stmt *Statement) QuoteTo(writer clause.Writer, field interface{}) {
	switch v := field.(type) {
	case clause.Table:
		if v.Raw {
			writer.WriteString(v.Name)
		} else {
			writer.WriteByte('`')
			writer.WriteString(v.Name)
			writer.WriteByte('`')
		}

		if v.Alias != "" {
			writer.WriteByte(' ')
			writer.WriteByte('`')
			writer.WriteString(v.Alias)
			writer.WriteByte('`')
		}
	case clause.Column:
		if v.Table != "" {
			writer.WriteByte('`')
			writer.WriteString(v.Table)
			writer.WriteByte('`')
			writer.WriteByte('.')
		}

		switch {
		case v.Name == "*":
			writer.WriteByte('*')
		case v.Raw:
			writer.WriteString(v.Name)
		default:
			writer.WriteByte('`')
			writer.WriteString(v.Name)
			writer.WriteByte('`')
		}

		if v.Alias != "" {
			writer.WriteString(" AS ")
			writer.WriteByte('`')
			writer.WriteString(v.Alias)
			writer.WriteByte('`')
		}
	case string:
		writer.WriteByte('`')
		writer.WriteString(v)
		writer.WriteByte('`')
	default:
		writer.WriteString(fmt.Sprint(field))
	}
}

// AddVar add vars to the statement, writing bind placeholders
func (stmt *Statement) AddVar(writer clause.Writer, vars ...interface{}) {
	for idx, v := range vars {
		if idx > 0 {
			writer.WriteByte(',')
		}

		switch v := v.(type) {
		case clause.Column, clause.Table:
			stmt.QuoteTo(writer, v)
		case clause.Expression:
			v.Build(stmt)
		case []interface{}:
			if len(v) > 0 {
				writer.WriteByte('(')
				stmt.AddVar(writer, v...)
				writer.WriteByte(')')
			} else {
				writer.WriteString("(NULL)")
			}
		default:
			stmt.Vars = append(stmt.Vars, v)
			writer.WriteByte('?')
		}
	}
}

// AddError add error to the statement
func (stmt *Statement) AddError(err error) error {
	if err != nil {
		if stmt.Error == nil {
			stmt.Error = err
		} else {
			stmt.Error = fmt.Errorf("%v; %w", stmt.Error, err)
		}
	}
	return stmt.Error
}

// AddClause add clause, merging with an already added clause of the same name
func (stmt *Statement) AddClause(v clause.Interface) {
	c, ok := stmt.Clauses[v.Name()]
	if !ok {
		c.Name = v.Name()
	}
	v.MergeClause(&c)
	stmt.Clauses[v.Name()] = c
}

// Build write the named clauses in order
func (stmt *Statement) Build(clauses ...string) {
	var firstClauseWritten bool

	for _, name := range clauses {
		if c, ok := stmt.Clauses[name]; ok {
			if firstClauseWritten {
				stmt.WriteByte(' ')
			}

			firstClauseWritten = true
			c.Build(stmt)
		}
	}
}
