package clause

// Expression expression interface
type Expression interface {
	Build(builder Builder)
}

// Writer write interface
type Writer interface {
	WriteByte(byte) error
	WriteString(string) (int, error)
}

// Builder builder interface
type Builder interface {
	Writer
	WriteQuoted(field interface{})
	AddVar(Writer, ...interface{})
	AddError(error) error
}

// Column quote with name
type Column struct {
	Table string
	Name  string
	Alias string
	Raw   bool
}

// Table quote with name
type Table struct {
	Name  string
	Alias string
	Raw   bool
}

// Expr raw expression, `?` placeholders are replaced with vars
type Expr struct {
	SQL  string
	Vars []interface{}
}

// Build build raw expression
func (expr Expr) Build(builder Builder) {
	var idx int

	for _, v := range []byte(expr.SQL) {
		if v == '?' && len(expr.Vars) > idx {
			builder.AddVar(builder, expr.Vars[idx])
			idx++
		} else {
			builder.WriteByte(v)
		}
	}

	if idx < len(expr.Vars) {
		for _, v := range expr.Vars[idx:] {
			builder.AddVar(builder, v)
		}
	}
}

// Eq equal to for where
type Eq struct {
	Column interface{}
	Value  interface{}
}

func (eq Eq) Build(builder Builder) {
	builder.WriteQuoted(eq.Column)

	switch eq.Value.(type) {
	case nil:
		builder.WriteString(" IS NULL")
	case Column:
		builder.WriteString(" = ")
		builder.WriteQuoted(eq.Value)
	default:
		builder.WriteString(" = ")
		builder.AddVar(builder, eq.Value)
	}
}

// Neq not equal to for where
type Neq Eq

func (neq Neq) Build(builder Builder) {
	builder.WriteQuoted(neq.Column)

	switch neq.Value.(type) {
	case nil:
		builder.WriteString(" IS NOT NULL")
	case Column:
		builder.WriteString(" <> ")
		builder.WriteQuoted(neq.Value)
	default:
		builder.WriteString(" <> ")
		builder.AddVar(builder, neq.Value)
	}
}
