package clause

// Clause holds one named part of a statement, e.g. WHERE
type Clause struct {
	Name       string
	Expression Expression
}

// Build build clause
func (c Clause) Build(builder Builder) {
	if c.Name != "" {
		builder.WriteString(c.Name)
		builder.WriteByte(' ')
	}

	if c.Expression != nil {
		c.Expression.Build(builder)
	}
}

// Interface clause interface
type Interface interface {
	Name() string
	Build(Builder)
	MergeClause(*Clause)
}
