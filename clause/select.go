package clause

// Select selected columns of a query
type Select struct {
	Columns []Column
}

func (s Select) Name() string {
	return "SELECT"
}

func (s Select) Build(builder Builder) {
	if len(s.Columns) > 0 {
		for idx, column := range s.Columns {
			if idx > 0 {
				builder.WriteByte(',')
			}
			builder.WriteQuoted(column)
		}
	} else {
		builder.WriteByte('*')
	}
}

// MergeClause merge select clauses, the later clause wins
func (s Select) MergeClause(clause *Clause) {
	clause.Expression = s
}
