package assoc

import (
	"gorm.io/assoc/clause"
)

// JoinOperator whether a joined row must exist for the parent row to be kept
type JoinOperator string

const (
	// Required compiles to an INNER JOIN
	Required JoinOperator = "INNER"
	// Optional compiles to a LEFT JOIN
	Optional JoinOperator = "LEFT"
)

// JoinQuery one node of a query tree: a source table, its deferred transform
// pipeline and its child joins. Values are immutable, grafting copies and
// rebuilds instead of linking back to a shared parent.
type JoinQuery struct {
	table      string
	transforms transforms
	joins      []joinNode
}

type joinNode struct {
	key       string
	operator  JoinOperator
	condition JoinCondition
	query     JoinQuery
}

// appendJoin grafts a child join, collapsing it into a structurally equal
// sibling when key, operator and condition all match and the alias bindings
// do not keep the occurrences deliberately apart. Merging here keeps the
// same association requested twice from emitting duplicate JOIN clauses.
func (q JoinQuery) appendJoin(node joinNode) JoinQuery {
	joins := make([]joinNode, len(q.joins), len(q.joins)+1)
	copy(joins, q.joins)

	for idx, sibling := range joins {
		if sibling.key == node.key && sibling.operator == node.operator &&
			sibling.condition == node.condition &&
			aliasCompatible(sibling.query.transforms.alias, node.query.transforms.alias) {
			joins[idx] = sibling.merge(node)
			q.joins = joins
			return q
		}
	}

	q.joins = append(joins, node)
	return q
}

// merge combines the pipelines and recursively merges the grandchildren
func (node joinNode) merge(other joinNode) joinNode {
	node.query.transforms = node.query.transforms.merge(other.query.transforms)
	for _, grandchild := range other.query.joins {
		node.query = node.query.appendJoin(grandchild)
	}
	return node
}

// compile resolves the whole tree into stmt: aliases are assigned, each join
// condition is resolved between its two resolved names, deferred transforms
// run, then the clauses are emitted
func (q JoinQuery) compile(stmt *Statement) error {
	c := &compilation{stmt: stmt, names: newAliasNames()}
	q.reserveAliases(c.names)

	rootName := c.names.assign(q.table, q.transforms.alias)
	if err := c.node(rootName, q.transforms); err != nil {
		return err
	}
	if err := c.walk(rootName, q.joins); err != nil {
		return err
	}

	stmt.Table = rootName
	stmt.AddClause(clause.Select{Columns: c.selects})
	stmt.AddClause(clause.From{
		Tables: []clause.Table{tableClause(q.table, rootName)},
		Joins:  c.joins,
	})

	if len(c.filters) > 0 {
		stmt.AddClause(clause.Where{Exprs: c.filters})
	}
	if len(c.orderings) > 0 {
		stmt.AddClause(clause.OrderBy{Columns: c.orderings})
	}

	stmt.Build("SELECT", "FROM", "WHERE", "ORDER BY")
	return stmt.Error
}

func (q JoinQuery) reserveAliases(names *aliasNames) {
	if alias := q.transforms.alias; alias != nil && alias.name != "" {
		names.reserve(alias.name)
	}
	for _, node := range q.joins {
		node.query.reserveAliases(names)
	}
}

type compilation struct {
	stmt      *Statement
	names     *aliasNames
	selects   []clause.Column
	joins     []clause.Join
	filters   []clause.Expression
	orderings []clause.OrderByColumn
}

// node resolves one node's pipeline against its resolved table name
func (c *compilation) node(name string, t transforms) error {
	res := Resolution{Resolver: c.stmt.Resolver, Table: name}

	if t.selectionSet {
		for _, column := range t.selection {
			c.selects = append(c.selects, clause.Column{Table: name, Name: column})
		}
	} else {
		c.selects = append(c.selects, clause.Column{Table: name, Name: "*"})
	}

	for _, filter := range t.filters {
		expr, err := filter(res)
		if err != nil {
			return err
		}
		if expr != nil {
			c.filters = append(c.filters, expr)
		}
	}

	if t.orderingSet {
		columns, err := t.ordering(res)
		if err != nil {
			return err
		}
		if t.reversed {
			for idx := range columns {
				columns[idx].Desc = !columns[idx].Desc
			}
		}
		c.orderings = append(c.orderings, columns...)
	}

	return nil
}

// walk emits joins depth first, parent orderings and filters come before the
// children's
func (c *compilation) walk(parent string, nodes []joinNode) error {
	for _, node := range nodes {
		name := c.names.assign(node.query.table, node.query.transforms.alias)

		on, err := node.condition.resolve(c.stmt.Resolver, parent, name)
		if err != nil {
			return err
		}

		c.joins = append(c.joins, clause.Join{
			Type:  clause.JoinType(node.operator),
			Table: tableClause(node.query.table, name),
			ON:    clause.Where{Exprs: []clause.Expression{on}},
		})

		if err := c.node(name, node.query.transforms); err != nil {
			return err
		}
		if err := c.walk(name, node.query.joins); err != nil {
			return err
		}
	}
	return nil
}

// tableClause the FROM/JOIN table reference, the alias is only emitted when
// it differs from the bare table name
func tableClause(table, name string) clause.Table {
	if name != table {
		return clause.Table{Name: table, Alias: name}
	}
	return clause.Table{Name: table}
}
