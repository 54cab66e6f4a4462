package assoc

import (
	"reflect"

	"gorm.io/assoc/clause"
	"gorm.io/assoc/schema"
)

var namer schema.Namer = schema.NamingStrategy{}

// Association a declarative relationship between two table backed record
// kinds. Origin is the declaring record kind, Dest the associated one, so the
// type system only lets an association attach to a query over Origin rows.
//
// Association values are immutable, every operator returns a new value.
// Sharing and recombining them from multiple goroutines is safe, and nothing
// touches the schema until the request is compiled.
type Association[Origin, Dest any] struct {
	key       string
	condition JoinCondition
	query     JoinQuery
}

// BelongsTo declares an association whose foreign key lives on Origin's table
// and references Dest, e.g. player.team_id -> team.id. originColumn
// disambiguates when several foreign keys point at Dest.
func BelongsTo[Origin, Dest any](originColumn ...string) Association[Origin, Dest] {
	origin, dest := TableOf[Origin](), TableOf[Dest]()

	req := schema.ForeignKeyRequest{OriginTable: origin, DestinationTable: dest}
	if len(originColumn) > 0 {
		req.OriginColumn = originColumn[0]
	}

	return Association[Origin, Dest]{
		key:       dest,
		condition: JoinCondition{Request: req, OriginIsLeft: true},
		query:     JoinQuery{table: dest},
	}
}

// HasOne declares an association whose foreign key lives on Dest's table and
// references Origin
func HasOne[Origin, Dest any](destColumn ...string) Association[Origin, Dest] {
	return hasAssociation[Origin, Dest](destColumn)
}

// HasMany declares a to-many association whose foreign key lives on Dest's
// table and references Origin. It produces the same join shape as HasOne.
func HasMany[Origin, Dest any](destColumn ...string) Association[Origin, Dest] {
	return hasAssociation[Origin, Dest](destColumn)
}

func hasAssociation[Origin, Dest any](destColumn []string) Association[Origin, Dest] {
	origin, dest := TableOf[Origin](), TableOf[Dest]()

	// the stored foreign key is on the destination table
	req := schema.ForeignKeyRequest{OriginTable: dest, DestinationTable: origin}
	if len(destColumn) > 0 {
		req.OriginColumn = destColumn[0]
	}

	return Association[Origin, Dest]{
		key:       dest,
		condition: JoinCondition{Request: req, OriginIsLeft: false},
		query:     JoinQuery{table: dest},
	}
}

// TableOf the table a record kind maps to: its TableName method when
// implemented, otherwise the default naming strategy applied to the type name
func TableOf[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if tabler, ok := reflect.New(t).Interface().(schema.Tabler); ok {
		return tabler.TableName()
	}

	return namer.TableName(t.Name())
}

// Key the label results of this association are consumed under
func (a Association[Origin, Dest]) Key() string {
	return a.key
}

// ForKey renames the key. The join SQL is unchanged, but two associations
// renamed apart are no longer merged when both are requested.
func (a Association[Origin, Dest]) ForKey(name string) Association[Origin, Dest] {
	a.key = name
	return a
}

// Select replaces the columns fetched from the associated table. Calling it
// without arguments strips the selection entirely.
func (a Association[Origin, Dest]) Select(columns ...string) Association[Origin, Dest] {
	a.query.transforms = a.query.transforms.withSelection(columns)
	return a
}

// Filter appends a deferred predicate, accumulated filters are ANDed
func (a Association[Origin, Dest]) Filter(filter Filter) Association[Origin, Dest] {
	a.query.transforms = a.query.transforms.withFilter(filter)
	return a
}

// Where appends a raw SQL predicate with `?` placeholders
func (a Association[Origin, Dest]) Where(sql string, vars ...interface{}) Association[Origin, Dest] {
	return a.Filter(rawFilter(sql, vars))
}

// Order replaces the ordering with a deferred one
func (a Association[Origin, Dest]) Order(ordering Ordering) Association[Origin, Dest] {
	a.query.transforms = a.query.transforms.withOrdering(ordering)
	return a
}

// OrderBy replaces the ordering with the named columns of the associated
// table, ascending
func (a Association[Origin, Dest]) OrderBy(columns ...string) Association[Origin, Dest] {
	return a.Order(columnsOrdering(columns))
}

// Reversed flips the ordering direction, a no-op when no ordering is set
func (a Association[Origin, Dest]) Reversed() Association[Origin, Dest] {
	a.query.transforms = a.query.transforms.withReversed()
	return a
}

// Aliased binds the associated table occurrence to alias so predicates built
// outside the association can reference it
func (a Association[Origin, Dest]) Aliased(alias *TableAlias) Association[Origin, Dest] {
	a.query.transforms = a.query.transforms.withAlias(alias)
	return a
}

func (a Association[Origin, Dest]) node(op JoinOperator) joinNode {
	return joinNode{key: a.key, operator: op, condition: a.condition, query: a.query}
}

// Including grafts child onto a, keeping the child's selection
func Including[Origin, Dest, Child any](a Association[Origin, Dest], op JoinOperator, child Association[Dest, Child]) Association[Origin, Dest] {
	a.query = a.query.appendJoin(child.node(op))
	return a
}

// Joining grafts child onto a with its selection stripped: the joined columns
// only serve filtering, ordering and existence
func Joining[Origin, Dest, Child any](a Association[Origin, Dest], op JoinOperator, child Association[Dest, Child]) Association[Origin, Dest] {
	a.query = a.query.appendJoin(child.Select().node(op))
	return a
}

func rawFilter(sql string, vars []interface{}) Filter {
	return func(Resolution) (clause.Expression, error) {
		return clause.Expr{SQL: sql, Vars: vars}, nil
	}
}

func columnsOrdering(columns []string) Ordering {
	return func(res Resolution) ([]clause.OrderByColumn, error) {
		ordering := make([]clause.OrderByColumn, 0, len(columns))
		for _, column := range columns {
			ordering = append(ordering, clause.OrderByColumn{Column: res.Column(column)})
		}
		return ordering, nil
	}
}
