package assoc

import (
	"fmt"
	"reflect"
	"strings"

	"gorm.io/assoc/clause"
	"gorm.io/assoc/schema"
)

// Request a composable query over rows of one record kind. A request owns a
// join query tree, every operator returns a new value, so requests can be
// shared and specialized independently.
type Request[T any] struct {
	query JoinQuery
}

// All a request for every row of T's table
func All[T any]() Request[T] {
	return Request[T]{query: JoinQuery{table: TableOf[T]()}}
}

// Select replaces the selected columns, calling it without arguments strips
// the selection
func (r Request[T]) Select(columns ...string) Request[T] {
	r.query.transforms = r.query.transforms.withSelection(columns)
	return r
}

// Filter appends a deferred predicate, accumulated filters are ANDed
func (r Request[T]) Filter(filter Filter) Request[T] {
	r.query.transforms = r.query.transforms.withFilter(filter)
	return r
}

// Where appends a raw SQL predicate with `?` placeholders
func (r Request[T]) Where(sql string, vars ...interface{}) Request[T] {
	return r.Filter(rawFilter(sql, vars))
}

// Order replaces the ordering with a deferred one
func (r Request[T]) Order(ordering Ordering) Request[T] {
	r.query.transforms = r.query.transforms.withOrdering(ordering)
	return r
}

// OrderBy replaces the ordering with the named columns, ascending
func (r Request[T]) OrderBy(columns ...string) Request[T] {
	return r.Order(columnsOrdering(columns))
}

// Reversed flips the ordering direction, a no-op when no ordering is set
func (r Request[T]) Reversed() Request[T] {
	r.query.transforms = r.query.transforms.withReversed()
	return r
}

// Aliased binds the request's own table occurrence to alias
func (r Request[T]) Aliased(alias *TableAlias) Request[T] {
	r.query.transforms = r.query.transforms.withAlias(alias)
	return r
}

// TableAlias the alias bound to the request's own table, nil when unbound
func (r Request[T]) TableAlias() *TableAlias {
	return r.query.transforms.alias
}

// Include grafts an association onto the request, selecting its columns
// alongside the request's own
func Include[T, Dest any](r Request[T], op JoinOperator, a Association[T, Dest]) Request[T] {
	r.query = r.query.appendJoin(a.node(op))
	return r
}

// Join grafts an association onto the request with its selection stripped
func Join[T, Dest any](r Request[T], op JoinOperator, a Association[T, Dest]) Request[T] {
	r.query = r.query.appendJoin(a.Select().node(op))
	return r
}

// Build compile the request into stmt
func (r Request[T]) Build(stmt *Statement) error {
	if stmt.Resolver == nil {
		return stmt.AddError(ErrMissingResolver)
	}
	if err := r.query.compile(stmt); err != nil {
		return stmt.AddError(err)
	}
	return stmt.Error
}

// ToSQL compile the request against resolver, returning the SQL text and the
// ordered bind variables
func (r Request[T]) ToSQL(resolver schema.Resolver) (string, []interface{}, error) {
	stmt := NewStatement(resolver)
	if err := r.Build(stmt); err != nil {
		return "", nil, err
	}
	return strings.TrimSpace(stmt.SQL.String()), stmt.Vars, nil
}

// RequestFor derive a request for the rows associated with record through a:
// the foreign key is resolved eagerly, each pair becomes an equality between
// the associated column and the record's current value, and the associated
// table keeps the association's alias binding so later predicates can refer
// to it. Records whose join columns are unset cannot anchor a request.
func RequestFor[Origin, Dest any](resolver schema.Resolver, record Origin, a Association[Origin, Dest]) (Request[Dest], error) {
	var zero Request[Dest]

	if resolver == nil {
		return zero, ErrMissingResolver
	}

	refs, err := resolver.ResolveForeignKey(a.condition.Request)
	if err != nil {
		return zero, err
	}
	if len(refs) == 0 {
		return zero, fmt.Errorf("%w for %s", ErrEmptyJoinCondition, a.query.table)
	}

	alias := a.query.transforms.alias
	if alias == nil {
		alias = Alias(a.query.table)
	}

	r := Request[Dest]{query: a.query}.Aliased(alias)

	originTable := TableOf[Origin]()
	for _, ref := range refs {
		recordColumn, destColumn := ref.OriginColumn, ref.DestinationColumn
		if !a.condition.OriginIsLeft {
			recordColumn, destColumn = ref.DestinationColumn, ref.OriginColumn
		}

		value, err := recordColumnValue(record, originTable, recordColumn)
		if err != nil {
			return zero, err
		}

		column := alias.Column(destColumn)
		r = r.Filter(func(Resolution) (clause.Expression, error) {
			return clause.Eq{Column: column, Value: value}, nil
		})
	}

	return r, nil
}

// recordColumnValue read the struct field mapping to column off record
func recordColumnValue(record interface{}, table, column string) (interface{}, error) {
	value := reflect.ValueOf(record)
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil, fmt.Errorf("%w: %s.%s", ErrRecordKeyUnset, table, column)
		}
		value = value.Elem()
	}

	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("record for %s must be a struct, got %s", table, value.Kind())
	}

	field := value.FieldByName(namer.SchemaName(column))
	if !field.IsValid() {
		t := value.Type()
		for i := 0; i < t.NumField(); i++ {
			if namer.ColumnName(table, t.Field(i).Name) == column {
				field = value.Field(i)
				break
			}
		}
	}

	if !field.IsValid() {
		return nil, fmt.Errorf("record for %s has no field for column %s", table, column)
	}

	for field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return nil, fmt.Errorf("%w: %s.%s", ErrRecordKeyUnset, table, column)
		}
		field = field.Elem()
	}

	if field.IsZero() {
		return nil, fmt.Errorf("%w: %s.%s", ErrRecordKeyUnset, table, column)
	}

	return field.Interface(), nil
}
