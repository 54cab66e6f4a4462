package assoc

import (
	"gorm.io/assoc/clause"
	"gorm.io/assoc/schema"
)

// Resolution the compilation context handed to deferred filters and
// orderings: the schema resolver and the resolved name of the table the
// transform is scoped to
type Resolution struct {
	Resolver schema.Resolver
	Table    string
}

// Column qualify a column with the scoped table's resolved name
func (res Resolution) Column(name string) clause.Column {
	return clause.Column{Table: res.Table, Name: name}
}

// Filter a deferred predicate, resolved at compilation time
type Filter func(res Resolution) (clause.Expression, error)

// Ordering a deferred ordering, resolved at compilation time
type Ordering func(res Resolution) ([]clause.OrderByColumn, error)

// transforms the deferred operation pipeline of one query node. Selection and
// ordering replace on set, filters accumulate, the reversed flag toggles.
type transforms struct {
	selection    []string
	selectionSet bool
	filters      []Filter
	ordering     Ordering
	orderingSet  bool
	reversed     bool
	alias        *TableAlias
}

func (t transforms) withSelection(columns []string) transforms {
	t.selection = columns
	t.selectionSet = true
	return t
}

func (t transforms) withFilter(filter Filter) transforms {
	filters := make([]Filter, len(t.filters), len(t.filters)+1)
	copy(filters, t.filters)
	t.filters = append(filters, filter)
	return t
}

func (t transforms) withOrdering(ordering Ordering) transforms {
	t.ordering = ordering
	t.orderingSet = true
	t.reversed = false
	return t
}

func (t transforms) withReversed() transforms {
	// without an ordering there is nothing to reverse
	if !t.orderingSet {
		return t
	}
	t.reversed = !t.reversed
	return t
}

func (t transforms) withAlias(alias *TableAlias) transforms {
	t.alias = alias
	return t
}

// merge combines the pipelines of two collapsing join nodes, other being the
// later one: selection and ordering follow replace-last-set semantics,
// filters conjoin, the later alias binding wins
func (t transforms) merge(other transforms) transforms {
	if other.selectionSet {
		t.selection = other.selection
		t.selectionSet = true
	}

	if len(other.filters) > 0 {
		filters := make([]Filter, 0, len(t.filters)+len(other.filters))
		filters = append(filters, t.filters...)
		filters = append(filters, other.filters...)
		t.filters = filters
	}

	if other.orderingSet {
		t.ordering = other.ordering
		t.orderingSet = true
		t.reversed = other.reversed
	}

	if other.alias != nil {
		t.alias = other.alias
	}

	return t
}
