package assoc

import (
	"fmt"

	"gorm.io/assoc/clause"
)

// TableAlias a symbolic handle for one occurrence of a table in a compiled
// query. Named aliases can qualify columns in predicates built outside an
// association, which is how self joins are told apart and how raw SQL
// fragments get a stable name to reference.
//
// Aliases are read-only once a query referencing them has been compiled.
type TableAlias struct {
	name string
}

// Alias create a table alias with an explicit name
func Alias(name string) *TableAlias {
	return &TableAlias{name: name}
}

// Name the explicit alias name, empty when unnamed
func (alias *TableAlias) Name() string {
	return alias.name
}

// Column qualify a column with the alias name
func (alias *TableAlias) Column(name string) clause.Column {
	return clause.Column{Table: alias.name, Name: name}
}

// sameAs reports whether both handles stand for the same table occurrence:
// the same handle, or the same explicit name
func (alias *TableAlias) sameAs(other *TableAlias) bool {
	if alias == other {
		return true
	}
	if alias == nil || other == nil {
		return false
	}
	return alias.name != "" && alias.name == other.name
}

// aliasCompatible reports whether two alias bindings allow their join nodes to
// collapse, an unset binding is compatible with anything
func aliasCompatible(a, b *TableAlias) bool {
	return a == nil || b == nil || a.sameAs(b)
}

// aliasNames assigns each table occurrence the name it is known by in the
// compiled SQL, numbering repeated unnamed occurrences deterministically.
// Explicit names are reserved up front so generated names never collide with
// them regardless of tree order.
type aliasNames struct {
	seen    map[string]int
	claimed map[string]bool
}

func newAliasNames() *aliasNames {
	return &aliasNames{seen: map[string]int{}, claimed: map[string]bool{}}
}

func (names *aliasNames) reserve(name string) {
	names.claimed[name] = true
}

func (names *aliasNames) assign(table string, alias *TableAlias) string {
	if alias != nil && alias.name != "" {
		names.claimed[alias.name] = true
		return alias.name
	}

	for {
		names.seen[table]++
		name := table
		if n := names.seen[table]; n > 1 {
			name = fmt.Sprintf("%s_%d", table, n)
		}
		if !names.claimed[name] {
			names.claimed[name] = true
			return name
		}
	}
}
