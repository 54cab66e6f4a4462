package assoc

import (
	"fmt"

	"gorm.io/assoc/clause"
	"gorm.io/assoc/schema"
)

// JoinCondition a resolvable foreign key equality between two aliased tables.
// OriginIsLeft is true when the declaring record's table stores the foreign
// key columns, false when the foreign key lives on the other table and
// references the declaring record.
//
// JoinCondition is comparable without resolving the foreign key, which makes
// it usable as the merge key for sibling joins.
type JoinCondition struct {
	Request      schema.ForeignKeyRequest
	OriginIsLeft bool
}

// resolve the condition into an equality predicate between the left
// (declaring side) and right (associated side) resolved table names
func (cond JoinCondition) resolve(resolver schema.Resolver, left, right string) (clause.Expression, error) {
	refs, err := resolver.ResolveForeignKey(cond.Request)
	if err != nil {
		return nil, err
	}

	if len(refs) == 0 {
		return nil, fmt.Errorf("%w between %s and %s", ErrEmptyJoinCondition, left, right)
	}

	exprs := make([]clause.Expression, 0, len(refs))
	for _, ref := range refs {
		leftColumn, rightColumn := ref.OriginColumn, ref.DestinationColumn
		if !cond.OriginIsLeft {
			leftColumn, rightColumn = ref.DestinationColumn, ref.OriginColumn
		}

		exprs = append(exprs, clause.Eq{
			Column: clause.Column{Table: right, Name: rightColumn},
			Value:  clause.Column{Table: left, Name: leftColumn},
		})
	}

	return clause.And(exprs...), nil
}
