package assoc

import "errors"

var (
	// ErrMissingResolver compilation requires a schema resolver
	ErrMissingResolver = errors.New("schema resolver required")
	// ErrEmptyJoinCondition a foreign key resolved to zero column pairs
	ErrEmptyJoinCondition = errors.New("join condition has no columns")
	// ErrRecordKeyUnset deriving a request requires the record's join columns to be set
	ErrRecordKeyUnset = errors.New("join column value required")
)
