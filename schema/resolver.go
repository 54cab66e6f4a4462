package schema

import "errors"

var (
	// ErrForeignKeyNotFound no foreign key between the requested tables
	ErrForeignKeyNotFound = errors.New("foreign key not found")
	// ErrAmbiguousForeignKey more than one foreign key matches and no origin
	// column hint was given
	ErrAmbiguousForeignKey = errors.New("ambiguous foreign key")
)

// Reference one ordered origin/destination column pair of a foreign key
type Reference struct {
	OriginColumn      string
	DestinationColumn string
}

// ForeignKeyRequest identifies a foreign key between two tables, OriginColumn
// optionally disambiguates when several keys exist for the pair
type ForeignKeyRequest struct {
	OriginTable      string
	DestinationTable string
	OriginColumn     string
}

// Resolver resolves foreign key requests against a schema. Resolution happens
// at SQL compilation time, composing queries never calls it.
//
// Implementations must return a non-empty reference list or an error, and must
// be deterministic for a fixed schema.
type Resolver interface {
	ResolveForeignKey(req ForeignKeyRequest) ([]Reference, error)
}
