package schema

import (
	"fmt"
	"sync"
)

// ForeignKey a declared foreign key from origin table columns to destination
// table columns
type ForeignKey struct {
	OriginTable      string
	DestinationTable string
	References       []Reference
}

// Snapshot an in-memory schema snapshot implementing Resolver. Define the
// foreign keys once at setup, lookups are safe for concurrent use afterwards.
type Snapshot struct {
	mu          sync.RWMutex
	foreignKeys []ForeignKey
}

func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// DefineForeignKey declare a foreign key from origin to destination
func (s *Snapshot) DefineForeignKey(origin, destination string, refs ...Reference) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.foreignKeys = append(s.foreignKeys, ForeignKey{
		OriginTable:      origin,
		DestinationTable: destination,
		References:       refs,
	})
	return s
}

// ResolveForeignKey implements Resolver
func (s *Snapshot) ResolveForeignKey(req ForeignKeyRequest) ([]Reference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var candidates []ForeignKey
	for _, fk := range s.foreignKeys {
		if fk.OriginTable != req.OriginTable || fk.DestinationTable != req.DestinationTable {
			continue
		}
		if req.OriginColumn != "" && !fk.hasOriginColumn(req.OriginColumn) {
			continue
		}
		candidates = append(candidates, fk)
	}

	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w from %s to %s", ErrForeignKeyNotFound, req.OriginTable, req.DestinationTable)
	case 1:
		refs := make([]Reference, len(candidates[0].References))
		copy(refs, candidates[0].References)
		return refs, nil
	default:
		return nil, fmt.Errorf("%w from %s to %s, specify an origin column", ErrAmbiguousForeignKey, req.OriginTable, req.DestinationTable)
	}
}

func (fk ForeignKey) hasOriginColumn(column string) bool {
	for _, ref := range fk.References {
		if ref.OriginColumn == column {
			return true
		}
	}
	return false
}
