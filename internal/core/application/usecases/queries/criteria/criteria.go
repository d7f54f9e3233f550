// Package criteria implements the predicate composition engine behind the
// search queries. Each optional search parameter is translated into an
// elementary Filter by a builder that returns nil when the parameter was not
// supplied, and Compose folds the builders' results into a single
// conjunction, always seeded with the mandatory not-deleted predicate.
//
// The Filter values are backend-agnostic: a predicate that needs a join
// names its join path instead of embedding SQL, so the same composition can
// be executed by a gorm clause applier, a hand-written SQL builder, or an
// in-memory filter.
//
// Example:
//
//	filters := criteria.Compose(
//	    criteria.TextContains("name", storeName),      // skipped when blank
//	    criteria.IDEquals("id", storeID),              // skipped when nil
//	    criteria.JoinedTextEquals("areas", "name", areaName),
//	)
//	// filters[0] is always the not-deleted predicate
package criteria

import (
	"bestcat/internal/core/domain/model/kernel"
)

// Op enumerates the predicate operators the engine can express.
type Op int

const (
	// OpUnknown catches uninitialized Filter values.
	OpUnknown Op = iota

	// Equals is an exact match.
	Equals

	// Contains is a case-sensitive substring match on a text column.
	// No normalization or case folding is applied.
	Contains

	// IsNull matches rows where the column is NULL. Takes no value.
	IsNull
)

// Filter is one elementary predicate over a column of the searched entity
// or of a joined entity. Join is empty for predicates on the root entity;
// otherwise it names the join path the executor must establish.
type Filter struct {
	Column string
	Op     Op
	Value  any
	Join   string
}

// NotDeleted is the structural predicate every composition starts with:
// soft-deleted rows are excluded from search results unconditionally,
// regardless of which optional filters are present.
func NotDeleted() Filter {
	return Filter{Column: "deleted_at", Op: IsNull}
}

// TextContains builds a case-sensitive substring predicate on a root
// column. A blank value means the parameter was not supplied and yields no
// predicate; it never becomes an equality-to-empty-string filter.
func TextContains(column, value string) *Filter {
	if value == "" {
		return nil
	}
	return &Filter{Column: column, Op: Contains, Value: value}
}

// TextEquals builds an exact-match predicate on a root text column.
// A blank value yields no predicate.
func TextEquals(column, value string) *Filter {
	if value == "" {
		return nil
	}
	return &Filter{Column: column, Op: Equals, Value: value}
}

// IDEquals builds an exact-match predicate on a root identifier column.
// A nil identifier yields no predicate. An identifier that matches no row
// is not an error at this layer; it simply produces zero results.
func IDEquals(column string, id *kernel.UUID) *Filter {
	if id == nil {
		return nil
	}
	return &Filter{Column: column, Op: Equals, Value: id.Bytes()}
}

// JoinedTextEquals builds an exact-match predicate on a text column of a
// joined entity. A blank value yields no predicate.
func JoinedTextEquals(join, column, value string) *Filter {
	if value == "" {
		return nil
	}
	return &Filter{Column: column, Op: Equals, Value: value, Join: join}
}

// JoinedIDEquals builds an exact-match predicate on an identifier column of
// a joined entity. A nil identifier yields no predicate.
func JoinedIDEquals(join, column string, id *kernel.UUID) *Filter {
	if id == nil {
		return nil
	}
	return &Filter{Column: column, Op: Equals, Value: id.Bytes(), Join: join}
}

// Compose conjoins the present predicates into a single filter list.
// Absent builders (nil entries) are skipped entirely rather than turned
// into match-anything predicates, and the not-deleted predicate is always
// seeded first. With zero optional predicates the result is the sole
// not-deleted constraint.
func Compose(optional ...*Filter) []Filter {
	filters := make([]Filter, 0, len(optional)+1)
	filters = append(filters, NotDeleted())

	for _, f := range optional {
		if f != nil {
			filters = append(filters, *f)
		}
	}

	return filters
}
