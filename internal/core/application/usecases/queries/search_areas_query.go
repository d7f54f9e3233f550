package queries

import (
	"errors"
	"time"

	"bestcat/internal/core/application/usecases/queries/criteria"
	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/guard"
)

var ErrSearchAreasQueryIsNotConstructed = errors.New(
	"SearchAreasQuery must be created via NewSearchAreasQuery constructor",
)

// SearchAreasQuery retrieves a page of delivery areas matching any
// combination of optional criteria: a city substring, an exact identifier,
// and a district-name substring. Absent criteria contribute no predicate.
type SearchAreasQuery struct { //nolint:recvcheck //using for validation
	city   string
	areaID *kernel.UUID
	name   string
	page   criteria.Page

	guard guard.ConstructorGuard
}

// NewSearchAreasQuery creates an area search query.
// All criteria are optional; only the page must be a constructed Page.
func NewSearchAreasQuery(city string, areaID *kernel.UUID, name string, page criteria.Page) (SearchAreasQuery, error) {
	if err := page.Validate(); err != nil {
		return SearchAreasQuery{}, err
	}

	return SearchAreasQuery{
		city:   city,
		areaID: areaID,
		name:   name,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchAreasQuery) Validate() error {
	return q.guard.Validate(ErrSearchAreasQueryIsNotConstructed)
}

// Filters composes the present criteria into the predicate list the
// handler executes. The not-deleted predicate always comes first.
func (q SearchAreasQuery) Filters() []criteria.Filter {
	return criteria.Compose(
		criteria.TextContains("city", q.city),
		criteria.IDEquals("id", q.areaID),
		criteria.TextContains("name", q.name),
	)
}

// Page returns the pagination window.
func (q SearchAreasQuery) Page() criteria.Page {
	return q.page
}

// AreaResponse is one area row of a search result.
type AreaResponse struct {
	ID        kernel.UUID
	City      string
	Name      string
	CreatedAt time.Time
}

// SearchAreasQueryResponse is a page of matching areas plus the metadata
// describing the full result set.
type SearchAreasQueryResponse struct {
	Areas []AreaResponse
	Meta  criteria.PageMeta
}
