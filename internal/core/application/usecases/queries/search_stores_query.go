package queries

import (
	"errors"
	"time"

	"bestcat/internal/core/application/usecases/queries/criteria"
	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/guard"
)

var ErrSearchStoresQueryIsNotConstructed = errors.New(
	"SearchStoresQuery must be created via NewSearchStoresQuery constructor",
)

// SearchStoresQuery retrieves a page of stores matching any combination of
// optional criteria. Every parameter is independent: a blank name, a nil
// identifier, or a blank area name simply contributes no predicate, so the
// zero-criteria search returns all live stores.
//
// Example:
//
//	page, _ := criteria.NewPage(0, 20)
//	query, _ := NewSearchStoresQuery("Pizza", nil, nil, "Downtown", page)
//	handler := NewSearchStoresQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("store search failed: %w", err)
//	}
//	fmt.Printf("Found %d stores\n", resp.Meta.TotalCount)
type SearchStoresQuery struct { //nolint:recvcheck //using for validation
	name     string
	storeID  *kernel.UUID
	areaID   *kernel.UUID
	areaName string
	page     criteria.Page

	guard guard.ConstructorGuard
}

// NewSearchStoresQuery creates a store search query.
// All criteria are optional; only the page must be a constructed Page.
func NewSearchStoresQuery(
	name string,
	storeID *kernel.UUID,
	areaID *kernel.UUID,
	areaName string,
	page criteria.Page,
) (SearchStoresQuery, error) {
	if err := page.Validate(); err != nil {
		return SearchStoresQuery{}, err
	}

	return SearchStoresQuery{
		name:     name,
		storeID:  storeID,
		areaID:   areaID,
		areaName: areaName,
		page:     page,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchStoresQuery) Validate() error {
	return q.guard.Validate(ErrSearchStoresQueryIsNotConstructed)
}

// Filters composes the present criteria into the predicate list the
// handler executes. The not-deleted predicate always comes first.
func (q SearchStoresQuery) Filters() []criteria.Filter {
	return criteria.Compose(
		criteria.TextContains("name", q.name),
		criteria.IDEquals("id", q.storeID),
		criteria.IDEquals("area_id", q.areaID),
		criteria.JoinedTextEquals("areas", "name", q.areaName),
	)
}

// Page returns the pagination window.
func (q SearchStoresQuery) Page() criteria.Page {
	return q.page
}

// StoreResponse is one store row of a search result.
type StoreResponse struct {
	ID        kernel.UUID
	Name      string
	Address   string
	AreaID    kernel.UUID
	CreatedAt time.Time
}

// SearchStoresQueryResponse is a page of matching stores plus the metadata
// describing the full result set.
type SearchStoresQueryResponse struct {
	Stores []StoreResponse
	Meta   criteria.PageMeta
}
