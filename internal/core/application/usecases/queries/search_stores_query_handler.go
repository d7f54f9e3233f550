package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bestcat/internal/core/application/usecases/queries/criteria"
	"bestcat/internal/core/domain/model/kernel"
)

// storeJoins declares the join paths store search predicates may use.
var storeJoins = map[string]string{
	"areas": "JOIN areas ON areas.id = stores.area_id",
}

// SearchStoresQueryHandler executes store searches against the database.
// The same composed predicate list drives both the row count and the page
// fetch, so the metadata always describes the filtered set.
type SearchStoresQueryHandler struct {
	db *gorm.DB
}

// NewSearchStoresQueryHandler creates a handler for store searches.
// Requires a GORM database connection for query execution.
func NewSearchStoresQueryHandler(db *gorm.DB) SearchStoresQueryHandler {
	return SearchStoresQueryHandler{db: db}
}

// Handle executes the store search.
// Results are sorted by creation time descending with the identifier as
// tie-break, so paging through the set is deterministic. A criterion that
// matches nothing yields an empty page, not an error.
func (h SearchStoresQueryHandler) Handle(
	ctx context.Context,
	query SearchStoresQuery,
) (SearchStoresQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchStoresQueryResponse{}, err
	}

	filters := query.Filters()

	filtered := func() (*gorm.DB, error) {
		return applyFilters(h.db.WithContext(ctx).Table("stores"), "stores", filters, storeJoins)
	}

	tx, err := filtered()
	if err != nil {
		return SearchStoresQueryResponse{}, err
	}

	var totalCount int64
	if err = tx.Count(&totalCount).Error; err != nil {
		return SearchStoresQueryResponse{}, err
	}

	tx, err = filtered()
	if err != nil {
		return SearchStoresQueryResponse{}, err
	}

	page := query.Page()
	rows, err := tx.
		Select("stores.id, stores.name, stores.address, stores.area_id, stores.created_at").
		Order("stores.created_at DESC, stores.id DESC").
		Limit(page.Size()).
		Offset(page.Offset()).
		Rows()
	if err != nil {
		return SearchStoresQueryResponse{}, err
	}
	defer rows.Close()

	stores := make([]StoreResponse, 0)
	for rows.Next() {
		var id, areaID uuid.UUID
		var name, address string
		var createdAt time.Time

		if err = rows.Scan(&id, &name, &address, &areaID, &createdAt); err != nil {
			return SearchStoresQueryResponse{}, err
		}

		storeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return SearchStoresQueryResponse{}, idErr
		}
		storeAreaID, idErr := kernel.UUIDFromBytes(areaID[:])
		if idErr != nil {
			return SearchStoresQueryResponse{}, idErr
		}

		stores = append(stores, StoreResponse{
			ID:        storeID,
			Name:      name,
			Address:   address,
			AreaID:    storeAreaID,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return SearchStoresQueryResponse{}, err
	}

	return SearchStoresQueryResponse{
		Stores: stores,
		Meta:   criteria.NewPageMeta(totalCount, page),
	}, nil
}
