package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bestcat/internal/core/application/usecases/queries/criteria"
	"bestcat/internal/core/domain/model/kernel"
)

// SearchAreasQueryHandler executes area searches against the database.
type SearchAreasQueryHandler struct {
	db *gorm.DB
}

// NewSearchAreasQueryHandler creates a handler for area searches.
func NewSearchAreasQueryHandler(db *gorm.DB) SearchAreasQueryHandler {
	return SearchAreasQueryHandler{db: db}
}

// Handle executes the area search with the same ordering and pagination
// rules as the store search.
func (h SearchAreasQueryHandler) Handle(
	ctx context.Context,
	query SearchAreasQuery,
) (SearchAreasQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SearchAreasQueryResponse{}, err
	}

	filters := query.Filters()

	filtered := func() (*gorm.DB, error) {
		return applyFilters(h.db.WithContext(ctx).Table("areas"), "areas", filters, nil)
	}

	tx, err := filtered()
	if err != nil {
		return SearchAreasQueryResponse{}, err
	}

	var totalCount int64
	if err = tx.Count(&totalCount).Error; err != nil {
		return SearchAreasQueryResponse{}, err
	}

	tx, err = filtered()
	if err != nil {
		return SearchAreasQueryResponse{}, err
	}

	page := query.Page()
	rows, err := tx.
		Select("areas.id, areas.city, areas.name, areas.created_at").
		Order("areas.created_at DESC, areas.id DESC").
		Limit(page.Size()).
		Offset(page.Offset()).
		Rows()
	if err != nil {
		return SearchAreasQueryResponse{}, err
	}
	defer rows.Close()

	areas := make([]AreaResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var city, name string
		var createdAt time.Time

		if err = rows.Scan(&id, &city, &name, &createdAt); err != nil {
			return SearchAreasQueryResponse{}, err
		}

		areaID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return SearchAreasQueryResponse{}, idErr
		}

		areas = append(areas, AreaResponse{
			ID:        areaID,
			City:      city,
			Name:      name,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return SearchAreasQueryResponse{}, err
	}

	return SearchAreasQueryResponse{
		Areas: areas,
		Meta:  criteria.NewPageMeta(totalCount, page),
	}, nil
}
