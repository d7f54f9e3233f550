package ailogrepo

import (
	"context"

	"gorm.io/gorm"

	"bestcat/internal/core/domain/model/ailog"
)

// GormAiLogRepository implements AiLogRepository using GORM.
type GormAiLogRepository struct {
	db *gorm.DB
}

// NewGormAiLogRepository creates a new GORM AI log repository.
func NewGormAiLogRepository(db *gorm.DB) *GormAiLogRepository {
	return &GormAiLogRepository{db: db}
}

// Add appends a new chat exchange to the log.
func (r *GormAiLogRepository) Add(ctx context.Context, entry *ailog.AiLog) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
