// Package ailogrepo provides data transfer objects and mapping functions for
// AI chat log persistence. Entries are append-only.
package ailogrepo

import (
	"time"

	"github.com/google/uuid"

	"bestcat/internal/core/domain/model/ailog"
)

// AiLogDTO represents the database structure for persisting chat exchanges.
type AiLogDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestText  string
	ResponseText string

	CreatedAt time.Time
}

// TableName specifies the database table name for AI log entries.
func (AiLogDTO) TableName() string {
	return "ai_logs"
}

func fromDomain(entry *ailog.AiLog) AiLogDTO {
	return AiLogDTO{
		ID:           entry.ID().Bytes(),
		RequestText:  entry.RequestText(),
		ResponseText: entry.ResponseText(),
	}
}
