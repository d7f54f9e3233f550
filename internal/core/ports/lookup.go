package ports

import (
	"context"

	"bestcat/internal/core/domain/model/ailog"
	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu entities.
// The order core reads menus to snapshot prices at order time.
type MenuRepository interface {
	// Add persists a new menu.
	Add(ctx context.Context, entity *menu.Menu) error

	// Get retrieves a menu by its unique identifier.
	// Returns an ObjectNotFoundError when the menu does not exist.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)
}

// AiLogRepository defines the persistence contract for AI chat log entries.
// Entries are append-only.
type AiLogRepository interface {
	// Add persists a new log entry.
	Add(ctx context.Context, entry *ailog.AiLog) error
}
