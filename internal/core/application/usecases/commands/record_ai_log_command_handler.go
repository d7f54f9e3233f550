package commands

import (
	"context"

	"bestcat/internal/core/domain/model/ailog"
)

// RecordAiLogCommandHandler persists one AI chat exchange. Entries are
// append-only; nothing ever updates or deletes them.
type RecordAiLogCommandHandler struct {
	uowFactory AiLogUoWFactory
}

// NewRecordAiLogCommandHandler creates a handler for recording chat logs.
func NewRecordAiLogCommandHandler(uowFactory AiLogUoWFactory) RecordAiLogCommandHandler {
	return RecordAiLogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the record command.
func (h *RecordAiLogCommandHandler) Handle(ctx context.Context, cmd RecordAiLogCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entry, err := ailog.NewAiLog(cmd.LogID(), cmd.RequestText(), cmd.ResponseText())
	if err != nil {
		return err
	}

	if err = uow.AiLogRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
