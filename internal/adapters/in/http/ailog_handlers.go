package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bestcat/internal/core/application/usecases/commands"
	"bestcat/internal/core/domain/model/kernel"
)

type recordAiLogRequest struct {
	RequestText  string `json:"requestText"`
	ResponseText string `json:"responseText"`
}

// RecordAiLog handles POST /api/ai-logs.
func (s *Server) RecordAiLog(c echo.Context) error {
	var req recordAiLogRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	logID := kernel.NewUUID()
	cmd, err := commands.NewRecordAiLogCommand(logID, req.RequestText, req.ResponseText)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.recordAiLogHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: logID.String()})
}
