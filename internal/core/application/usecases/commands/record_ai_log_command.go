package commands

import (
	"errors"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/guard"
)

var (
	ErrRecordAiLogCommandIsNotConstructed = errors.New(
		"RecordAiLogCommand must be created via NewRecordAiLogCommand constructor",
	)
	ErrRequestTextIsRequired = errors.New("request text is required")
)

// RecordAiLogCommand represents a request to persist one AI chat exchange.
// The response text may be empty when generation failed upstream.
type RecordAiLogCommand struct { //nolint:recvcheck //using for validation
	logID        kernel.UUID
	requestText  string
	responseText string

	guard guard.ConstructorGuard
}

// NewRecordAiLogCommand creates a command to record a chat exchange.
func NewRecordAiLogCommand(logID kernel.UUID, requestText, responseText string) (RecordAiLogCommand, error) {
	cmd := RecordAiLogCommand{
		responseText: responseText,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLogID(logID),
		cmd.setRequestText(requestText),
	); err != nil {
		return RecordAiLogCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordAiLogCommand) Validate() error {
	return c.guard.Validate(ErrRecordAiLogCommandIsNotConstructed)
}

// LogID returns the unique identifier for the log entry.
func (c RecordAiLogCommand) LogID() kernel.UUID {
	return c.logID
}

// RequestText returns the prompt that was sent.
func (c RecordAiLogCommand) RequestText() string {
	return c.requestText
}

// ResponseText returns the generated answer, possibly empty.
func (c RecordAiLogCommand) ResponseText() string {
	return c.responseText
}

func (c *RecordAiLogCommand) setLogID(logID kernel.UUID) error {
	if err := logID.Validate(); err != nil {
		return err
	}

	c.logID = logID
	return nil
}

func (c *RecordAiLogCommand) setRequestText(requestText string) error {
	if requestText == "" {
		return ErrRequestTextIsRequired
	}

	c.requestText = requestText
	return nil
}
