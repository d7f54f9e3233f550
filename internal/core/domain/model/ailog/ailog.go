// Package ailog contains the AiLog entity: a persisted record of one
// AI-assisted chat exchange. Text generation itself happens outside the
// platform; this core only stores what was asked and what came back.
package ailog

import (
	"errors"
	"strings"

	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/errs"
)

// ErrAiLogIsNotConstructed is returned when an AiLog instance was not
// created through the NewAiLog factory function.
var ErrAiLogIsNotConstructed = errors.New("AiLog must be created via NewAiLog constructor")

// AiLog records one request/response pair of an AI-assisted chat.
type AiLog struct {
	id           kernel.UUID
	requestText  string
	responseText string

	isConstructed bool
}

// NewAiLog creates an AiLog with validation. The request text must not be
// blank; the response may be empty when generation failed.
func NewAiLog(id kernel.UUID, requestText, responseText string) (*AiLog, error) {
	l := &AiLog{responseText: responseText, isConstructed: true}

	if err := errors.Join(
		l.setID(id),
		l.setRequestText(requestText),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the AiLog instance was properly constructed.
func (l *AiLog) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrAiLogIsNotConstructed
	}
	return nil
}

// ID returns the log entry's unique identifier.
func (l *AiLog) ID() kernel.UUID { return l.id }

// RequestText returns the prompt that was sent.
func (l *AiLog) RequestText() string { return l.requestText }

// ResponseText returns the generated answer, possibly empty.
func (l *AiLog) ResponseText() string { return l.responseText }

func (l *AiLog) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *AiLog) setRequestText(requestText string) error {
	if strings.TrimSpace(requestText) == "" {
		return errs.NewValueIsRequiredError("request text")
	}
	l.requestText = requestText
	return nil
}
