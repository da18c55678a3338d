package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	layout "github.com/goliatone/go-dashboard-layout/components/layout"
)

type importService interface {
	ImportDocument(ctx context.Context, id string, doc layout.Document) (string, error)
}

// ImportDocumentInput stores a document under DocumentID, or under a new id
// when DocumentID is blank. Result, when set, receives the stored id.
type ImportDocumentInput struct {
	DocumentID string          `json:"documentId,omitempty"`
	Document   layout.Document `json:"document"`
	Result     *ImportResult   `json:"-"`
}

// ImportResult reports where a document was stored.
type ImportResult struct {
	DocumentID string `json:"documentId"`
}

// ImportDocumentCommand validates and stores layout documents.
type ImportDocumentCommand struct {
	service   importService
	telemetry Telemetry
}

// NewImportDocumentCommand creates a command instance.
func NewImportDocumentCommand(service importService, telemetry Telemetry) *ImportDocumentCommand {
	return &ImportDocumentCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ImportDocumentInput] = (*ImportDocumentCommand)(nil)

// Execute delegates to the layout service.
func (c *ImportDocumentCommand) Execute(ctx context.Context, msg ImportDocumentInput) error {
	if c.service == nil {
		return errors.New("import command requires service")
	}
	id, err := c.service.ImportDocument(ctx, msg.DocumentID, msg.Document)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		msg.Result.DocumentID = id
	}
	c.telemetry.Record(ctx, "layout.command.import", map[string]any{"document_id": id})
	return nil
}
