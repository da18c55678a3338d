package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	layout "github.com/goliatone/go-dashboard-layout/components/layout"
)

type normalizeService interface {
	NormalizeItem(ctx context.Context, req layout.NormalizeItemRequest) (layout.Item, bool, error)
	NormalizeLayout(ctx context.Context, id string) ([]layout.ItemPath, error)
}

// NormalizeResult lists the item paths a normalization changed.
type NormalizeResult struct {
	Changed []string `json:"changed"`
}

// NormalizeItemInput addresses the item fitted into its parent.
type NormalizeItemInput struct {
	DocumentID string           `json:"documentId"`
	Path       string           `json:"path"`
	Result     *NormalizeResult `json:"-"`
}

// NormalizeItemCommand fits one nested item into its container.
type NormalizeItemCommand struct {
	service   normalizeService
	telemetry Telemetry
}

// NewNormalizeItemCommand creates a command instance.
func NewNormalizeItemCommand(service normalizeService, telemetry Telemetry) *NormalizeItemCommand {
	return &NormalizeItemCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[NormalizeItemInput] = (*NormalizeItemCommand)(nil)

// Execute delegates to the layout service.
func (c *NormalizeItemCommand) Execute(ctx context.Context, msg NormalizeItemInput) error {
	if c.service == nil {
		return errors.New("normalize item command requires service")
	}
	_, changed, err := c.service.NormalizeItem(ctx, layout.NormalizeItemRequest{
		DocumentID: msg.DocumentID,
		Path:       msg.Path,
	})
	if err != nil {
		return err
	}
	if msg.Result != nil {
		msg.Result.Changed = []string{}
		if changed {
			msg.Result.Changed = append(msg.Result.Changed, msg.Path)
		}
	}
	c.telemetry.Record(ctx, "layout.command.normalize_item", map[string]any{
		"document_id": msg.DocumentID,
		"path":        msg.Path,
		"changed":     changed,
	})
	return nil
}

// NormalizeLayoutInput addresses the document normalized as a whole.
type NormalizeLayoutInput struct {
	DocumentID string           `json:"documentId"`
	Result     *NormalizeResult `json:"-"`
}

// NormalizeLayoutCommand fits every nested item of a document.
type NormalizeLayoutCommand struct {
	service   normalizeService
	telemetry Telemetry
}

// NewNormalizeLayoutCommand creates a command instance.
func NewNormalizeLayoutCommand(service normalizeService, telemetry Telemetry) *NormalizeLayoutCommand {
	return &NormalizeLayoutCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[NormalizeLayoutInput] = (*NormalizeLayoutCommand)(nil)

// Execute delegates to the layout service.
func (c *NormalizeLayoutCommand) Execute(ctx context.Context, msg NormalizeLayoutInput) error {
	if c.service == nil {
		return errors.New("normalize layout command requires service")
	}
	changed, err := c.service.NormalizeLayout(ctx, msg.DocumentID)
	if err != nil {
		return err
	}
	paths := make([]string, len(changed))
	for i, path := range changed {
		paths[i] = path.String()
	}
	if msg.Result != nil {
		msg.Result.Changed = paths
	}
	c.telemetry.Record(ctx, "layout.command.normalize_layout", map[string]any{
		"document_id": msg.DocumentID,
		"changed":     len(paths),
	})
	return nil
}
