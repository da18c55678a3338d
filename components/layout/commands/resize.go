package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	layout "github.com/goliatone/go-dashboard-layout/components/layout"
)

type resizeService interface {
	ResizeItem(ctx context.Context, req layout.ResizeItemRequest) (layout.Item, error)
}

// ResizeItemInput carries the requested xl size. A nil Height keeps the
// current height.
type ResizeItemInput struct {
	DocumentID string       `json:"documentId"`
	Path       string       `json:"path"`
	Width      int          `json:"width"`
	Height     *int         `json:"height,omitempty"`
	Result     *layout.Item `json:"-"`
}

// ResizeItemCommand applies a clamped size to one item.
type ResizeItemCommand struct {
	service   resizeService
	telemetry Telemetry
}

// NewResizeItemCommand creates a command instance.
func NewResizeItemCommand(service resizeService, telemetry Telemetry) *ResizeItemCommand {
	return &ResizeItemCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ResizeItemInput] = (*ResizeItemCommand)(nil)

// Execute delegates to the layout service.
func (c *ResizeItemCommand) Execute(ctx context.Context, msg ResizeItemInput) error {
	if c.service == nil {
		return errors.New("resize command requires service")
	}
	item, err := c.service.ResizeItem(ctx, layout.ResizeItemRequest{
		DocumentID: msg.DocumentID,
		Path:       msg.Path,
		Width:      msg.Width,
		Height:     msg.Height,
	})
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = item
	}
	c.telemetry.Record(ctx, "layout.command.resize", map[string]any{
		"document_id": msg.DocumentID,
		"path":        msg.Path,
		"width":       msg.Width,
	})
	return nil
}
