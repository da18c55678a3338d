package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

type unifyService interface {
	UnifyHeights(ctx context.Context, id string) error
}

// UnifyHeightsInput addresses the document whose row heights are unified.
type UnifyHeightsInput struct {
	DocumentID string `json:"documentId"`
}

// UnifyHeightsCommand equalizes ratio heights row by row.
type UnifyHeightsCommand struct {
	service   unifyService
	telemetry Telemetry
}

// NewUnifyHeightsCommand creates a command instance.
func NewUnifyHeightsCommand(service unifyService, telemetry Telemetry) *UnifyHeightsCommand {
	return &UnifyHeightsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UnifyHeightsInput] = (*UnifyHeightsCommand)(nil)

// Execute delegates to the layout service.
func (c *UnifyHeightsCommand) Execute(ctx context.Context, msg UnifyHeightsInput) error {
	if c.service == nil {
		return errors.New("unify heights command requires service")
	}
	if err := c.service.UnifyHeights(ctx, msg.DocumentID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "layout.command.unify_heights", map[string]any{"document_id": msg.DocumentID})
	return nil
}
