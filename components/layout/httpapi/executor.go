package httpapi

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	layout "github.com/goliatone/go-dashboard-layout/components/layout"
	"github.com/goliatone/go-dashboard-layout/components/layout/commands"
	"github.com/goliatone/go-dashboard-layout/components/layout/queries"
)

var errMissingHandler = errors.New("httpapi: handler not configured")

// Executor is the transport-neutral surface routers call into.
type Executor interface {
	ImportDocument(ctx context.Context, input commands.ImportDocumentInput) error
	Document(ctx context.Context, input queries.DocumentInput) (layout.Document, error)
	Rows(ctx context.Context, req layout.RowsRequest) (queries.RenderedRows, error)
	Constraints(ctx context.Context, req layout.ConstraintsRequest) (layout.ItemConstraints, error)
	NormalizeItem(ctx context.Context, input commands.NormalizeItemInput) error
	NormalizeLayout(ctx context.Context, input commands.NormalizeLayoutInput) error
	ResizeItem(ctx context.Context, input commands.ResizeItemInput) error
	UnifyHeights(ctx context.Context, input commands.UnifyHeightsInput) error
}

// CommandExecutor adapts commanders and queriers to Executor.
type CommandExecutor struct {
	ImportCommander          gocommand.Commander[commands.ImportDocumentInput]
	NormalizeItemCommander   gocommand.Commander[commands.NormalizeItemInput]
	NormalizeLayoutCommander gocommand.Commander[commands.NormalizeLayoutInput]
	ResizeCommander          gocommand.Commander[commands.ResizeItemInput]
	UnifyCommander           gocommand.Commander[commands.UnifyHeightsInput]

	DocumentQuerier    gocommand.Querier[queries.DocumentInput, layout.Document]
	RowsQuerier        gocommand.Querier[layout.RowsRequest, queries.RenderedRows]
	ConstraintsQuerier gocommand.Querier[layout.ConstraintsRequest, layout.ItemConstraints]
}

var _ Executor = (*CommandExecutor)(nil)

// NewCommandExecutor wires every command and query against service.
func NewCommandExecutor(service *layout.Service, telemetry commands.Telemetry) *CommandExecutor {
	return &CommandExecutor{
		ImportCommander:          commands.NewImportDocumentCommand(service, telemetry),
		NormalizeItemCommander:   commands.NewNormalizeItemCommand(service, telemetry),
		NormalizeLayoutCommander: commands.NewNormalizeLayoutCommand(service, telemetry),
		ResizeCommander:          commands.NewResizeItemCommand(service, telemetry),
		UnifyCommander:           commands.NewUnifyHeightsCommand(service, telemetry),
		DocumentQuerier:          queries.NewDocumentQuery(service),
		RowsQuerier:              queries.NewRenderedRowsQuery(service),
		ConstraintsQuerier:       queries.NewItemConstraintsQuery(service),
	}
}

// Handlers returns net/http handlers sharing the executor's commanders.
func (e *CommandExecutor) Handlers() *Handlers {
	return &Handlers{
		Import:          e.ImportCommander,
		NormalizeItem:   e.NormalizeItemCommander,
		NormalizeLayout: e.NormalizeLayoutCommander,
		Resize:          e.ResizeCommander,
		Unify:           e.UnifyCommander,
		Document:        e.DocumentQuerier,
		Rows:            e.RowsQuerier,
		Constraints:     e.ConstraintsQuerier,
	}
}

func (e *CommandExecutor) ImportDocument(ctx context.Context, input commands.ImportDocumentInput) error {
	if e.ImportCommander == nil {
		return errMissingHandler
	}
	return e.ImportCommander.Execute(ctx, input)
}

func (e *CommandExecutor) Document(ctx context.Context, input queries.DocumentInput) (layout.Document, error) {
	if e.DocumentQuerier == nil {
		return layout.Document{}, errMissingHandler
	}
	return e.DocumentQuerier.Query(ctx, input)
}

func (e *CommandExecutor) Rows(ctx context.Context, req layout.RowsRequest) (queries.RenderedRows, error) {
	if e.RowsQuerier == nil {
		return queries.RenderedRows{}, errMissingHandler
	}
	return e.RowsQuerier.Query(ctx, req)
}

func (e *CommandExecutor) Constraints(ctx context.Context, req layout.ConstraintsRequest) (layout.ItemConstraints, error) {
	if e.ConstraintsQuerier == nil {
		return layout.ItemConstraints{}, errMissingHandler
	}
	return e.ConstraintsQuerier.Query(ctx, req)
}

func (e *CommandExecutor) NormalizeItem(ctx context.Context, input commands.NormalizeItemInput) error {
	if e.NormalizeItemCommander == nil {
		return errMissingHandler
	}
	return e.NormalizeItemCommander.Execute(ctx, input)
}

func (e *CommandExecutor) NormalizeLayout(ctx context.Context, input commands.NormalizeLayoutInput) error {
	if e.NormalizeLayoutCommander == nil {
		return errMissingHandler
	}
	return e.NormalizeLayoutCommander.Execute(ctx, input)
}

func (e *CommandExecutor) ResizeItem(ctx context.Context, input commands.ResizeItemInput) error {
	if e.ResizeCommander == nil {
		return errMissingHandler
	}
	return e.ResizeCommander.Execute(ctx, input)
}

func (e *CommandExecutor) UnifyHeights(ctx context.Context, input commands.UnifyHeightsInput) error {
	if e.UnifyCommander == nil {
		return errMissingHandler
	}
	return e.UnifyCommander.Execute(ctx, input)
}
