package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	layout "github.com/goliatone/go-dashboard-layout/components/layout"
)

type rowsService interface {
	Rows(ctx context.Context, req layout.RowsRequest) ([]layout.RenderedSection, error)
}

// RenderedRows is the row packing of one container on one breakpoint.
type RenderedRows struct {
	DocumentID string                   `json:"documentId"`
	Path       string                   `json:"path,omitempty"`
	Screen     layout.ScreenSize        `json:"screen"`
	Sections   []layout.RenderedSection `json:"sections"`
}

// RenderedRowsQuery packs container sections into rendered rows.
type RenderedRowsQuery struct {
	service rowsService
}

// NewRenderedRowsQuery builds the query.
func NewRenderedRowsQuery(service rowsService) *RenderedRowsQuery {
	return &RenderedRowsQuery{service: service}
}

var _ gocommand.Querier[layout.RowsRequest, RenderedRows] = (*RenderedRowsQuery)(nil)

// Query renders the requested container. An empty screen means xl.
func (q *RenderedRowsQuery) Query(ctx context.Context, req layout.RowsRequest) (RenderedRows, error) {
	sections, err := q.service.Rows(ctx, req)
	if err != nil {
		return RenderedRows{}, err
	}
	screen := req.Screen
	if screen == "" {
		screen = layout.ScreenXL
	}
	return RenderedRows{
		DocumentID: req.DocumentID,
		Path:       req.Path,
		Screen:     screen,
		Sections:   sections,
	}, nil
}
