package queries

import (
	"context"
	"errors"
	"testing"

	layout "github.com/goliatone/go-dashboard-layout/components/layout"
)

type stubRowsService struct {
	calls int
	last  layout.RowsRequest
	err   error
}

func (s *stubRowsService) Rows(_ context.Context, req layout.RowsRequest) ([]layout.RenderedSection, error) {
	s.calls++
	s.last = req
	return []layout.RenderedSection{{Index: 0}}, s.err
}

func TestRenderedRowsQueryDefaultsScreen(t *testing.T) {
	service := &stubRowsService{}
	query := NewRenderedRowsQuery(service)
	out, err := query.Query(context.Background(), layout.RowsRequest{DocumentID: "doc"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if service.calls != 1 {
		t.Fatalf("expected 1 call, got %d", service.calls)
	}
	if out.Screen != layout.ScreenXL || out.DocumentID != "doc" || len(out.Sections) != 1 {
		t.Fatalf("unexpected result %+v", out)
	}
}

func TestRenderedRowsQueryPropagatesErrors(t *testing.T) {
	service := &stubRowsService{err: layout.ErrItemNotFound}
	_, err := NewRenderedRowsQuery(service).Query(context.Background(), layout.RowsRequest{DocumentID: "doc", Path: "0_0"})
	if !errors.Is(err, layout.ErrItemNotFound) {
		t.Fatalf("expected item not found, got %v", err)
	}
}

func TestQueriesAgainstService(t *testing.T) {
	ctx := context.Background()
	store := layout.NewInMemoryLayoutStore()
	service := layout.NewService(layout.ServiceOptions{Store: store})
	doc := layout.Document{
		Settings: layout.DefaultFeatureFlags(),
		Layout: layout.Layout{Sections: []layout.Section{{Items: []layout.Item{
			{Size: layout.SizeByScreen{XL: &layout.LayoutSize{GridWidth: 8}}, Widget: &layout.Widget{Type: layout.WidgetTypeRichText}},
			{Size: layout.SizeByScreen{XL: &layout.LayoutSize{GridWidth: 8}}, Widget: &layout.Widget{Type: layout.WidgetTypeRichText}},
		}}}},
	}
	id, err := service.ImportDocument(ctx, "", doc)
	if err != nil {
		t.Fatalf("import returned error: %v", err)
	}

	stored, err := NewDocumentQuery(service).Query(ctx, DocumentInput{DocumentID: id})
	if err != nil {
		t.Fatalf("document query returned error: %v", err)
	}
	if stored.Version != layout.DocumentVersion {
		t.Fatalf("expected defaulted version, got %q", stored.Version)
	}

	rows, err := NewRenderedRowsQuery(service).Query(ctx, layout.RowsRequest{DocumentID: id})
	if err != nil {
		t.Fatalf("rows query returned error: %v", err)
	}
	if got := len(rows.Sections[0].Rows); got != 2 {
		t.Fatalf("expected two rendered rows, got %d", got)
	}

	constraints, err := NewItemConstraintsQuery(service).Query(ctx, layout.ConstraintsRequest{DocumentID: id, Path: "0_1"})
	if err != nil {
		t.Fatalf("constraints query returned error: %v", err)
	}
	if constraints.MaxWidth != layout.GridColumnsCount {
		t.Fatalf("expected wrapped item to grow to the full grid, got %d", constraints.MaxWidth)
	}
}
