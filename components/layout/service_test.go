package layout

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *InMemoryLayoutStore, string, *recordingTelemetry) {
	t.Helper()
	doc, err := DecodeDocument(strings.NewReader(sampleDocument))
	require.NoError(t, err)
	store := NewInMemoryLayoutStore()
	telemetry := &recordingTelemetry{}
	service := NewService(ServiceOptions{Store: store, Telemetry: telemetry})
	id, err := service.ImportDocument(context.Background(), "", *doc)
	require.NoError(t, err)
	return service, store, id, telemetry
}

func TestServiceRequiresStore(t *testing.T) {
	service := NewService(ServiceOptions{})
	_, err := service.Document(context.Background(), "any")
	assert.ErrorIs(t, err, ErrMissingStore)
	_, err = service.NormalizeLayout(context.Background(), "any")
	assert.ErrorIs(t, err, ErrMissingStore)
	_, err = service.ImportDocument(context.Background(), "", Document{})
	assert.ErrorIs(t, err, ErrMissingStore)
}

func TestServiceDocumentLookup(t *testing.T) {
	service, _, id, telemetry := newTestService(t)

	doc, err := service.Document(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Sales overview", doc.Title)
	assert.Contains(t, telemetry.events, "layout.document.imported")

	_, err = service.Document(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	_, err = service.Document(context.Background(), "  ")
	assert.Error(t, err)
}

func TestServiceImportRejectsInvalidDocument(t *testing.T) {
	service := NewService(ServiceOptions{Store: NewInMemoryLayoutStore()})
	doc := Document{Layout: Layout{Sections: []Section{{Items: []Item{{Widget: richText("unsized")}}}}}}
	_, err := service.ImportDocument(context.Background(), "doc", doc)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestServiceNormalizeItemAndLayout(t *testing.T) {
	service, store, id, _ := newTestService(t)
	ctx := context.Background()
	nested := "1_0-0_0"

	item, changed, err := service.NormalizeItem(ctx, NormalizeItemRequest{DocumentID: id, Path: nested})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 12, item.Size.XL.GridWidth)

	stored, err := store.Get(ctx, id)
	require.NoError(t, err)
	saved, _ := FindItem(&stored.Layout, ItemPath{{Section: 1, Item: 0}, {Section: 0, Item: 0}})
	assert.Equal(t, 12, saved.Size.XL.GridWidth)
	assert.Equal(t, 22, saved.Size.XL.GridHeight)

	changedPaths, err := service.NormalizeLayout(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, changedPaths)

	_, _, err = service.NormalizeItem(ctx, NormalizeItemRequest{DocumentID: id, Path: "9_9"})
	assert.ErrorIs(t, err, ErrItemNotFound)
	_, _, err = service.NormalizeItem(ctx, NormalizeItemRequest{DocumentID: id, Path: "bogus"})
	assert.Error(t, err)
}

func TestServiceNormalizeLayoutSaves(t *testing.T) {
	service, store, id, _ := newTestService(t)
	ctx := context.Background()

	changed, err := service.NormalizeLayout(ctx, id)
	require.NoError(t, err)
	require.Len(t, changed, 1)
	assert.Equal(t, "1_0-0_0", changed[0].String())

	stored, err := store.Get(ctx, id)
	require.NoError(t, err)
	saved, _ := FindItem(&stored.Layout, changed[0])
	assert.Equal(t, 12, saved.Size.XL.GridWidth)
}

func TestServiceResizeItem(t *testing.T) {
	service, store, id, _ := newTestService(t)
	ctx := context.Background()

	item, err := service.ResizeItem(ctx, ResizeItemRequest{DocumentID: id, Path: "0_1", Width: 20})
	require.NoError(t, err)
	assert.Equal(t, GridColumnsCount, item.Size.XL.GridWidth)

	stored, err := store.Get(ctx, id)
	require.NoError(t, err)
	saved, _ := FindItem(&stored.Layout, ItemPath{{Section: 0, Item: 1}})
	assert.Equal(t, GridColumnsCount, saved.Size.XL.GridWidth)
	assert.Nil(t, saved.Size.LG)

	_, err = service.ResizeItem(ctx, ResizeItemRequest{DocumentID: id, Path: "5_0", Width: 4})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestServiceUnifyHeights(t *testing.T) {
	store := NewInMemoryLayoutStore()
	service := NewService(ServiceOptions{Store: store})
	ctx := context.Background()
	doc := Document{Version: DocumentVersion, Settings: DefaultFeatureFlags(), Layout: Layout{Sections: []Section{
		{Items: []Item{ratioItem(6, 50, "a"), ratioItem(6, 100, "b")}},
	}}}
	require.NoError(t, store.Save(ctx, "ratios", doc))

	require.NoError(t, service.UnifyHeights(ctx, "ratios"))
	stored, err := store.Get(ctx, "ratios")
	require.NoError(t, err)
	assert.Equal(t, 100.0, stored.Layout.Sections[0].Items[0].Size.XL.HeightAsRatio)
	assert.Equal(t, 100.0, stored.Layout.Sections[0].Items[1].Size.XL.HeightAsRatio)
}

func TestServiceRowsAndConstraints(t *testing.T) {
	service, _, id, _ := newTestService(t)
	ctx := context.Background()

	sections, err := service.Rows(ctx, RowsRequest{DocumentID: id})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0_0", "0_1"}, {"1_0"}}, renderedPaths(sections))

	nested, err := service.Rows(ctx, RowsRequest{DocumentID: id, Path: "1_0", Screen: "md"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1_0-0_0"}}, renderedPaths(nested))

	_, err = service.Rows(ctx, RowsRequest{DocumentID: id, Screen: "huge"})
	assert.Error(t, err)

	got, err := service.Constraints(ctx, ConstraintsRequest{DocumentID: id, Path: "0_1", Screen: ScreenXL})
	require.NoError(t, err)
	assert.Equal(t, 6, got.Width)
	assert.Equal(t, 6, got.MaxWidth)
}

func TestServiceRowsReportsInvariant(t *testing.T) {
	store := NewInMemoryLayoutStore()
	service := NewService(ServiceOptions{Store: store})
	ctx := context.Background()
	doc := Document{Version: DocumentVersion, Layout: Layout{Sections: []Section{{Items: []Item{{Widget: richText("unsized")}}}}}}
	require.NoError(t, store.Save(ctx, "broken", doc))

	_, err := service.Rows(ctx, RowsRequest{DocumentID: "broken"})
	assert.ErrorIs(t, err, ErrInvariant)
}
