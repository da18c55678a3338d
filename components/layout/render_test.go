package layout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderedPaths(sections []RenderedSection) [][]string {
	var out [][]string
	for _, section := range sections {
		for _, row := range section.Rows {
			paths := make([]string, len(row))
			for i, item := range row {
				paths[i] = item.Path.String()
			}
			out = append(out, paths)
		}
	}
	return out
}

func TestRenderSectionsRoot(t *testing.T) {
	root := Layout{Sections: []Section{
		{Header: &SectionHeader{Title: "Top"}, Items: []Item{xlItem(6, richText("a")), xlItem(6, richText("b")), xlItem(6, richText("c"))}},
		{Items: []Item{xlItem(12, richText("d"))}},
	}}

	sections, err := RenderSections(&root, nil, ScreenXL)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "Top", sections[0].Header.Title)
	assert.Equal(t, [][]string{{"0_0", "0_1"}, {"0_2"}, {"1_0"}}, renderedPaths(sections))

	sections, err = RenderSections(&root, nil, ScreenSM)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0_0"}, {"0_1"}, {"0_2"}, {"1_0"}}, renderedPaths(sections))
}

func TestRenderSectionsNestedUsesContainerBudget(t *testing.T) {
	inner := containerWidget(DirectionRow, Section{Items: []Item{
		xlItem(4, richText("a")), xlItem(4, richText("b")), xlItem(4, richText("c")),
	}})
	root := Layout{Sections: []Section{{Items: []Item{xlItem(8, inner), xlItem(4, richText("side"))}}}}

	sections, err := RenderSections(&root, ItemPath{{Section: 0, Item: 0}}, ScreenXL)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0_0-0_0", "0_0-0_1"}, {"0_0-0_2"}}, renderedPaths(sections))

	inner.Layout.Size = &LayoutSize{GridWidth: 12}
	sections, err = RenderSections(&root, ItemPath{{Section: 0, Item: 0}}, ScreenXL)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0_0-0_0", "0_0-0_1", "0_0-0_2"}}, renderedPaths(sections))

	_, err = RenderSections(&root, ItemPath{{Section: 0, Item: 1}}, ScreenXL)
	assert.ErrorIs(t, err, ErrItemNotFound)
	_, err = RenderSections(nil, nil, ScreenXL)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestEngineConstraints(t *testing.T) {
	telemetry := &recordingTelemetry{}
	engine := newTestEngine(t, telemetry)
	mapItem := xlItem(6, insightWidget("map"))
	trend := xlItem(4, insightWidget("trend"))
	root := Layout{Sections: []Section{{Items: []Item{mapItem, trend, xlItem(6, richText("c"))}}}}

	got, err := engine.Constraints(context.Background(), &root, ItemPath{{Section: 0, Item: 1}}, ScreenXL)
	require.NoError(t, err)
	assert.Equal(t, "0_1", got.Path)
	assert.Equal(t, WidgetTypeInsight, got.Type)
	assert.Equal(t, 4, got.Width)
	assert.Equal(t, 2, got.MinWidth)
	assert.Equal(t, 6, got.MaxWidth)
	assert.Equal(t, engine.MinHeight([]Item{trend}, ScreenXL), got.MinHeight)
	assert.Equal(t, engine.MaxHeight([]Item{trend}, ScreenXL), got.MaxHeight)

	lo, hi := engine.HeightWindow([]Item{mapItem, trend}, ScreenXL)
	assert.Equal(t, lo, got.RowMinHeight)
	assert.Equal(t, hi, got.RowMaxHeight)
	assert.Zero(t, got.ContainerHeight)
	assert.Contains(t, telemetry.events, "layout.item.constraints")

	_, err = engine.Constraints(context.Background(), &root, ItemPath{{Section: 2, Item: 0}}, ScreenXL)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestEngineConstraintsNested(t *testing.T) {
	engine := newTestEngine(t, nil)
	inner := containerWidget(DirectionRow, Section{Items: []Item{xlItem(4, richText("a")), xlItem(2, richText("b"))}})
	root := Layout{Sections: []Section{{Items: []Item{xlItem(8, inner)}}}}

	child, err := engine.Constraints(context.Background(), &root, ItemPath{{Section: 0, Item: 0}, {Section: 0, Item: 1}}, ScreenXL)
	require.NoError(t, err)
	assert.Equal(t, 8, child.MaxWidth)
	assert.Equal(t, WidgetTypeRichText, child.Type)

	container, err := engine.Constraints(context.Background(), &root, ItemPath{{Section: 0, Item: 0}}, ScreenXL)
	require.NoError(t, err)
	assert.Equal(t, engine.ItemContainerHeight(xlItem(8, inner), ScreenXL), container.ContainerHeight)
	assert.Equal(t, 12, container.MaxWidth)
}

func TestEngineConstraintsReportsInvariant(t *testing.T) {
	engine := newTestEngine(t, nil)
	root := Layout{Sections: []Section{{Items: []Item{xlItem(6, richText("a")), {Widget: richText("unsized")}}}}}

	_, err := engine.Constraints(context.Background(), &root, ItemPath{{Section: 0, Item: 0}}, ScreenXL)
	assert.ErrorIs(t, err, ErrInvariant)
}
