package layout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nestedRoot(parentWidth int, direction Direction, children ...Item) Layout {
	container := containerWidget(direction, Section{Items: children})
	return Layout{Sections: []Section{{Items: []Item{xlItem(parentWidth, container)}}}}
}

func childPath(i int) ItemPath {
	return ItemPath{{Section: 0, Item: 0}, {Section: 0, Item: i}}
}

func TestNormalizeToParentClampsOverflow(t *testing.T) {
	engine := newTestEngine(t, nil)
	root := nestedRoot(6, DirectionRow, xlItemWithHeight(8, 5, richText("note")))

	item, changed, err := engine.NormalizeToParent(&root, childPath(0))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 6, item.Size.XL.GridWidth)
	assert.Equal(t, 5, item.Size.XL.GridHeight)

	original, _ := FindItem(&root, childPath(0))
	assert.Equal(t, 8, original.Size.XL.GridWidth)
}

func TestNormalizeToParentUsesDeclaredLayoutSize(t *testing.T) {
	engine := newTestEngine(t, nil)
	root := nestedRoot(8, DirectionRow, xlItem(6, richText("note")))
	root.Sections[0].Items[0].Widget.Layout.Size = &LayoutSize{GridWidth: 4}

	item, changed, err := engine.NormalizeToParent(&root, childPath(0))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 4, item.Size.XL.GridWidth)
}

func TestNormalizeToParentKeepsItemMinimum(t *testing.T) {
	engine := newTestEngine(t, nil)
	root := nestedRoot(4, DirectionRow, xlItem(8, insightWidget("map")))

	item, changed, err := engine.NormalizeToParent(&root, childPath(0))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 6, item.Size.XL.GridWidth)
}

func TestNormalizeToParentDirection(t *testing.T) {
	engine := newTestEngine(t, nil)

	column := nestedRoot(6, DirectionColumn, xlItem(3, richText("a")))
	item, changed, err := engine.NormalizeToParent(&column, childPath(0))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 6, item.Size.XL.GridWidth)

	row := nestedRoot(6, DirectionRow, xlItem(3, richText("a")))
	item, changed, err = engine.NormalizeToParent(&row, childPath(0))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 3, item.Size.XL.GridWidth)
}

func TestNormalizeToParentIsIdempotent(t *testing.T) {
	engine := newTestEngine(t, nil)
	for _, direction := range []Direction{DirectionRow, DirectionColumn} {
		root := nestedRoot(6, direction, xlItem(8, richText("a")), xlItem(9, insightWidget("map")))
		for i := 0; i < 2; i++ {
			first, changed, err := engine.NormalizeToParent(&root, childPath(i))
			require.NoError(t, err)
			require.True(t, changed)

			updated, err := UpdateItem(root, childPath(i), func(Item) Item { return first })
			require.NoError(t, err)
			second, changed, err := engine.NormalizeToParent(&updated, childPath(i))
			require.NoError(t, err)
			assert.False(t, changed, direction)
			assert.Equal(t, first, second)
		}
	}
}

func TestNormalizeToParentRootAndMissingItems(t *testing.T) {
	engine := newTestEngine(t, nil)
	root := Layout{Sections: []Section{{Items: []Item{xlItem(13, richText("wide"))}}}}

	item, changed, err := engine.NormalizeToParent(&root, ItemPath{{Section: 0, Item: 0}})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 13, item.Size.XL.GridWidth)

	_, _, err = engine.NormalizeToParent(&root, ItemPath{{Section: 2, Item: 0}})
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, _, err = engine.NormalizeToParent(&root, childPath(0))
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestNormalizeLayout(t *testing.T) {
	telemetry := &recordingTelemetry{}
	engine := newTestEngine(t, telemetry)
	root := nestedRoot(6, DirectionColumn, xlItem(3, richText("a")), xlItem(8, richText("b")), xlItem(6, richText("c")))

	out, changed, err := engine.NormalizeLayout(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, changed, 2)
	assert.Equal(t, "0_0-0_0", changed[0].String())
	assert.Equal(t, "0_0-0_1", changed[1].String())

	for i := 0; i < 3; i++ {
		item, ok := FindItem(&out, childPath(i))
		require.True(t, ok)
		assert.Equal(t, 6, item.Size.XL.GridWidth)
	}
	require.Equal(t, []string{"layout.item.normalized"}, telemetry.events)
	assert.Equal(t, []string{"0_0-0_0", "0_0-0_1"}, telemetry.payloads[0]["changed"])

	_, again, err := engine.NormalizeLayout(context.Background(), out)
	require.NoError(t, err)
	assert.Empty(t, again)
	assert.Len(t, telemetry.events, 1)
}

func TestNormalizeLayoutFitsGrandchildrenIntoAdjustedParent(t *testing.T) {
	engine := newTestEngine(t, nil)
	inner := containerWidget(DirectionColumn, Section{Items: []Item{xlItem(10, richText("deep"))}})
	root := nestedRoot(5, DirectionRow, xlItem(10, inner))

	out, changed, err := engine.NormalizeLayout(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, changed, 2)

	deep, ok := FindItem(&out, ItemPath{{0, 0}, {0, 0}, {0, 0}})
	require.True(t, ok)
	assert.Equal(t, 5, deep.Size.XL.GridWidth)
}

func TestValidateWidgetSize(t *testing.T) {
	engine := newTestEngine(t, nil)
	height := 100
	width, valid := engine.ValidateWidgetSize(1, &height, insightWidget("map"))
	assert.Equal(t, 6, width)
	require.NotNil(t, valid)
	assert.Equal(t, 40, *valid)

	width, valid = engine.ValidateWidgetSize(20, nil, richText("a"))
	assert.Equal(t, 12, width)
	assert.Nil(t, valid)
}

func TestResizeItem(t *testing.T) {
	telemetry := &recordingTelemetry{}
	engine := newTestEngine(t, telemetry)
	root := nestedRoot(6, DirectionRow, xlItemWithHeight(4, 8, richText("a")))
	height := 2000

	out, item, err := engine.ResizeItem(context.Background(), root, childPath(0), 10, &height)
	require.NoError(t, err)
	assert.Equal(t, 6, item.Size.XL.GridWidth)
	assert.Equal(t, 1000, item.Size.XL.GridHeight)

	stored, ok := FindItem(&out, childPath(0))
	require.True(t, ok)
	assert.Equal(t, item, stored)

	original, _ := FindItem(&root, childPath(0))
	assert.Equal(t, 4, original.Size.XL.GridWidth)

	require.Equal(t, []string{"layout.item.resized"}, telemetry.events)
	assert.Equal(t, "0_0-0_0", telemetry.payloads[0]["path"])

	_, _, err = engine.ResizeItem(context.Background(), root, ItemPath{{Section: 4, Item: 4}}, 4, nil)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestResizeRootItemKeepsHeight(t *testing.T) {
	engine := newTestEngine(t, nil)
	root := Layout{Sections: []Section{{Items: []Item{xlItemWithHeight(4, 9, richText("a"))}}}}

	_, item, err := engine.ResizeItem(context.Background(), root, ItemPath{{Section: 0, Item: 0}}, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, item.Size.XL.GridWidth)
	assert.Equal(t, 9, item.Size.XL.GridHeight)
}
