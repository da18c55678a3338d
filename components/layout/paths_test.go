package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemPathString(t *testing.T) {
	path := ItemPath{{Section: 3, Item: 2}, {Section: 1, Item: 6}, {Section: 4, Item: 0}}
	assert.Equal(t, "3_2-1_6-4_0", path.String())
	assert.Equal(t, "3_2-1_6", path.Parent().String())
	assert.Nil(t, ItemPath{{Section: 1, Item: 1}}.Parent())
	assert.Equal(t, "undefined", ItemPath(nil).String())

	parsed, err := ParseItemPath("3_2-1_6-4_0")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(path))

	empty, err := ParseItemPath("undefined")
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, bad := range []string{"3", "a_1", "1_-2", "1_2-"} {
		_, err := ParseItemPath(bad)
		assert.ErrorIs(t, err, ErrInvalidArgument, bad)
	}
}

func TestItemPathParentDoesNotAlias(t *testing.T) {
	path := ItemPath{{Section: 0, Item: 1}, {Section: 2, Item: 3}, {Section: 4, Item: 5}}
	parent := path.Parent()
	parent[0].Item = 9
	assert.Equal(t, 1, path[0].Item)
}

func TestUpdateItemCopiesOnWrite(t *testing.T) {
	inner := containerWidget(DirectionRow, Section{Items: []Item{xlItem(4, richText("deep")), xlItem(4, richText("other"))}})
	root := Layout{Sections: []Section{
		{Items: []Item{xlItem(6, inner), xlItem(6, richText("side"))}},
	}}
	path := ItemPath{{Section: 0, Item: 0}, {Section: 0, Item: 1}}

	out, err := UpdateItem(root, path, func(item Item) Item {
		item.Widget = richText("replaced")
		return item
	})
	require.NoError(t, err)

	updated, ok := FindItem(&out, path)
	require.True(t, ok)
	assert.Equal(t, "replaced", updated.Widget.ID)

	original, ok := FindItem(&root, path)
	require.True(t, ok)
	assert.Equal(t, "other", original.Widget.ID)

	_, err = UpdateItem(root, ItemPath{{Section: 0, Item: 1}, {Section: 0, Item: 0}}, func(item Item) Item { return item })
	assert.ErrorIs(t, err, ErrItemNotFound)
	_, err = UpdateItem(root, nil, func(item Item) Item { return item })
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestWalkItemsVisitsParentsFirst(t *testing.T) {
	inner := containerWidget(DirectionRow, Section{Items: []Item{xlItem(4, richText("deep"))}})
	root := Layout{Sections: []Section{
		{Items: []Item{xlItem(6, inner)}},
		{Items: []Item{xlItem(6, richText("b"))}},
	}}
	var visited []string
	WalkItems(&root, func(path ItemPath, _ Item) bool {
		visited = append(visited, path.String())
		return true
	})
	assert.Equal(t, []string{"0_0", "0_0-0_0", "1_0"}, visited)
}

func TestResizedItemPositions(t *testing.T) {
	inner := containerWidget(DirectionRow, Section{Items: []Item{xlItem(4, richText("deep")), xlItem(4, richText("deep2"))}})
	original := Layout{Sections: []Section{
		{Items: []Item{xlItem(6, inner), xlItem(6, richText("b"))}},
	}}

	resized, err := UpdateItem(original, ItemPath{{Section: 0, Item: 1}}, func(item Item) Item {
		return xlItemWithHeight(6, 10, item.Widget)
	})
	require.NoError(t, err)
	resized, err = UpdateItem(resized, ItemPath{{Section: 0, Item: 0}, {Section: 0, Item: 1}}, func(item Item) Item {
		return xlItem(8, item.Widget)
	})
	require.NoError(t, err)

	positions := ResizedItemPositions(original, resized)
	require.Len(t, positions, 2)
	assert.Equal(t, "0_0-0_1", positions[0].String())
	assert.Equal(t, "0_1", positions[1].String())

	assert.Empty(t, ResizedItemPositions(original, original))
}
