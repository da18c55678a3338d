package layout

// SplitIntoRenderedRows partitions items into the rows a fluid 12-column grid
// would render for screen. Items are never reordered or split; an item wider
// than the budget occupies a row of its own. parent supplies the column
// budget and defaults to the full grid.
func SplitIntoRenderedRows(items []Item, parent *SizeByScreen, screen ScreenSize) [][]Item {
	budget := WidthForScreen(screen, parent)
	var rows [][]Item
	var current []Item
	rowWidth := 0
	for _, item := range items {
		width := itemWidth(item, screen)
		if len(current) > 0 && rowWidth+width > budget {
			rows = append(rows, current)
			current = nil
			rowWidth = 0
		}
		current = append(current, item)
		rowWidth += width
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}
	return rows
}

func itemWidth(item Item, screen ScreenSize) int {
	invariant(!item.Size.IsZero(), "split rows", "item size for screen %s is undefined", screen)
	return WidthForScreen(screen, &item.Size)
}

// ItemMaxGridWidth returns the number of columns the item at index may grow to
// without wrapping out of its rendered row.
func ItemMaxGridWidth(items []Item, index int, screen ScreenSize) int {
	rowWidth := 0
	for i, item := range items {
		width := itemWidth(item, screen)
		next := rowWidth + width
		if next <= GridColumnsCount {
			if i == index {
				break
			}
			rowWidth = next
			continue
		}
		if i == index {
			return GridColumnsCount
		}
		rowWidth = width
	}
	return GridColumnsCount - rowWidth
}
