package layout

import "math"

// ItemHeightForGrid converts grid rows into pixels.
func ItemHeightForGrid(gridHeight int) int {
	return gridHeight * GridRowHeightPx
}

// HeightForRatioAndScreen returns the pixel height of an item sized by a
// width ratio (in percent) on the container width of screen. A missing ratio
// counts as 1%.
func HeightForRatioAndScreen(size LayoutSize, screen ScreenSize) float64 {
	ratio := size.HeightAsRatio
	if ratio == 0 {
		ratio = 1
	}
	column := float64(ContainerWidths[screen]) / GridColumnsCount
	return column * float64(size.GridWidth) * (ratio / 100)
}

// itemHeightForScreen is the height used to compare row members: pixels for
// grid heights, width times ratio otherwise.
func itemHeightForScreen(item Item, screen ScreenSize) float64 {
	size, ok := item.Size.For(screen)
	if !ok || size.GridWidth == 0 {
		return 0
	}
	if size.HasGridHeight() {
		return float64(ItemHeightForGrid(size.GridHeight))
	}
	return float64(size.GridWidth) * size.HeightAsRatio
}

// UnifyItemHeights expands every item to all breakpoints and, per breakpoint,
// stretches the ratio height of every rendered row member to the tallest one.
// Items with a grid height keep it. The xs ratio is capped at
// MaxHeightAsRatioXS. Items without an xl size keep their explicit sizes.
func UnifyItemHeights(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = item
		if item.Size.XL != nil {
			out[i].Size = ExpandToAllScreens(*item.Size.XL)
		}
	}
	for _, screen := range AllScreens {
		rows := SplitIntoRenderedRows(out, nil, screen)
		unified := make([]Item, 0, len(out))
		for _, row := range rows {
			unified = append(unified, unifyRowHeights(row, screen)...)
		}
		out = unified
	}
	return out
}

func unifyRowHeights(row []Item, screen ScreenSize) []Item {
	tallest := 0.0
	for _, item := range row {
		tallest = math.Max(tallest, itemHeightForScreen(item, screen))
	}
	if tallest == 0 {
		return row
	}
	out := make([]Item, len(row))
	for i, item := range row {
		out[i] = withUnifiedHeight(item, screen, tallest)
	}
	return out
}

func withUnifiedHeight(item Item, screen ScreenSize, tallest float64) Item {
	size, ok := item.Size.For(screen)
	if !ok {
		return item
	}
	ratio := 0.0
	if size.GridWidth > 0 {
		ratio = roundTo(tallest/float64(size.GridWidth), 2)
	}
	if !size.HasGridHeight() && size.HeightAsRatio != ratio {
		size.HeightAsRatio = ratio
		item.Size = item.Size.With(screen, size)
	}
	if screen == ScreenXS && ratio > MaxHeightAsRatioXS {
		size.HeightAsRatio = MaxHeightAsRatioXS
		item.Size = item.Size.With(screen, size)
	}
	return item
}

func roundTo(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}

// UnifyLayoutHeights applies UnifyItemHeights to every top-level section.
func UnifyLayoutHeights(root Layout) Layout {
	out := root
	out.Sections = make([]Section, len(root.Sections))
	for i, section := range root.Sections {
		out.Sections[i] = section
		out.Sections[i].Items = UnifyItemHeights(section.Items)
	}
	return out
}

// LayoutWithoutGridHeights drops the persisted xl grid height of every leaf
// item, recursing into nested layouts.
func LayoutWithoutGridHeights(root Layout) Layout {
	out := root
	out.Sections = make([]Section, len(root.Sections))
	for i, section := range root.Sections {
		items := make([]Item, len(section.Items))
		for j, item := range section.Items {
			items[j] = withoutGridHeight(item)
		}
		out.Sections[i] = section
		out.Sections[i].Items = items
	}
	return out
}

func withoutGridHeight(item Item) Item {
	if item.Widget.IsNestedLayout() && item.Widget.Layout != nil {
		widget := *item.Widget
		nested := LayoutWithoutGridHeights(*widget.Layout)
		widget.Layout = &nested
		item.Widget = &widget
		return item
	}
	if item.Size.XL != nil && item.Size.XL.HasGridHeight() {
		xl := *item.Size.XL
		xl.GridHeight = 0
		item.Size.XL = &xl
	}
	return item
}

// WidgetMinHeight returns the pixel height below which item should not be
// rendered given its persisted size. It reports false in export mode and when
// current carries no grid height.
func (e *Engine) WidgetMinHeight(item Item, current *LayoutSize, exportMode bool) (int, bool) {
	if exportMode || current == nil || !current.HasGridHeight() {
		return 0, false
	}
	resolved := ItemHeightForGrid(current.GridHeight)
	preferred := ItemHeightForGrid(e.SizeInfo(item.Widget).Height.Default)
	return max(resolved, preferred), true
}
