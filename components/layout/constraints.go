package layout

// MinWidth returns the narrowest grid width the widget can be rendered at.
// Containers recurse into their children using their own direction.
func (e *Engine) MinWidth(widget *Widget, screen ScreenSize) int {
	switch {
	case widget == nil || widget.IsCustomOrPlaceholder():
		return CustomWidgetMinGridWidth
	case widget.Type == WidgetTypeVisualizationSwitcher && len(widget.Visualizations) > 0:
		width := 0
		for i := range widget.Visualizations {
			width = max(width, e.SizeInfo(&widget.Visualizations[i]).Width.Min)
		}
		return width
	case widget.IsNestedLayout():
		return e.containerMinWidth(widget.Layout, screen)
	default:
		return e.SizeInfo(widget).Width.Min
	}
}

// ItemMinWidth returns the width an item reserves inside a parent laid out in
// parentDirection. In a row, siblings compete for space so the item's current
// width counts; in a column only its intrinsic minimum matters.
func (e *Engine) ItemMinWidth(item Item, screen ScreenSize, parentDirection Direction) int {
	if item.Widget.IsNestedLayout() {
		return e.containerMinWidth(item.Widget.Layout, screen)
	}
	if parentDirection.OrDefault() == DirectionRow {
		return WidthForScreen(screen, &item.Size)
	}
	return e.MinWidth(item.Widget, screen)
}

func (e *Engine) containerMinWidth(l *Layout, screen ScreenSize) int {
	if l == nil {
		return nestedLayoutSizeInfoDefault.Width.Min
	}
	direction := l.Direction.OrDefault()
	width, found := 0, false
	for _, item := range l.Items() {
		if item.Widget == nil {
			continue
		}
		found = true
		width = max(width, e.ItemMinWidth(item, screen, direction))
	}
	if !found {
		return nestedLayoutSizeInfoDefault.Width.Min
	}
	return width
}

// MaxHeight returns the tallest grid height a row made of items may take: the
// most restrictive member wins. Rows holding a nested layout are bounded only
// by NestedLayoutMaxGridHeight.
func (e *Engine) MaxHeight(items []Item, screen ScreenSize) int {
	for _, item := range items {
		if item.Widget.IsNestedLayout() {
			return NestedLayoutMaxGridHeight
		}
	}
	height, found := 0, false
	for _, item := range items {
		if item.Widget == nil {
			continue
		}
		h := e.widgetMaxHeight(item, screen)
		if !found || h < height {
			height = h
		}
		found = true
	}
	if !found {
		return NestedLayoutMaxGridHeight
	}
	return height
}

func (e *Engine) widgetMaxHeight(item Item, screen ScreenSize) int {
	widget := item.Widget
	switch {
	case widget.Type == WidgetTypeVisualizationSwitcher && len(widget.Visualizations) > 0:
		height := e.SizeInfo(&widget.Visualizations[0]).Height.Max
		for i := 1; i < len(widget.Visualizations); i++ {
			height = min(height, e.SizeInfo(&widget.Visualizations[i]).Height.Max)
		}
		return height
	case widget.IsNestedLayout():
		return e.ItemContainerHeight(item, screen)
	default:
		return e.SizeInfo(widget).Height.Max
	}
}

// MinHeight returns the shortest grid height a row made of items may take:
// the tallest member minimum wins.
func (e *Engine) MinHeight(items []Item, screen ScreenSize) int {
	height := 0
	for _, item := range items {
		if item.Widget == nil {
			continue
		}
		height = max(height, e.widgetMinHeight(item, screen))
	}
	return height
}

func (e *Engine) widgetMinHeight(item Item, screen ScreenSize) int {
	widget := item.Widget
	switch {
	case widget.Type == WidgetTypeVisualizationSwitcher && len(widget.Visualizations) > 0:
		height := 0
		for i := range widget.Visualizations {
			height = max(height, e.SizeInfo(&widget.Visualizations[i]).Height.Min)
		}
		return height
	case widget.IsNestedLayout():
		return e.ItemContainerHeight(item, screen)
	default:
		return e.SizeInfo(widget).Height.Min
	}
}

// HeightWindow returns the allowed height range for a row. When the members'
// ranges do not intersect the maximum is raised to the minimum.
func (e *Engine) HeightWindow(items []Item, screen ScreenSize) (int, int) {
	lo := e.MinHeight(items, screen)
	hi := e.MaxHeight(items, screen)
	return lo, max(lo, hi)
}

// ContainerHeight returns the stacked grid height of a nested layout: for every
// section the rows are packed against the container's own width and each row
// contributes its tallest item. Without a declared layout size the rows are
// packed against the full grid; use ItemContainerHeight when the holding item
// is known.
func (e *Engine) ContainerHeight(widget *Widget, screen ScreenSize) int {
	return e.containerHeight(widget, nil, screen)
}

// ItemContainerHeight is ContainerHeight for the nested layout held by item.
// A layout without a declared size is packed against the item's own size.
func (e *Engine) ItemContainerHeight(item Item, screen ScreenSize) int {
	return e.containerHeight(item.Widget, &item.Size, screen)
}

func (e *Engine) containerHeight(widget *Widget, holder *SizeByScreen, screen ScreenSize) int {
	if widget == nil || widget.Layout == nil || len(widget.Layout.Sections) == 0 {
		return e.SizeInfo(widget).Height.Min
	}
	parent := containerBudget(widget.Layout, holder)
	total := 0
	for _, section := range widget.Layout.Sections {
		for _, row := range SplitIntoRenderedRows(section.Items, parent, screen) {
			tallest := 0
			for _, item := range row {
				tallest = max(tallest, e.itemGridHeight(item, screen))
			}
			total += tallest
		}
	}
	return total
}

func (e *Engine) itemGridHeight(item Item, screen ScreenSize) int {
	if item.Widget.IsNestedLayout() {
		return e.ItemContainerHeight(item, screen)
	}
	if size := SizeForScreen(screen, &item.Size); size.HasGridHeight() {
		return size.GridHeight
	}
	if item.Widget == nil {
		return 0
	}
	return e.SizeInfo(item.Widget).Height.Default
}
