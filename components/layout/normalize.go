package layout

import (
	"context"
	"fmt"
)

// NormalizeToParent fits the xl width of the item at path into its parent
// container. A wider item is clamped to the parent width but never below its
// own minimum; inside a column container the item is stretched to the parent
// width; inside a row it is left alone. Height is never touched. Root-level
// items are returned unchanged. The boolean reports whether the width changed.
func (e *Engine) NormalizeToParent(root *Layout, path ItemPath) (Item, bool, error) {
	item, ok := FindItem(root, path)
	if !ok {
		return Item{}, false, fmt.Errorf("%w: %s", ErrItemNotFound, path)
	}
	parentPath := path.Parent()
	if parentPath == nil {
		return item, false, nil
	}
	parent, ok := FindItem(root, parentPath)
	if !ok || !parent.Widget.IsNestedLayout() {
		return Item{}, false, fmt.Errorf("%w: parent of %s is not a layout", ErrItemNotFound, path)
	}
	normalized, changed := e.normalizeWithin(item, parent)
	return normalized, changed, nil
}

func (e *Engine) normalizeWithin(item, parent Item) (Item, bool) {
	direction := DirectionRow
	if parent.Widget.Layout != nil {
		direction = parent.Widget.Layout.Direction.OrDefault()
	}
	current := SizeForScreen(ScreenXL, &item.Size)
	parentWidth := WidthForScreen(ScreenXL, containerBudget(parent.Widget.Layout, &parent.Size))
	minWidth := e.MinWidth(item.Widget, ScreenXL)

	width := current.GridWidth
	switch {
	case current.GridWidth > parentWidth:
		width = max(parentWidth, minWidth)
	case direction == DirectionColumn:
		width = parentWidth
	}
	if width == current.GridWidth {
		return item, false
	}
	xl := current
	if item.Size.XL != nil {
		xl = *item.Size.XL
	}
	xl.GridWidth = width
	item.Size = SizeByScreen{XL: &xl}
	return item, true
}

// NormalizeLayout normalizes every item of root against its parent, parents
// first so children are fitted into already-adjusted containers. It returns
// the new layout and the paths whose width changed.
func (e *Engine) NormalizeLayout(ctx context.Context, root Layout) (Layout, []ItemPath, error) {
	var (
		changed []ItemPath
		err     error
	)
	out := root
	var visit func(prefix ItemPath, l *Layout)
	visit = func(prefix ItemPath, l *Layout) {
		if l == nil {
			return
		}
		for s, section := range l.Sections {
			for i := range section.Items {
				if err != nil {
					return
				}
				path := prefix.Child(ItemIndex{Section: s, Item: i})
				if prefix != nil {
					item, didChange, nerr := e.NormalizeToParent(&out, path)
					if nerr != nil {
						err = nerr
						return
					}
					if didChange {
						out, err = UpdateItem(out, path, func(Item) Item { return item })
						if err != nil {
							return
						}
						changed = append(changed, path)
					}
				}
				current, _ := FindItem(&out, path)
				if current.Widget.IsNestedLayout() {
					visit(path, current.Widget.Layout)
				}
			}
		}
	}
	visit(nil, &root)
	if err != nil {
		return Layout{}, nil, err
	}
	if len(changed) > 0 {
		e.record(ctx, "layout.item.normalized", map[string]any{
			"changed": pathStrings(changed),
		})
	}
	return out, changed, nil
}

// ValidateWidgetSize clamps width into [min width, GridColumnsCount] and a
// non-nil height into the widget's height bounds.
func (e *Engine) ValidateWidgetSize(width int, height *int, widget *Widget) (int, *int) {
	info := e.SizeInfo(widget)
	validWidth := clampInt(width, info.Width.Min, GridColumnsCount)
	if height == nil {
		return validWidth, nil
	}
	validHeight := clampInt(*height, info.Height.Min, info.Height.Max)
	return validWidth, &validHeight
}

// ResizeItem applies a validated xl size to the item at path and fits it into
// its parent. A nil height keeps the current height.
func (e *Engine) ResizeItem(ctx context.Context, root Layout, path ItemPath, width int, height *int) (Layout, Item, error) {
	item, ok := FindItem(&root, path)
	if !ok {
		return Layout{}, Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, path)
	}
	validWidth, validHeight := e.ValidateWidgetSize(width, height, item.Widget)
	xl := SizeForScreen(ScreenXL, &item.Size)
	if item.Size.XL != nil {
		xl = *item.Size.XL
	}
	xl.GridWidth = validWidth
	if validHeight != nil {
		xl.GridHeight = *validHeight
	}
	resized := item
	resized.Size = SizeByScreen{XL: &xl}

	out, err := UpdateItem(root, path, func(Item) Item { return resized })
	if err != nil {
		return Layout{}, Item{}, err
	}
	if path.Parent() != nil {
		normalized, changed, err := e.NormalizeToParent(&out, path)
		if err != nil {
			return Layout{}, Item{}, err
		}
		if changed {
			out, err = UpdateItem(out, path, func(Item) Item { return normalized })
			if err != nil {
				return Layout{}, Item{}, err
			}
			resized = normalized
		}
	}
	e.record(ctx, "layout.item.resized", map[string]any{
		"path":   path.String(),
		"width":  SizeForScreen(ScreenXL, &resized.Size).GridWidth,
		"height": SizeForScreen(ScreenXL, &resized.Size).GridHeight,
	})
	return out, resized, nil
}

func clampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func pathStrings(paths []ItemPath) []string {
	out := make([]string, len(paths))
	for i, path := range paths {
		out[i] = path.String()
	}
	return out
}
