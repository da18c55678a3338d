package layout

import (
	"context"
	"fmt"
)

// RenderedItem is an item placed in a rendered row together with its path.
type RenderedItem struct {
	Path ItemPath `json:"path" yaml:"path"`
	Item Item     `json:"item" yaml:"item"`
}

// RenderedSection holds the rows a section wraps into on one breakpoint.
type RenderedSection struct {
	Index  int              `json:"index" yaml:"index"`
	Header *SectionHeader   `json:"header,omitempty" yaml:"header,omitempty"`
	Rows   [][]RenderedItem `json:"rows" yaml:"rows"`
}

// RenderSections packs every section of the layout addressed by
// containerPath into rows for screen. An empty path addresses root.
// Nested layouts use their declared size as the column budget and fall back
// to the size of the item holding them.
func RenderSections(root *Layout, containerPath ItemPath, screen ScreenSize) ([]RenderedSection, error) {
	target, budget, err := containerAt(root, containerPath)
	if err != nil {
		return nil, err
	}
	sections := make([]RenderedSection, 0, len(target.Sections))
	for s, section := range target.Sections {
		rendered := RenderedSection{Index: s, Header: section.Header}
		next := 0
		for _, row := range SplitIntoRenderedRows(section.Items, budget, screen) {
			out := make([]RenderedItem, len(row))
			for i, item := range row {
				out[i] = RenderedItem{
					Path: containerPath.Child(ItemIndex{Section: s, Item: next}),
					Item: item,
				}
				next++
			}
			rendered.Rows = append(rendered.Rows, out)
		}
		sections = append(sections, rendered)
	}
	return sections, nil
}

func containerAt(root *Layout, path ItemPath) (*Layout, *SizeByScreen, error) {
	if root == nil {
		return nil, nil, fmt.Errorf("%w: layout is nil", ErrItemNotFound)
	}
	if len(path) == 0 {
		return root, nil, nil
	}
	item, ok := FindItem(root, path)
	if !ok || !item.Widget.IsNestedLayout() || item.Widget.Layout == nil {
		return nil, nil, fmt.Errorf("%w: %s is not a layout", ErrItemNotFound, path)
	}
	size := item.Size
	return item.Widget.Layout, containerBudget(item.Widget.Layout, &size), nil
}

// ItemConstraints summarizes how far an item may be resized on a breakpoint.
type ItemConstraints struct {
	Path            string     `json:"path" yaml:"path"`
	Screen          ScreenSize `json:"screen" yaml:"screen"`
	Type            WidgetType `json:"type,omitempty" yaml:"type,omitempty"`
	Width           int        `json:"width" yaml:"width"`
	Height          int        `json:"height,omitempty" yaml:"height,omitempty"`
	DefaultWidth    int        `json:"defaultWidth" yaml:"defaultWidth"`
	MinWidth        int        `json:"minWidth" yaml:"minWidth"`
	MaxWidth        int        `json:"maxWidth" yaml:"maxWidth"`
	DefaultHeight   int        `json:"defaultHeight" yaml:"defaultHeight"`
	MinHeight       int        `json:"minHeight" yaml:"minHeight"`
	MaxHeight       int        `json:"maxHeight" yaml:"maxHeight"`
	RowMinHeight    int        `json:"rowMinHeight" yaml:"rowMinHeight"`
	RowMaxHeight    int        `json:"rowMaxHeight" yaml:"rowMaxHeight"`
	ContainerHeight int        `json:"containerHeight,omitempty" yaml:"containerHeight,omitempty"`
}

// Constraints computes the resize bounds of the item at path on screen.
// Invariant violations in the layout are returned as errors.
func (e *Engine) Constraints(ctx context.Context, root *Layout, path ItemPath, screen ScreenSize) (ItemConstraints, error) {
	item, ok := FindItem(root, path)
	if !ok {
		return ItemConstraints{}, fmt.Errorf("%w: %s", ErrItemNotFound, path)
	}
	var (
		out ItemConstraints
		err error
	)
	if panicErr := Recover(func() {
		out, err = e.constraints(root, path, item, screen)
	}); panicErr != nil {
		return ItemConstraints{}, panicErr
	}
	if err != nil {
		return ItemConstraints{}, err
	}
	e.record(ctx, "layout.item.constraints", map[string]any{
		"path":   out.Path,
		"screen": string(screen),
	})
	return out, nil
}

func (e *Engine) constraints(root *Layout, path ItemPath, item Item, screen ScreenSize) (ItemConstraints, error) {
	info := e.SizeInfo(item.Widget)
	size := SizeForScreen(screen, &item.Size)
	single := []Item{item}
	out := ItemConstraints{
		Path:          path.String(),
		Screen:        screen,
		Width:         size.GridWidth,
		Height:        size.GridHeight,
		DefaultWidth:  info.Width.Default,
		MinWidth:      e.MinWidth(item.Widget, screen),
		DefaultHeight: info.Height.Default,
		MinHeight:     e.MinHeight(single, screen),
		MaxHeight:     e.MaxHeight(single, screen),
	}
	if item.Widget != nil {
		out.Type = item.Widget.Type
	}
	if item.Widget.IsNestedLayout() {
		out.ContainerHeight = e.ItemContainerHeight(item, screen)
	}

	parentPath := path.Parent()
	sections, err := RenderSections(root, parentPath, screen)
	if err != nil {
		return ItemConstraints{}, err
	}
	last, _ := path.Last()
	out.MaxWidth = GridColumnsCount
	for _, section := range sections {
		if section.Index != last.Section {
			continue
		}
		var items []Item
		for _, row := range section.Rows {
			for _, rendered := range row {
				items = append(items, rendered.Item)
				if rendered.Path.Equal(path) {
					rowItems := make([]Item, len(row))
					for i := range row {
						rowItems[i] = row[i].Item
					}
					out.RowMinHeight, out.RowMaxHeight = e.HeightWindow(rowItems, screen)
				}
			}
		}
		out.MaxWidth = ItemMaxGridWidth(items, last.Item, screen)
	}
	if parentPath != nil {
		parent, _ := FindItem(root, parentPath)
		out.MaxWidth = min(out.MaxWidth, WidthForScreen(screen, &parent.Size))
	}
	return out, nil
}
