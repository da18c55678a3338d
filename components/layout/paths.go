package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// ItemIndex addresses one item inside a layout by section and item position.
type ItemIndex struct {
	Section int `json:"sectionIndex" yaml:"sectionIndex"`
	Item    int `json:"itemIndex" yaml:"itemIndex"`
}

// ItemPath addresses an item in a layout tree. Every entry after the first
// indexes into the nested layout of the item addressed before it.
type ItemPath []ItemIndex

// Parent returns the path of the enclosing container item, or nil when the
// path addresses a root-level item.
func (p ItemPath) Parent() ItemPath {
	if len(p) <= 1 {
		return nil
	}
	return append(ItemPath(nil), p[:len(p)-1]...)
}

// Last returns the innermost index.
func (p ItemPath) Last() (ItemIndex, bool) {
	if len(p) == 0 {
		return ItemIndex{}, false
	}
	return p[len(p)-1], true
}

// Child returns a copy of p extended by idx.
func (p ItemPath) Child(idx ItemIndex) ItemPath {
	out := make(ItemPath, 0, len(p)+1)
	out = append(out, p...)
	return append(out, idx)
}

// Equal compares two paths entry by entry.
func (p ItemPath) Equal(other ItemPath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String serializes the path as "section_item" pairs joined by "-". An empty
// path serializes to "undefined".
func (p ItemPath) String() string {
	if len(p) == 0 {
		return "undefined"
	}
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = fmt.Sprintf("%d_%d", idx.Section, idx.Item)
	}
	return strings.Join(parts, "-")
}

// ParseItemPath is the inverse of String.
func ParseItemPath(value string) (ItemPath, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "undefined" {
		return nil, nil
	}
	parts := strings.Split(value, "-")
	path := make(ItemPath, 0, len(parts))
	for _, part := range parts {
		section, item, ok := strings.Cut(part, "_")
		if !ok {
			return nil, fmt.Errorf("%w: malformed item path segment %q", ErrInvalidArgument, part)
		}
		s, err := strconv.Atoi(section)
		if err != nil || s < 0 {
			return nil, fmt.Errorf("%w: malformed section index %q", ErrInvalidArgument, section)
		}
		i, err := strconv.Atoi(item)
		if err != nil || i < 0 {
			return nil, fmt.Errorf("%w: malformed item index %q", ErrInvalidArgument, item)
		}
		path = append(path, ItemIndex{Section: s, Item: i})
	}
	return path, nil
}

// FindItem resolves path against root.
func FindItem(root *Layout, path ItemPath) (Item, bool) {
	if root == nil || len(path) == 0 {
		return Item{}, false
	}
	current := root
	var item Item
	for depth, idx := range path {
		if current == nil || idx.Section < 0 || idx.Section >= len(current.Sections) {
			return Item{}, false
		}
		items := current.Sections[idx.Section].Items
		if idx.Item < 0 || idx.Item >= len(items) {
			return Item{}, false
		}
		item = items[idx.Item]
		if depth < len(path)-1 {
			if !item.Widget.IsNestedLayout() {
				return Item{}, false
			}
			current = item.Widget.Layout
		}
	}
	return item, true
}

// UpdateItem returns a copy of root where the item at path is replaced by
// fn(item). Only the containers along path are copied; root is not mutated.
func UpdateItem(root Layout, path ItemPath, fn func(Item) Item) (Layout, error) {
	if len(path) == 0 {
		return Layout{}, fmt.Errorf("%w: empty path", ErrItemNotFound)
	}
	updated, ok := updateItem(root, path, fn)
	if !ok {
		return Layout{}, fmt.Errorf("%w: %s", ErrItemNotFound, path)
	}
	return updated, nil
}

func updateItem(root Layout, path ItemPath, fn func(Item) Item) (Layout, bool) {
	idx := path[0]
	if idx.Section < 0 || idx.Section >= len(root.Sections) {
		return Layout{}, false
	}
	section := root.Sections[idx.Section]
	if idx.Item < 0 || idx.Item >= len(section.Items) {
		return Layout{}, false
	}
	item := section.Items[idx.Item]
	if len(path) == 1 {
		item = fn(item)
	} else {
		if !item.Widget.IsNestedLayout() || item.Widget.Layout == nil {
			return Layout{}, false
		}
		nested, ok := updateItem(*item.Widget.Layout, path[1:], fn)
		if !ok {
			return Layout{}, false
		}
		widget := *item.Widget
		widget.Layout = &nested
		item.Widget = &widget
	}

	items := append([]Item(nil), section.Items...)
	items[idx.Item] = item
	section.Items = items
	sections := append([]Section(nil), root.Sections...)
	sections[idx.Section] = section
	root.Sections = sections
	return root, true
}

// WalkItems visits every item depth first, parents before their children.
// Returning false from fn stops descent into that item's nested layout.
func WalkItems(root *Layout, fn func(path ItemPath, item Item) bool) {
	walkItems(root, nil, fn)
}

func walkItems(l *Layout, prefix ItemPath, fn func(ItemPath, Item) bool) {
	if l == nil {
		return
	}
	for s, section := range l.Sections {
		for i, item := range section.Items {
			path := prefix.Child(ItemIndex{Section: s, Item: i})
			if !fn(path, item) {
				continue
			}
			if item.Widget.IsNestedLayout() {
				walkItems(item.Widget.Layout, path, fn)
			}
		}
	}
}

// ResizedItemPositions lists the paths of leaf widgets whose size differs
// between original and resized. Nested layouts are compared item by item.
// Items present only in resized are ignored.
func ResizedItemPositions(original, resized Layout) []ItemPath {
	var positions []ItemPath
	WalkItems(&resized, func(path ItemPath, item Item) bool {
		before, ok := FindItem(&original, path)
		if !ok {
			return false
		}
		if before.Widget.IsNestedLayout() && item.Widget.IsNestedLayout() {
			return true
		}
		if item.Widget != nil && !sameSize(before.Size, item.Size) {
			positions = append(positions, path)
		}
		return false
	})
	return positions
}

func sameSize(a, b SizeByScreen) bool {
	for _, screen := range AllScreens {
		sa, okA := a.For(screen)
		sb, okB := b.For(screen)
		if okA != okB || sa != sb {
			return false
		}
	}
	return true
}
