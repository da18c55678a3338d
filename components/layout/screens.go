package layout

// ExpandToAllScreens derives the size of every breakpoint from the xl size.
// Heights are copied unchanged; widths follow the fixed breakpoint table. An
// xl width outside 0..12 panics with an *InvariantError.
func ExpandToAllScreens(xl LayoutSize) SizeByScreen {
	w := xl.GridWidth
	switch {
	case w == 0:
		return sizeForAllScreens(xl, 0, 0, 0, 0, 0)
	case w == 1:
		return sizeForAllScreens(xl, w, w, 2, 6, 12)
	case w == 2:
		return sizeForAllScreens(xl, w, w, 4, 6, 12)
	case w >= 3 && w <= 9:
		return sizeForAllScreens(xl, w, w, 6, 12, 12)
	case w >= 10 && w <= GridColumnsCount:
		return sizeForAllScreens(xl, w, w, 12, 12, 12)
	}
	invariant(false, "expand", "unsupported xl width %d", w)
	return SizeByScreen{}
}

func sizeForAllScreens(xl LayoutSize, xlW, lg, md, sm, xs int) SizeByScreen {
	size := func(width int) *LayoutSize {
		if xl.HasGridHeight() {
			return &LayoutSize{GridWidth: width, GridHeight: xl.GridHeight}
		}
		return &LayoutSize{GridWidth: width, HeightAsRatio: xl.HeightAsRatio}
	}
	return SizeByScreen{
		XL: size(xlW),
		LG: size(lg),
		MD: size(md),
		SM: size(sm),
		XS: size(xs),
	}
}

// SizeForScreen resolves the size for screen: an explicit entry wins, then the
// xl expansion, and an item with no size data spans the full grid.
func SizeForScreen(screen ScreenSize, size *SizeByScreen) LayoutSize {
	if size == nil {
		return LayoutSize{GridWidth: GridColumnsCount}
	}
	if explicit, ok := size.For(screen); ok {
		return explicit
	}
	if size.XL != nil {
		expanded, _ := ExpandToAllScreens(*size.XL).For(screen)
		return expanded
	}
	return LayoutSize{GridWidth: GridColumnsCount}
}

// WidthForScreen projects the width of SizeForScreen.
func WidthForScreen(screen ScreenSize, size *SizeByScreen) int {
	return SizeForScreen(screen, size).GridWidth
}

// containerBudget returns the sizes a nested layout packs its rows against:
// the declared layout size, else the size of the item holding it. A nil result
// means the full grid.
func containerBudget(l *Layout, holder *SizeByScreen) *SizeByScreen {
	if l != nil {
		if declared := xlSizeByScreen(l.Size); declared != nil {
			return declared
		}
	}
	return holder
}

func xlSizeByScreen(size *LayoutSize) *SizeByScreen {
	if size == nil {
		return nil
	}
	expanded := ExpandToAllScreens(*size)
	return &expanded
}
