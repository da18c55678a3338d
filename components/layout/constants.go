package layout

const (
	// GridColumnsCount is the column budget of a full-width row.
	GridColumnsCount = 12
	// GridRowHeightPx is the pixel height of a single grid row.
	GridRowHeightPx = 20
	// MaxHeightAsRatioXS caps ratio heights on the smallest breakpoint.
	MaxHeightAsRatioXS = 40
	// NestedLayoutMaxGridHeight is the height ceiling reported for rows that
	// contain a nested layout.
	NestedLayoutMaxGridHeight = 1000
	// CustomWidgetMinGridWidth is the fixed minimum width of custom and
	// placeholder widgets.
	CustomWidgetMinGridWidth = 1
	// ZoomToolbarGridHeight is the extra height zoomable charts reserve when
	// insight zooming is enabled.
	ZoomToolbarGridHeight = 2
)

// ContainerWidths is the pixel width of the layout container per breakpoint.
var ContainerWidths = map[ScreenSize]int{
	ScreenXL: 1400,
	ScreenLG: 1170,
	ScreenMD: 970,
	ScreenSM: 750,
	ScreenXS: 480,
}

var (
	kpiSizeInfoDefault = VisualizationSizeInfo{
		Width:  SizeRange{Default: 2, Min: 2, Max: 12},
		Height: SizeRange{Default: 8, Min: 8, Max: 40},
	}
	kpiSizeInfoDefaultLegacy = VisualizationSizeInfo{
		Width:  SizeRange{Default: 2, Min: 2, Max: 12},
		Height: SizeRange{Default: 11, Min: 11, Max: 11},
	}
	kpiWithComparisonSizeInfo = VisualizationSizeInfo{
		Width:  SizeRange{Default: 2, Min: 2, Max: 12},
		Height: SizeRange{Default: 11, Min: 10, Max: 40},
	}
	kpiWithComparisonSizeInfoLegacy = VisualizationSizeInfo{
		Width:  SizeRange{Default: 2, Min: 2, Max: 12},
		Height: SizeRange{Default: 14, Min: 14, Max: 14},
	}
	kpiWithoutComparisonSizeInfo = VisualizationSizeInfo{
		Width:  SizeRange{Default: 2, Min: 2, Max: 12},
		Height: SizeRange{Default: 8, Min: 6, Max: 40},
	}
	kpiWithoutComparisonSizeInfoLegacy = VisualizationSizeInfo{
		Width:  SizeRange{Default: 2, Min: 2, Max: 12},
		Height: SizeRange{Default: 11, Min: 11, Max: 11},
	}
	insightSizeInfoDefault = VisualizationSizeInfo{
		Width:  SizeRange{Default: 6, Min: 2, Max: 12},
		Height: SizeRange{Default: 22, Min: 12, Max: 40},
	}
	insightSizeInfoDefaultLegacy = VisualizationSizeInfo{
		Width:  SizeRange{Default: 6, Min: 4, Max: 12},
		Height: SizeRange{Default: 22, Min: 22, Max: 22},
	}
	richTextSizeInfoDefault = VisualizationSizeInfo{
		Width:  SizeRange{Default: 4, Min: 1, Max: 12},
		Height: SizeRange{Default: 8, Min: 1, Max: NestedLayoutMaxGridHeight},
	}
	visualizationSwitcherSizeInfoDefault = VisualizationSizeInfo{
		Width:  SizeRange{Default: 6, Min: 2, Max: 12},
		Height: SizeRange{Default: 22, Min: 12, Max: 40},
	}
	nestedLayoutSizeInfoDefault = VisualizationSizeInfo{
		Width:  SizeRange{Default: 12, Min: 1, Max: 12},
		Height: SizeRange{Default: 22, Min: 1, Max: NestedLayoutMaxGridHeight},
	}
)

// visualizationSizes is keyed by visualization type and holds the
// custom-height preset followed by the legacy preset.
var visualizationSizes = map[string][2]VisualizationSizeInfo{
	"headline": {
		{Width: SizeRange{Default: 2, Min: 2, Max: 12}, Height: SizeRange{Default: 11, Min: 6, Max: 40}},
		{Width: SizeRange{Default: 2, Min: 2, Max: 12}, Height: SizeRange{Default: 11, Min: 11, Max: 11}},
	},
	"xirr": {
		{Width: SizeRange{Default: 2, Min: 2, Max: 12}, Height: SizeRange{Default: 11, Min: 6, Max: 40}},
		{Width: SizeRange{Default: 2, Min: 2, Max: 12}, Height: SizeRange{Default: 11, Min: 11, Max: 11}},
	},
	"table": {
		{Width: SizeRange{Default: 12, Min: 3, Max: 12}, Height: SizeRange{Default: 22, Min: 12, Max: 40}},
		{Width: SizeRange{Default: 12, Min: 3, Max: 12}, Height: SizeRange{Default: 22, Min: 22, Max: 22}},
	},
	"pushpin": {
		{Width: SizeRange{Default: 6, Min: 6, Max: 12}, Height: SizeRange{Default: 22, Min: 16, Max: 40}},
		{Width: SizeRange{Default: 6, Min: 6, Max: 12}, Height: SizeRange{Default: 22, Min: 22, Max: 22}},
	},
	"donut": {
		{Width: SizeRange{Default: 4, Min: 3, Max: 12}, Height: SizeRange{Default: 22, Min: 12, Max: 40}},
		{Width: SizeRange{Default: 4, Min: 4, Max: 12}, Height: SizeRange{Default: 22, Min: 22, Max: 22}},
	},
	"pie": {
		{Width: SizeRange{Default: 4, Min: 3, Max: 12}, Height: SizeRange{Default: 22, Min: 12, Max: 40}},
		{Width: SizeRange{Default: 4, Min: 4, Max: 12}, Height: SizeRange{Default: 22, Min: 22, Max: 22}},
	},
	"funnel": {
		{Width: SizeRange{Default: 4, Min: 3, Max: 12}, Height: SizeRange{Default: 22, Min: 12, Max: 40}},
		{Width: SizeRange{Default: 4, Min: 4, Max: 12}, Height: SizeRange{Default: 22, Min: 22, Max: 22}},
	},
	"treemap": {
		{Width: SizeRange{Default: 6, Min: 3, Max: 12}, Height: SizeRange{Default: 22, Min: 12, Max: 40}},
		{Width: SizeRange{Default: 6, Min: 4, Max: 12}, Height: SizeRange{Default: 22, Min: 22, Max: 22}},
	},
	"heatmap": {
		{Width: SizeRange{Default: 6, Min: 3, Max: 12}, Height: SizeRange{Default: 22, Min: 12, Max: 40}},
		{Width: SizeRange{Default: 6, Min: 4, Max: 12}, Height: SizeRange{Default: 22, Min: 22, Max: 22}},
	},
	"bullet": {
		{Width: SizeRange{Default: 6, Min: 3, Max: 12}, Height: SizeRange{Default: 12, Min: 8, Max: 40}},
		{Width: SizeRange{Default: 6, Min: 4, Max: 12}, Height: SizeRange{Default: 22, Min: 22, Max: 22}},
	},
}

// zoomableVisualizations reserve room for the zoom toolbar when zooming is on.
var zoomableVisualizations = map[string]struct{}{
	"area":    {},
	"bar":     {},
	"bubble":  {},
	"column":  {},
	"combo":   {},
	"combo2":  {},
	"line":    {},
	"scatter": {},
}
