package layout

import (
	"context"
	"fmt"
	"strings"

	"github.com/ettle/strcase"
)

// ScreenSize names a responsive breakpoint class.
type ScreenSize string

const (
	ScreenXL ScreenSize = "xl"
	ScreenLG ScreenSize = "lg"
	ScreenMD ScreenSize = "md"
	ScreenSM ScreenSize = "sm"
	ScreenXS ScreenSize = "xs"
)

// AllScreens lists breakpoints ordered by decreasing container width.
var AllScreens = []ScreenSize{ScreenXL, ScreenLG, ScreenMD, ScreenSM, ScreenXS}

// ParseScreenSize validates a breakpoint name.
func ParseScreenSize(value string) (ScreenSize, error) {
	screen := ScreenSize(strings.ToLower(strings.TrimSpace(value)))
	for _, candidate := range AllScreens {
		if candidate == screen {
			return screen, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported screen size %q", ErrInvalidArgument, value)
}

// LayoutSize is the size of a layout item for a single breakpoint. A zero
// GridHeight or HeightAsRatio means the value is not set.
type LayoutSize struct {
	GridWidth     int     `json:"gridWidth" yaml:"gridWidth"`
	GridHeight    int     `json:"gridHeight,omitempty" yaml:"gridHeight,omitempty"`
	HeightAsRatio float64 `json:"heightAsRatio,omitempty" yaml:"heightAsRatio,omitempty"`
}

// HasGridHeight reports whether the size carries an explicit row height.
func (s LayoutSize) HasGridHeight() bool {
	return s.GridHeight > 0
}

// SizeByScreen holds per-breakpoint sizes. Only XL is persisted; the rest are
// derived on demand.
type SizeByScreen struct {
	XL *LayoutSize `json:"xl,omitempty" yaml:"xl,omitempty"`
	LG *LayoutSize `json:"lg,omitempty" yaml:"lg,omitempty"`
	MD *LayoutSize `json:"md,omitempty" yaml:"md,omitempty"`
	SM *LayoutSize `json:"sm,omitempty" yaml:"sm,omitempty"`
	XS *LayoutSize `json:"xs,omitempty" yaml:"xs,omitempty"`
}

// For returns the size recorded for screen.
func (s SizeByScreen) For(screen ScreenSize) (LayoutSize, bool) {
	var size *LayoutSize
	switch screen {
	case ScreenXL:
		size = s.XL
	case ScreenLG:
		size = s.LG
	case ScreenMD:
		size = s.MD
	case ScreenSM:
		size = s.SM
	case ScreenXS:
		size = s.XS
	}
	if size == nil {
		return LayoutSize{}, false
	}
	return *size, true
}

// With returns a copy of s with the size for screen replaced.
func (s SizeByScreen) With(screen ScreenSize, size LayoutSize) SizeByScreen {
	out := s
	value := size
	switch screen {
	case ScreenXL:
		out.XL = &value
	case ScreenLG:
		out.LG = &value
	case ScreenMD:
		out.MD = &value
	case ScreenSM:
		out.SM = &value
	case ScreenXS:
		out.XS = &value
	}
	return out
}

// IsZero reports whether no breakpoint carries a size.
func (s SizeByScreen) IsZero() bool {
	return s.XL == nil && s.LG == nil && s.MD == nil && s.SM == nil && s.XS == nil
}

// XLOnly drops every derived breakpoint, leaving the persisted form.
func (s SizeByScreen) XLOnly() SizeByScreen {
	if s.XL == nil {
		return SizeByScreen{}
	}
	xl := *s.XL
	return SizeByScreen{XL: &xl}
}

// Direction controls how a container combines the widths of its children.
type Direction string

const (
	DirectionRow    Direction = "row"
	DirectionColumn Direction = "column"
)

// OrDefault resolves the empty direction to row.
func (d Direction) OrDefault() Direction {
	if d == DirectionColumn {
		return DirectionColumn
	}
	return DirectionRow
}

// WidgetType is the closed set of widget kinds the sizing engine knows about.
type WidgetType string

const (
	WidgetTypeKPI                   WidgetType = "kpi"
	WidgetTypeKPIPlaceholder        WidgetType = "kpiPlaceholder"
	WidgetTypeInsight               WidgetType = "insight"
	WidgetTypeInsightPlaceholder    WidgetType = "insightPlaceholder"
	WidgetTypeRichText              WidgetType = "richText"
	WidgetTypeVisualizationSwitcher WidgetType = "visualizationSwitcher"
	WidgetTypeLayout                WidgetType = "layout"
	WidgetTypeCustom                WidgetType = "custom"
	WidgetTypePlaceholder           WidgetType = "placeholder"
)

var knownWidgetTypes = map[WidgetType]struct{}{
	WidgetTypeKPI:                   {},
	WidgetTypeKPIPlaceholder:        {},
	WidgetTypeInsight:               {},
	WidgetTypeInsightPlaceholder:    {},
	WidgetTypeRichText:              {},
	WidgetTypeVisualizationSwitcher: {},
	WidgetTypeLayout:                {},
	WidgetTypeCustom:                {},
	WidgetTypePlaceholder:           {},
}

// ParseWidgetType accepts any casing or separator style ("rich_text",
// "RichText", "rich-text") and returns the canonical widget type.
func ParseWidgetType(value string) (WidgetType, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("layout: widget type is required")
	}
	candidate := WidgetType(strcase.ToCamel(trimmed))
	if _, ok := knownWidgetTypes[candidate]; ok {
		return candidate, nil
	}
	if strings.EqualFold(trimmed, "IDashboardLayout") || strings.EqualFold(trimmed, "nestedLayout") {
		return WidgetTypeLayout, nil
	}
	return "", fmt.Errorf("layout: unsupported widget type %q", value)
}

// UnmarshalText lets documents spell widget types in any case style.
func (t *WidgetType) UnmarshalText(text []byte) error {
	parsed, err := ParseWidgetType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText keeps the canonical spelling on output.
func (t WidgetType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// ObjRef identifies catalog content such as an insight or a metric.
type ObjRef string

// WidgetContent is the concrete content a widget wraps (insight or KPI).
type WidgetContent interface {
	widgetContent()
}

// InsightDefinition is the catalog entry referenced by insight widgets.
type InsightDefinition struct {
	Ref           ObjRef `json:"ref" yaml:"ref"`
	Title         string `json:"title,omitempty" yaml:"title,omitempty"`
	Visualization string `json:"visualization" yaml:"visualization"`
}

func (*InsightDefinition) widgetContent() {}

// VisualizationType strips the "local:" style prefix from the visualization URL.
func (d InsightDefinition) VisualizationType() string {
	vis := strings.TrimSpace(d.Visualization)
	if idx := strings.LastIndex(vis, ":"); idx >= 0 {
		vis = vis[idx+1:]
	}
	return strings.ToLower(vis)
}

// KPIDefinition describes a KPI widget's metric and optional comparison.
type KPIDefinition struct {
	Metric         ObjRef `json:"metric" yaml:"metric"`
	ComparisonType string `json:"comparisonType,omitempty" yaml:"comparisonType,omitempty"`
}

func (*KPIDefinition) widgetContent() {}

// HasComparison reports whether a comparison metric is configured.
func (k KPIDefinition) HasComparison() bool {
	switch strings.ToLower(strings.TrimSpace(k.ComparisonType)) {
	case "", "none":
		return false
	default:
		return true
	}
}

// Widget is a tagged union over the widget kinds; Type selects which of the
// payload fields is meaningful.
type Widget struct {
	Type           WidgetType     `json:"type" yaml:"type"`
	ID             string         `json:"id,omitempty" yaml:"id,omitempty"`
	Title          string         `json:"title,omitempty" yaml:"title,omitempty"`
	Insight        ObjRef         `json:"insight,omitempty" yaml:"insight,omitempty"`
	KPI            *KPIDefinition `json:"kpi,omitempty" yaml:"kpi,omitempty"`
	Visualizations []Widget       `json:"visualizations,omitempty" yaml:"visualizations,omitempty"`
	Layout         *Layout        `json:"layout,omitempty" yaml:"layout,omitempty"`
}

// IsNestedLayout reports whether the widget is a container.
func (w *Widget) IsNestedLayout() bool {
	return w != nil && w.Type == WidgetTypeLayout
}

// IsCustomOrPlaceholder reports whether the widget has no sizing content of its own.
func (w *Widget) IsCustomOrPlaceholder() bool {
	return w != nil && (w.Type == WidgetTypeCustom || w.Type == WidgetTypePlaceholder)
}

// Item places a widget in a section. A nil Widget is an empty slot.
type Item struct {
	Size   SizeByScreen `json:"size" yaml:"size"`
	Widget *Widget      `json:"widget,omitempty" yaml:"widget,omitempty"`
}

// SectionHeader carries optional section titles.
type SectionHeader struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Section is an ordered group of items rendered as one or more rows.
type Section struct {
	Header *SectionHeader `json:"header,omitempty" yaml:"header,omitempty"`
	Items  []Item         `json:"items" yaml:"items"`
}

// Layout is a dashboard layout or a nested container.
type Layout struct {
	Size      *LayoutSize `json:"size,omitempty" yaml:"size,omitempty"`
	Direction Direction   `json:"direction,omitempty" yaml:"direction,omitempty"`
	Sections  []Section   `json:"sections" yaml:"sections"`
}

// Items flattens every section into a single ordered slice.
func (l *Layout) Items() []Item {
	if l == nil {
		return nil
	}
	var items []Item
	for _, section := range l.Sections {
		items = append(items, section.Items...)
	}
	return items
}

// Settings exposes the feature flags consulted by the sizing engine.
type Settings interface {
	WidgetCustomHeightEnabled() bool
	InsightZoomEnabled() bool
}

// InsightCatalog resolves insight references to their definitions.
type InsightCatalog interface {
	Insight(ref ObjRef) (InsightDefinition, bool)
}

// SizeInfoProvider is the visualization size oracle keyed by visualization type.
type SizeInfoProvider interface {
	VisualizationSizeInfo(visType string, settings Settings) (VisualizationSizeInfo, bool)
}

// LayoutStore persists dashboard documents keyed by id.
type LayoutStore interface {
	Get(ctx context.Context, id string) (Document, error)
	Save(ctx context.Context, id string, doc Document) error
	Create(ctx context.Context, doc Document) (string, error)
}

// SizeRange is a default/min/max triple measured in grid units.
type SizeRange struct {
	Default int `json:"default" yaml:"default"`
	Min     int `json:"min" yaml:"min"`
	Max     int `json:"max" yaml:"max"`
}

// VisualizationSizeInfo describes a widget's width and height bounds.
type VisualizationSizeInfo struct {
	Width  SizeRange `json:"width" yaml:"width"`
	Height SizeRange `json:"height" yaml:"height"`
}
