package layout

import "context"

// Options configures an Engine. Every collaborator is an interface so callers
// can pass stubs carrying only the flags and insights a test needs.
type Options struct {
	Settings  Settings
	Insights  InsightCatalog
	Sizes     SizeInfoProvider
	Telemetry Telemetry
}

// Engine computes size constraints over layout trees. It holds no mutable
// state; every method is a pure function of its inputs and the options.
type Engine struct {
	settings  Settings
	insights  InsightCatalog
	resolver  *Resolver
	telemetry Telemetry
}

// NewEngine builds an Engine with safe defaults.
func NewEngine(opts Options) *Engine {
	insights := opts.Insights
	if insights == nil {
		insights = NewMemoryInsightCatalog()
	}
	return &Engine{
		settings:  normalizeSettings(opts.Settings),
		insights:  insights,
		resolver:  NewResolver(opts.Sizes),
		telemetry: normalizeTelemetry(opts.Telemetry),
	}
}

// Settings returns the flags the engine resolves sizes with.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Resolver exposes the size resolver used by the engine.
func (e *Engine) Resolver() *Resolver {
	return e.resolver
}

// SizeInfo resolves size bounds for a concrete widget, looking up its insight
// in the catalog.
func (e *Engine) SizeInfo(widget *Widget) VisualizationSizeInfo {
	if widget == nil {
		return e.resolver.SizeInfo(e.settings, WidgetTypePlaceholder, nil)
	}
	return e.resolver.SizeInfo(e.settings, widget.Type, e.content(widget))
}

// content resolves the KPI of KPI widgets and the catalog insight of any
// other widget carrying an insight ref.
func (e *Engine) content(widget *Widget) WidgetContent {
	switch widget.Type {
	case WidgetTypeKPI, WidgetTypeKPIPlaceholder:
		if widget.KPI != nil {
			return widget.KPI
		}
		return nil
	}
	if widget.Insight == "" {
		return nil
	}
	if insight, ok := e.insights.Insight(widget.Insight); ok {
		return &insight
	}
	return nil
}

func (e *Engine) record(ctx context.Context, event string, payload map[string]any) {
	e.telemetry.Record(ctx, event, payload)
}
