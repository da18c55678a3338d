package layout

// Resolver turns a widget type and its content into size bounds.
type Resolver struct {
	provider SizeInfoProvider
}

// NewResolver builds a resolver backed by the given size oracle. A nil
// provider falls back to a fresh SizeRegistry.
func NewResolver(provider SizeInfoProvider) *Resolver {
	if provider == nil {
		provider = NewSizeRegistry()
	}
	return &Resolver{provider: provider}
}

// SizeInfo resolves the size descriptor for a widget type. content may be nil
// for placeholders that have no insight or KPI chosen yet.
func (r *Resolver) SizeInfo(settings Settings, widgetType WidgetType, content WidgetContent) VisualizationSizeInfo {
	settings = normalizeSettings(settings)
	switch widgetType {
	case WidgetTypeKPI, WidgetTypeKPIPlaceholder:
		return kpiSizeInfo(settings, content)
	case WidgetTypeRichText:
		return richTextSizeInfoDefault
	case WidgetTypeLayout:
		return nestedLayoutSizeInfoDefault
	case WidgetTypeVisualizationSwitcher:
		if insightContent(content) == nil {
			return visualizationSwitcherSizeInfoDefault
		}
	}
	return r.insightSizeInfo(settings, content)
}

// DefaultGridWidth projects width.default.
func (r *Resolver) DefaultGridWidth(settings Settings, widgetType WidgetType, content WidgetContent) int {
	return r.SizeInfo(settings, widgetType, content).Width.Default
}

// MinGridWidth projects width.min.
func (r *Resolver) MinGridWidth(settings Settings, widgetType WidgetType, content WidgetContent) int {
	return r.SizeInfo(settings, widgetType, content).Width.Min
}

// DefaultGridHeight projects height.default.
func (r *Resolver) DefaultGridHeight(settings Settings, widgetType WidgetType, content WidgetContent) int {
	return r.SizeInfo(settings, widgetType, content).Height.Default
}

// MinGridHeight projects height.min.
func (r *Resolver) MinGridHeight(settings Settings, widgetType WidgetType, content WidgetContent) int {
	return r.SizeInfo(settings, widgetType, content).Height.Min
}

// MaxGridHeight projects height.max.
func (r *Resolver) MaxGridHeight(settings Settings, widgetType WidgetType, content WidgetContent) int {
	return r.SizeInfo(settings, widgetType, content).Height.Max
}

func (r *Resolver) insightSizeInfo(settings Settings, content WidgetContent) VisualizationSizeInfo {
	fallback := insightSizeInfoDefaultLegacy
	if settings.WidgetCustomHeightEnabled() {
		fallback = insightSizeInfoDefault
	}
	insight := insightContent(content)
	if insight == nil {
		return fallback
	}
	if info, ok := r.provider.VisualizationSizeInfo(insight.VisualizationType(), settings); ok {
		return info
	}
	return fallback
}

func kpiSizeInfo(settings Settings, content WidgetContent) VisualizationSizeInfo {
	custom := settings.WidgetCustomHeightEnabled()
	kpi, ok := content.(*KPIDefinition)
	if !ok || kpi == nil {
		if custom {
			return kpiSizeInfoDefault
		}
		return kpiSizeInfoDefaultLegacy
	}
	switch {
	case kpi.HasComparison() && custom:
		return kpiWithComparisonSizeInfo
	case kpi.HasComparison():
		return kpiWithComparisonSizeInfoLegacy
	case custom:
		return kpiWithoutComparisonSizeInfo
	default:
		return kpiWithoutComparisonSizeInfoLegacy
	}
}

func insightContent(content WidgetContent) *InsightDefinition {
	insight, ok := content.(*InsightDefinition)
	if !ok || insight == nil {
		return nil
	}
	return insight
}

// builtinVisualizationSizeInfo is the static oracle for known chart types.
func builtinVisualizationSizeInfo(visType string, settings Settings) (VisualizationSizeInfo, bool) {
	custom := settings.WidgetCustomHeightEnabled()
	var info VisualizationSizeInfo
	if presets, ok := visualizationSizes[visType]; ok {
		info = presets[1]
		if custom {
			info = presets[0]
		}
	} else if _, ok := zoomableVisualizations[visType]; ok {
		info = insightSizeInfoDefaultLegacy
		if custom {
			info = insightSizeInfoDefault
		}
	} else {
		return VisualizationSizeInfo{}, false
	}
	if custom && settings.InsightZoomEnabled() {
		if _, ok := zoomableVisualizations[visType]; ok {
			info.Height.Min = min(info.Height.Min+ZoomToolbarGridHeight, info.Height.Max)
			info.Height.Default = min(info.Height.Default+ZoomToolbarGridHeight, info.Height.Max)
		}
	}
	return info, true
}
