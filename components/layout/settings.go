package layout

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FeatureFlags is the default Settings implementation, decodable from YAML or
// JSON documents and from flat flag maps.
type FeatureFlags struct {
	EnableWidgetCustomHeight bool `json:"enableWidgetCustomHeight" yaml:"enableWidgetCustomHeight"`
	EnableInsightZoom        bool `json:"enableInsightZoom" yaml:"enableInsightZoom"`
}

var _ Settings = FeatureFlags{}

// WidgetCustomHeightEnabled selects the grid-height presets over the legacy
// ratio presets.
func (f FeatureFlags) WidgetCustomHeightEnabled() bool { return f.EnableWidgetCustomHeight }

// InsightZoomEnabled reserves toolbar space on zoomable charts.
func (f FeatureFlags) InsightZoomEnabled() bool { return f.EnableInsightZoom }

// DefaultFeatureFlags mirrors the flags new dashboards are created with.
func DefaultFeatureFlags() FeatureFlags {
	return FeatureFlags{EnableWidgetCustomHeight: true}
}

// DecodeFeatureFlags reads flags from a YAML (or JSON) reader. Unknown keys
// are rejected.
func DecodeFeatureFlags(r io.Reader) (FeatureFlags, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	flags := DefaultFeatureFlags()
	if err := decoder.Decode(&flags); err != nil {
		if err == io.EOF {
			return flags, nil
		}
		return FeatureFlags{}, fmt.Errorf("layout: parse settings: %w", err)
	}
	return flags, nil
}

// ReadFeatureFlags loads flags from disk.
func ReadFeatureFlags(path string) (FeatureFlags, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return FeatureFlags{}, fmt.Errorf("layout: open settings %s: %w", path, err)
	}
	defer f.Close()
	return DecodeFeatureFlags(f)
}

// FeatureFlagsFromMap builds flags from a flat settings bag. Keys are matched
// case-insensitively and values may be booleans or boolean strings.
func FeatureFlagsFromMap(values map[string]any) FeatureFlags {
	flags := DefaultFeatureFlags()
	for key, value := range values {
		enabled, ok := flagValue(value)
		if !ok {
			continue
		}
		switch strings.ToLower(key) {
		case "enablewidgetcustomheight", "enablekdwidgetcustomheight":
			flags.EnableWidgetCustomHeight = enabled
		case "enableinsightzoom", "enablekdzooming":
			flags.EnableInsightZoom = enabled
		}
	}
	return flags
}

func flagValue(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, false
		}
		return parsed, true
	default:
		return false, false
	}
}

func normalizeSettings(s Settings) Settings {
	if s == nil {
		return DefaultFeatureFlags()
	}
	return s
}
