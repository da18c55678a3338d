package layout

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// SizeHook lets packages register visualization sizes during init().
type SizeHook func(reg *SizeRegistry) error

var (
	globalHookMu sync.Mutex
	globalHooks  []SizeHook
)

// RegisterSizeHook registers a hook executed against new registries.
func RegisterSizeHook(h SizeHook) {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, h)
}

// SizeRegistry implements SizeInfoProvider. Registered visualization types
// take precedence over the built-in chart table.
type SizeRegistry struct {
	mu     sync.RWMutex
	custom map[string]VisualizationSizeInfo
}

var _ SizeInfoProvider = (*SizeRegistry)(nil)

// NewSizeRegistry builds a registry and applies global hooks.
func NewSizeRegistry() *SizeRegistry {
	reg := &SizeRegistry{custom: map[string]VisualizationSizeInfo{}}
	_ = reg.ApplyHooks()
	return reg
}

// ApplyHooks executes registered size hooks.
func (r *SizeRegistry) ApplyHooks() error {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	for _, hook := range globalHooks {
		if err := hook(r); err != nil {
			return err
		}
	}
	return nil
}

// Register stores size bounds for a visualization type.
func (r *SizeRegistry) Register(visType string, info VisualizationSizeInfo) error {
	visType = strings.ToLower(strings.TrimSpace(visType))
	if visType == "" {
		return fmt.Errorf("layout: visualization type is required")
	}
	if err := validateSizeInfo(info); err != nil {
		return fmt.Errorf("layout: size info for %s: %w", visType, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.custom[visType] = info
	return nil
}

// VisualizationSizeInfo resolves registered sizes first, then the built-in table.
func (r *SizeRegistry) VisualizationSizeInfo(visType string, settings Settings) (VisualizationSizeInfo, bool) {
	visType = strings.ToLower(visType)
	r.mu.RLock()
	info, ok := r.custom[visType]
	r.mu.RUnlock()
	if ok {
		return info, true
	}
	return builtinVisualizationSizeInfo(visType, normalizeSettings(settings))
}

// Load registers every entry of a YAML (or JSON) document mapping
// visualization types to size info. An empty document registers nothing.
func (r *SizeRegistry) Load(rd io.Reader) error {
	decoder := yaml.NewDecoder(rd)
	decoder.KnownFields(true)
	var entries map[string]VisualizationSizeInfo
	if err := decoder.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("layout: parse size registry: %w", err)
	}
	types := make([]string, 0, len(entries))
	for visType := range entries {
		types = append(types, visType)
	}
	sort.Strings(types)
	for _, visType := range types {
		if err := r.Register(visType, entries[visType]); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile registers the entries of the size file at path.
func (r *SizeRegistry) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("layout: open size registry %s: %w", path, err)
	}
	defer file.Close()
	return r.Load(file)
}

// Types lists the registered visualization types.
func (r *SizeRegistry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.custom))
	for visType := range r.custom {
		out = append(out, visType)
	}
	sort.Strings(out)
	return out
}

func validateSizeInfo(info VisualizationSizeInfo) error {
	w, h := info.Width, info.Height
	if w.Min < 0 || w.Max > GridColumnsCount || w.Min > w.Max {
		return fmt.Errorf("width bounds %d..%d outside 0..%d", w.Min, w.Max, GridColumnsCount)
	}
	if w.Default < w.Min || w.Default > w.Max {
		return fmt.Errorf("default width %d outside %d..%d", w.Default, w.Min, w.Max)
	}
	if h.Min < 0 || h.Min > h.Max {
		return fmt.Errorf("height bounds %d..%d are inverted", h.Min, h.Max)
	}
	if h.Default < h.Min || h.Default > h.Max {
		return fmt.Errorf("default height %d outside %d..%d", h.Default, h.Min, h.Max)
	}
	return nil
}

// MemoryInsightCatalog is a concurrency-safe InsightCatalog.
type MemoryInsightCatalog struct {
	mu       sync.RWMutex
	insights map[ObjRef]InsightDefinition
}

var _ InsightCatalog = (*MemoryInsightCatalog)(nil)

// NewMemoryInsightCatalog builds a catalog seeded with defs. Entries without
// a ref are skipped.
func NewMemoryInsightCatalog(defs ...InsightDefinition) *MemoryInsightCatalog {
	catalog := &MemoryInsightCatalog{insights: make(map[ObjRef]InsightDefinition, len(defs))}
	for _, def := range defs {
		_ = catalog.Add(def)
	}
	return catalog
}

// Add stores an insight definition.
func (c *MemoryInsightCatalog) Add(def InsightDefinition) error {
	if def.Ref == "" {
		return fmt.Errorf("layout: insight ref is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.insights[def.Ref] = def
	return nil
}

// Insight looks up a definition by reference.
func (c *MemoryInsightCatalog) Insight(ref ObjRef) (InsightDefinition, bool) {
	if c == nil {
		return InsightDefinition{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.insights[ref]
	return def, ok
}

// Len returns the number of stored insights.
func (c *MemoryInsightCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.insights)
}
