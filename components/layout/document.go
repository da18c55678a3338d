package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	documentVersionV1 = "1"
	// DocumentVersion exposes the current document format version for tooling.
	DocumentVersion = documentVersionV1
)

// Document is a persisted dashboard: its flags, the insights its widgets
// reference and the layout tree.
type Document struct {
	Version  string              `json:"version" yaml:"version"`
	Title    string              `json:"title,omitempty" yaml:"title,omitempty"`
	Settings FeatureFlags        `json:"settings" yaml:"settings"`
	Insights []InsightDefinition `json:"insights,omitempty" yaml:"insights,omitempty"`
	Layout   Layout              `json:"layout" yaml:"layout"`
	Source   string              `json:"-" yaml:"-"`
}

// Catalog returns an insight catalog seeded with the document insights.
func (doc *Document) Catalog() *MemoryInsightCatalog {
	return NewMemoryInsightCatalog(doc.Insights...)
}

// Engine builds a sizing engine configured from the document.
func (doc *Document) Engine(opts Options) *Engine {
	opts.Settings = doc.Settings
	if opts.Insights == nil {
		opts.Insights = doc.Catalog()
	}
	return NewEngine(opts)
}

// ReadDocument loads a document from disk.
func ReadDocument(path string) (*Document, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("layout: open document %s: %w", path, err)
	}
	defer f.Close()
	doc, err := decodeDocument(f, path)
	if err != nil {
		return nil, fmt.Errorf("layout: decode document %s: %w", path, err)
	}
	return doc, nil
}

// DecodeDocument reads a YAML or JSON document from any reader.
func DecodeDocument(r io.Reader) (*Document, error) {
	return decodeDocument(r, "")
}

func decodeDocument(r io.Reader, source string) (*Document, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	doc := Document{Settings: DefaultFeatureFlags(), Source: source}
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: parse: %w", ErrInvalidDocument, err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document structure and then its schema.
func (doc *Document) Validate() error {
	if doc.Version != documentVersionV1 {
		return fmt.Errorf("%w: unsupported document version %q", ErrInvalidDocument, doc.Version)
	}
	seen := make(map[ObjRef]struct{}, len(doc.Insights))
	for idx, insight := range doc.Insights {
		if insight.Ref == "" {
			return fmt.Errorf("%w: insight at index %d is missing ref", ErrInvalidDocument, idx)
		}
		if _, exists := seen[insight.Ref]; exists {
			return fmt.Errorf("%w: duplicate insight ref %s", ErrInvalidDocument, insight.Ref)
		}
		seen[insight.Ref] = struct{}{}
	}
	var walkErr error
	WalkItems(&doc.Layout, func(path ItemPath, item Item) bool {
		if walkErr != nil {
			return false
		}
		walkErr = validateItem(path, item)
		return walkErr == nil
	})
	if walkErr != nil {
		return walkErr
	}
	return defaultDocumentValidator.Validate(doc)
}

func validateItem(path ItemPath, item Item) error {
	if item.Size.IsZero() {
		return fmt.Errorf("%w: item %s has no size", ErrInvalidDocument, path)
	}
	widget := item.Widget
	if widget == nil {
		return nil
	}
	switch widget.Type {
	case WidgetTypeLayout:
		if widget.Layout == nil {
			return fmt.Errorf("%w: item %s is a layout without content", ErrInvalidDocument, path)
		}
	case WidgetTypeKPI:
		if widget.KPI == nil {
			return fmt.Errorf("%w: item %s is a kpi without definition", ErrInvalidDocument, path)
		}
	case WidgetTypeInsight:
		if widget.Insight == "" {
			return fmt.Errorf("%w: item %s is an insight without ref", ErrInvalidDocument, path)
		}
	}
	return nil
}

func (doc *Document) applyDefaults() {
	if doc.Version == "" {
		doc.Version = documentVersionV1
	}
}

func (doc *Document) label() string {
	if doc.Source != "" {
		return doc.Source
	}
	if doc.Title != "" {
		return fmt.Sprintf("document %q", doc.Title)
	}
	return "document"
}

// Persisted returns a copy of doc carrying only xl sizes, the form written to
// storage.
func (doc *Document) Persisted() Document {
	out := *doc
	out.Layout = PersistedLayout(doc.Layout)
	out.Insights = append([]InsightDefinition(nil), doc.Insights...)
	return out
}

// PersistedLayout drops every derived breakpoint size, recursing into nested
// layouts.
func PersistedLayout(root Layout) Layout {
	out := root
	if root.Size != nil {
		size := *root.Size
		out.Size = &size
	}
	out.Sections = make([]Section, len(root.Sections))
	for i, section := range root.Sections {
		items := make([]Item, len(section.Items))
		for j, item := range section.Items {
			item.Size = item.Size.XLOnly()
			if item.Widget != nil {
				widget := *item.Widget
				if widget.Layout != nil {
					nested := PersistedLayout(*widget.Layout)
					widget.Layout = &nested
				}
				item.Widget = &widget
			}
			items[j] = item
		}
		out.Sections[i] = section
		out.Sections[i].Items = items
	}
	return out
}

// Format selects the document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts a format name or a file extension.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), ".")) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("layout: unsupported format %q", value)
}

// FormatForPath infers the encoding from a file extension.
func FormatForPath(path string) Format {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return FormatYAML
	}
	return format
}

// EncodeDocument writes the persisted form of doc.
func EncodeDocument(w io.Writer, doc Document, format Format) error {
	persisted := doc.Persisted()
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(persisted); err != nil {
			return fmt.Errorf("layout: encode document: %w", err)
		}
	default:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(persisted); err != nil {
			return fmt.Errorf("layout: encode document: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("layout: encode document: %w", err)
		}
	}
	return nil
}

// WriteDocument encodes doc to path, picking the format from the extension.
func WriteDocument(path string, doc Document) error {
	f, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("layout: create document %s: %w", path, err)
	}
	defer f.Close()
	return EncodeDocument(f, doc, FormatForPath(path))
}
