package layout

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// InMemoryLayoutStore is a concurrency-safe LayoutStore. Documents are stored
// in their persisted form and copied on every read and write.
type InMemoryLayoutStore struct {
	mu   sync.RWMutex
	data map[string]Document
}

var _ LayoutStore = (*InMemoryLayoutStore)(nil)

// NewInMemoryLayoutStore creates an empty store.
func NewInMemoryLayoutStore() *InMemoryLayoutStore {
	return &InMemoryLayoutStore{
		data: make(map[string]Document),
	}
}

// Get returns a copy of the stored document.
func (s *InMemoryLayoutStore) Get(_ context.Context, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.data[id]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrDocumentNotFound, id)
	}
	return cloneDocument(doc), nil
}

// Save replaces the document stored under id.
func (s *InMemoryLayoutStore) Save(_ context.Context, id string, doc Document) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("layout: document id is required")
	}
	stored := cloneDocument(doc.Persisted())
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = stored
	return nil
}

// Create stores doc under a fresh id.
func (s *InMemoryLayoutStore) Create(ctx context.Context, doc Document) (string, error) {
	id := uuid.NewString()
	if err := s.Save(ctx, id, doc); err != nil {
		return "", err
	}
	return id, nil
}

// IDs lists the stored document ids.
func (s *InMemoryLayoutStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids
}

// NewPlaceholderWidget returns an empty placeholder with a generated id, the
// widget dropped into a layout before its content is chosen.
func NewPlaceholderWidget(widgetType WidgetType) *Widget {
	switch widgetType {
	case WidgetTypeKPIPlaceholder, WidgetTypeInsightPlaceholder, WidgetTypePlaceholder:
	default:
		widgetType = WidgetTypePlaceholder
	}
	return &Widget{Type: widgetType, ID: uuid.NewString()}
}

// NewPlaceholderItem sizes a placeholder with its resolved default size.
func (e *Engine) NewPlaceholderItem(widgetType WidgetType) Item {
	widget := NewPlaceholderWidget(widgetType)
	info := e.SizeInfo(widget)
	xl := LayoutSize{GridWidth: info.Width.Default}
	if e.settings.WidgetCustomHeightEnabled() {
		xl.GridHeight = info.Height.Default
	}
	return Item{Size: SizeByScreen{XL: &xl}, Widget: widget}
}

func cloneDocument(doc Document) Document {
	out := doc
	out.Insights = append([]InsightDefinition(nil), doc.Insights...)
	out.Layout = cloneLayout(doc.Layout)
	return out
}

func cloneLayout(l Layout) Layout {
	out := l
	if l.Size != nil {
		size := *l.Size
		out.Size = &size
	}
	if l.Sections == nil {
		return out
	}
	out.Sections = make([]Section, len(l.Sections))
	for i, section := range l.Sections {
		if section.Header != nil {
			header := *section.Header
			section.Header = &header
		}
		if section.Items != nil {
			items := make([]Item, len(section.Items))
			for j, item := range section.Items {
				items[j] = cloneItem(item)
			}
			section.Items = items
		}
		out.Sections[i] = section
	}
	return out
}

func cloneItem(item Item) Item {
	out := item
	out.Size = cloneSize(item.Size)
	out.Widget = cloneWidget(item.Widget)
	return out
}

func cloneSize(s SizeByScreen) SizeByScreen {
	clone := func(size *LayoutSize) *LayoutSize {
		if size == nil {
			return nil
		}
		value := *size
		return &value
	}
	return SizeByScreen{XL: clone(s.XL), LG: clone(s.LG), MD: clone(s.MD), SM: clone(s.SM), XS: clone(s.XS)}
}

func cloneWidget(w *Widget) *Widget {
	if w == nil {
		return nil
	}
	out := *w
	if w.KPI != nil {
		kpi := *w.KPI
		out.KPI = &kpi
	}
	if w.Visualizations != nil {
		out.Visualizations = make([]Widget, len(w.Visualizations))
		for i := range w.Visualizations {
			out.Visualizations[i] = *cloneWidget(&w.Visualizations[i])
		}
	}
	if w.Layout != nil {
		nested := cloneLayout(*w.Layout)
		out.Layout = &nested
	}
	return &out
}
