package layout

import (
	"context"
	"errors"
	"strings"
)

var errMissingDocumentID = errors.New("layout: document id is required")

// ServiceOptions configures a Service. The store is required for every
// operation; sizes and telemetry are optional.
type ServiceOptions struct {
	Store     LayoutStore
	Sizes     SizeInfoProvider
	Telemetry Telemetry
}

// Service runs sizing operations against stored documents.
type Service struct {
	opts ServiceOptions
}

// NewService builds a Service instance with safe defaults.
func NewService(opts ServiceOptions) *Service {
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{opts: opts}
}

// NormalizeItemRequest addresses one item of a stored document.
type NormalizeItemRequest struct {
	DocumentID string `json:"documentId"`
	Path       string `json:"path"`
}

// ResizeItemRequest sets the xl size of one item.
type ResizeItemRequest struct {
	DocumentID string `json:"documentId"`
	Path       string `json:"path"`
	Width      int    `json:"width"`
	Height     *int   `json:"height,omitempty"`
}

// RowsRequest selects the container whose rows are rendered.
type RowsRequest struct {
	DocumentID string     `json:"documentId"`
	Path       string     `json:"path,omitempty"`
	Screen     ScreenSize `json:"screen,omitempty"`
}

// ConstraintsRequest selects an item and breakpoint.
type ConstraintsRequest struct {
	DocumentID string     `json:"documentId"`
	Path       string     `json:"path"`
	Screen     ScreenSize `json:"screen,omitempty"`
}

// Document returns the stored document.
func (s *Service) Document(ctx context.Context, id string) (Document, error) {
	store, err := s.store()
	if err != nil {
		return Document{}, err
	}
	if strings.TrimSpace(id) == "" {
		return Document{}, errMissingDocumentID
	}
	return store.Get(ctx, id)
}

// ImportDocument validates doc and stores it under id, creating a new id
// when id is blank.
func (s *Service) ImportDocument(ctx context.Context, id string, doc Document) (string, error) {
	store, err := s.store()
	if err != nil {
		return "", err
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return "", err
	}
	if strings.TrimSpace(id) == "" {
		id, err = store.Create(ctx, doc)
	} else {
		err = store.Save(ctx, id, doc)
	}
	if err != nil {
		return "", err
	}
	s.opts.Telemetry.Record(ctx, "layout.document.imported", map[string]any{"document_id": id})
	return id, nil
}

// NormalizeItem clamps one item to its parent container and saves the
// document when the item changed.
func (s *Service) NormalizeItem(ctx context.Context, req NormalizeItemRequest) (_ Item, _ bool, err error) {
	defer recoverInvariant(&err)
	doc, engine, err := s.load(ctx, req.DocumentID)
	if err != nil {
		return Item{}, false, err
	}
	path, err := ParseItemPath(req.Path)
	if err != nil {
		return Item{}, false, err
	}
	item, changed, err := engine.NormalizeToParent(&doc.Layout, path)
	if err != nil || !changed {
		return item, false, err
	}
	doc.Layout, err = UpdateItem(doc.Layout, path, func(Item) Item { return item })
	if err != nil {
		return Item{}, false, err
	}
	if err := s.opts.Store.Save(ctx, req.DocumentID, doc); err != nil {
		return Item{}, false, err
	}
	s.opts.Telemetry.Record(ctx, "layout.document.item_normalized", map[string]any{
		"document_id": req.DocumentID,
		"path":        path.String(),
	})
	return item, true, nil
}

// NormalizeLayout clamps every nested item and saves the document when
// anything changed. It returns the paths of the changed items.
func (s *Service) NormalizeLayout(ctx context.Context, id string) (_ []ItemPath, err error) {
	defer recoverInvariant(&err)
	doc, engine, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out, changed, err := engine.NormalizeLayout(ctx, doc.Layout)
	if err != nil || len(changed) == 0 {
		return nil, err
	}
	doc.Layout = out
	if err := s.opts.Store.Save(ctx, id, doc); err != nil {
		return nil, err
	}
	return changed, nil
}

// ResizeItem applies a validated xl size to one item and saves the document.
func (s *Service) ResizeItem(ctx context.Context, req ResizeItemRequest) (_ Item, err error) {
	defer recoverInvariant(&err)
	doc, engine, err := s.load(ctx, req.DocumentID)
	if err != nil {
		return Item{}, err
	}
	path, err := ParseItemPath(req.Path)
	if err != nil {
		return Item{}, err
	}
	out, item, err := engine.ResizeItem(ctx, doc.Layout, path, req.Width, req.Height)
	if err != nil {
		return Item{}, err
	}
	doc.Layout = out
	if err := s.opts.Store.Save(ctx, req.DocumentID, doc); err != nil {
		return Item{}, err
	}
	return item, nil
}

// UnifyHeights equalizes ratio heights within the rendered rows of every
// top-level section and saves the document. Only xl survives persistence, so
// the stored document keeps the unified xl ratios.
func (s *Service) UnifyHeights(ctx context.Context, id string) (err error) {
	defer recoverInvariant(&err)
	doc, _, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	doc.Layout = UnifyLayoutHeights(doc.Layout)
	if err := s.opts.Store.Save(ctx, id, doc); err != nil {
		return err
	}
	s.opts.Telemetry.Record(ctx, "layout.document.heights_unified", map[string]any{"document_id": id})
	return nil
}

// Rows renders the sections of the addressed container on one breakpoint.
func (s *Service) Rows(ctx context.Context, req RowsRequest) (_ []RenderedSection, err error) {
	defer recoverInvariant(&err)
	doc, _, err := s.load(ctx, req.DocumentID)
	if err != nil {
		return nil, err
	}
	path, err := ParseItemPath(req.Path)
	if err != nil {
		return nil, err
	}
	screen, err := screenOrDefault(req.Screen)
	if err != nil {
		return nil, err
	}
	return RenderSections(&doc.Layout, path, screen)
}

// Constraints computes resize bounds for one item.
func (s *Service) Constraints(ctx context.Context, req ConstraintsRequest) (ItemConstraints, error) {
	doc, engine, err := s.load(ctx, req.DocumentID)
	if err != nil {
		return ItemConstraints{}, err
	}
	path, err := ParseItemPath(req.Path)
	if err != nil {
		return ItemConstraints{}, err
	}
	screen, err := screenOrDefault(req.Screen)
	if err != nil {
		return ItemConstraints{}, err
	}
	return engine.Constraints(ctx, &doc.Layout, path, screen)
}

func (s *Service) load(ctx context.Context, id string) (Document, *Engine, error) {
	doc, err := s.Document(ctx, id)
	if err != nil {
		return Document{}, nil, err
	}
	return doc, doc.Engine(Options{Sizes: s.opts.Sizes, Telemetry: s.opts.Telemetry}), nil
}

func (s *Service) store() (LayoutStore, error) {
	if s == nil || s.opts.Store == nil {
		return nil, ErrMissingStore
	}
	return s.opts.Store, nil
}

func screenOrDefault(screen ScreenSize) (ScreenSize, error) {
	if screen == "" {
		return ScreenXL, nil
	}
	return ParseScreenSize(string(screen))
}
