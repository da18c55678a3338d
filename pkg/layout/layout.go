package layout

import (
	core "github.com/goliatone/go-dashboard-layout/components/layout"
)

// Engine exposes the underlying components/layout.Engine type.
type Engine = core.Engine

// Options re-export for convenience.
type Options = core.Options

// Service exposes the store-backed layout service.
type Service = core.Service

// ServiceOptions re-export for convenience.
type ServiceOptions = core.ServiceOptions

// Document is a persisted dashboard layout.
type Document = core.Document

// NewEngine proxies to the internal constructor.
func NewEngine(opts Options) *Engine {
	return core.NewEngine(opts)
}

// NewService proxies to the internal constructor.
func NewService(opts ServiceOptions) *Service {
	return core.NewService(opts)
}

// ReadDocument proxies to the internal loader.
func ReadDocument(path string) (*Document, error) {
	return core.ReadDocument(path)
}
