package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	layout "github.com/goliatone/go-dashboard-layout/components/layout"
)

type documentService interface {
	Document(ctx context.Context, id string) (layout.Document, error)
}

// DocumentInput addresses a stored document.
type DocumentInput struct {
	DocumentID string `json:"documentId"`
}

// DocumentQuery loads a stored layout document.
type DocumentQuery struct {
	service documentService
}

// NewDocumentQuery builds the query.
func NewDocumentQuery(service documentService) *DocumentQuery {
	return &DocumentQuery{service: service}
}

var _ gocommand.Querier[DocumentInput, layout.Document] = (*DocumentQuery)(nil)

// Query returns the persisted form of the document.
func (q *DocumentQuery) Query(ctx context.Context, input DocumentInput) (layout.Document, error) {
	return q.service.Document(ctx, input.DocumentID)
}
