package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	layout "github.com/goliatone/go-dashboard-layout/components/layout"
)

type constraintsService interface {
	Constraints(ctx context.Context, req layout.ConstraintsRequest) (layout.ItemConstraints, error)
}

// ItemConstraintsQuery reports the resize bounds of an item.
type ItemConstraintsQuery struct {
	service constraintsService
}

// NewItemConstraintsQuery builds the query.
func NewItemConstraintsQuery(service constraintsService) *ItemConstraintsQuery {
	return &ItemConstraintsQuery{service: service}
}

var _ gocommand.Querier[layout.ConstraintsRequest, layout.ItemConstraints] = (*ItemConstraintsQuery)(nil)

// Query resolves constraints for the requested item.
func (q *ItemConstraintsQuery) Query(ctx context.Context, req layout.ConstraintsRequest) (layout.ItemConstraints, error) {
	return q.service.Constraints(ctx, req)
}
