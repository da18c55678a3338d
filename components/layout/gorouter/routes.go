package gorouter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	router "github.com/goliatone/go-router"

	layout "github.com/goliatone/go-dashboard-layout/components/layout"
	"github.com/goliatone/go-dashboard-layout/components/layout/commands"
	"github.com/goliatone/go-dashboard-layout/components/layout/httpapi"
	"github.com/goliatone/go-dashboard-layout/components/layout/queries"
)

// Config wires go-router with the layout API.
type Config[T any] struct {
	Router   router.Router[T]
	API      httpapi.Executor
	BasePath string
	Routes   RouteConfig
}

// RouteConfig customizes the relative paths used for layout endpoints.
type RouteConfig struct {
	Documents       string
	Document        string
	Rows            string
	NormalizeLayout string
	UnifyHeights    string
	Constraints     string
	NormalizeItem   string
	Resize          string
}

// Register mounts the layout JSON API on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.API == nil {
		return errors.New("gorouter: api executor is required")
	}
	routes := cfg.routes()
	base := cfg.BasePath
	if base == "" {
		base = httpapi.DefaultBasePath
	}
	registerAPI(cfg.Router.Group(base), cfg.API, routes)
	return nil
}

func registerAPI[T any](r router.Router[T], api httpapi.Executor, routes RouteConfig) {
	r.Post(routes.Documents, router.WrapHandler(func(ctx router.Context) error {
		return importDocument(ctx, api, "")
	}))

	r.Put(routes.Document, router.WrapHandler(func(ctx router.Context) error {
		id := ctx.Param("id")
		if id == "" {
			return respondError(ctx, http.StatusBadRequest, errors.New("document id is required"))
		}
		return importDocument(ctx, api, id)
	}))

	r.Get(routes.Document, router.WrapHandler(func(ctx router.Context) error {
		doc, err := api.Document(ctx.Context(), queries.DocumentInput{DocumentID: ctx.Param("id")})
		if err != nil {
			return respondError(ctx, httpapi.StatusForError(err), err)
		}
		return ctx.JSON(http.StatusOK, doc)
	}))

	r.Get(routes.Rows, router.WrapHandler(func(ctx router.Context) error {
		rows, err := api.Rows(ctx.Context(), layout.RowsRequest{
			DocumentID: ctx.Param("id"),
			Path:       ctx.Query("path"),
			Screen:     layout.ScreenSize(ctx.Query("screen")),
		})
		if err != nil {
			return respondError(ctx, httpapi.StatusForError(err), err)
		}
		return ctx.JSON(http.StatusOK, rows)
	}))

	r.Post(routes.NormalizeLayout, router.WrapHandler(func(ctx router.Context) error {
		var result commands.NormalizeResult
		input := commands.NormalizeLayoutInput{DocumentID: ctx.Param("id"), Result: &result}
		if err := api.NormalizeLayout(ctx.Context(), input); err != nil {
			return respondError(ctx, httpapi.StatusForError(err), err)
		}
		return ctx.JSON(http.StatusOK, result)
	}))

	r.Post(routes.UnifyHeights, router.WrapHandler(func(ctx router.Context) error {
		if err := api.UnifyHeights(ctx.Context(), commands.UnifyHeightsInput{DocumentID: ctx.Param("id")}); err != nil {
			return respondError(ctx, httpapi.StatusForError(err), err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "unified"})
	}))

	r.Get(routes.Constraints, router.WrapHandler(func(ctx router.Context) error {
		out, err := api.Constraints(ctx.Context(), layout.ConstraintsRequest{
			DocumentID: ctx.Param("id"),
			Path:       ctx.Param("path"),
			Screen:     layout.ScreenSize(ctx.Query("screen")),
		})
		if err != nil {
			return respondError(ctx, httpapi.StatusForError(err), err)
		}
		return ctx.JSON(http.StatusOK, out)
	}))

	r.Post(routes.NormalizeItem, router.WrapHandler(func(ctx router.Context) error {
		var result commands.NormalizeResult
		input := commands.NormalizeItemInput{DocumentID: ctx.Param("id"), Path: ctx.Param("path"), Result: &result}
		if err := api.NormalizeItem(ctx.Context(), input); err != nil {
			return respondError(ctx, httpapi.StatusForError(err), err)
		}
		return ctx.JSON(http.StatusOK, result)
	}))

	r.Post(routes.Resize, router.WrapHandler(func(ctx router.Context) error {
		var payload commands.ResizeItemInput
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		var item layout.Item
		payload.DocumentID = ctx.Param("id")
		payload.Path = ctx.Param("path")
		payload.Result = &item
		if err := api.ResizeItem(ctx.Context(), payload); err != nil {
			return respondError(ctx, httpapi.StatusForError(err), err)
		}
		return ctx.JSON(http.StatusOK, item)
	}))
}

func importDocument(ctx router.Context, api httpapi.Executor, id string) error {
	doc, err := layout.DecodeDocument(bytes.NewReader(ctx.Body()))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, err)
	}
	var result commands.ImportResult
	if err := api.ImportDocument(ctx.Context(), commands.ImportDocumentInput{DocumentID: id, Document: *doc, Result: &result}); err != nil {
		return respondError(ctx, httpapi.StatusForError(err), err)
	}
	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	return ctx.JSON(status, result)
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func (cfg Config[T]) routes() RouteConfig {
	return defaultRouteConfig(cfg.Routes)
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.Documents == "" {
		routes.Documents = "/"
	}
	if routes.Document == "" {
		routes.Document = "/:id"
	}
	if routes.Rows == "" {
		routes.Rows = "/:id/rows"
	}
	if routes.NormalizeLayout == "" {
		routes.NormalizeLayout = "/:id/normalize"
	}
	if routes.UnifyHeights == "" {
		routes.UnifyHeights = "/:id/unify-heights"
	}
	if routes.Constraints == "" {
		routes.Constraints = "/:id/items/:path/constraints"
	}
	if routes.NormalizeItem == "" {
		routes.NormalizeItem = "/:id/items/:path/normalize"
	}
	if routes.Resize == "" {
		routes.Resize = "/:id/items/:path/resize"
	}
	return routes
}
