package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-dashboard-layout/components/layout"
	"github.com/goliatone/go-dashboard-layout/components/layout/gorouter"
	"github.com/goliatone/go-dashboard-layout/components/layout/httpapi"
)

type serveCmd struct {
	Addr    string   `default:":9876" help:"Listen address."`
	Base    string   `default:"/layouts" help:"Base path of the layout API."`
	Adapter string   `enum:"fiber,http" default:"fiber" help:"HTTP stack (fiber via go-router, or net/http)."`
	Seed    []string `type:"existingfile" help:"Documents to preload; each is stored under its file name."`
}

func (cmd *serveCmd) Run(ctx context.Context, g *Globals) error {
	logger := slog.New(slog.NewTextHandler(g.ErrOut, nil))
	executor, err := cmd.executor(ctx, g, logger)
	if err != nil {
		return err
	}
	logger.Info("serving layout API", "addr", cmd.Addr, "adapter", cmd.Adapter, "base", cmd.Base)
	if cmd.Adapter == "http" {
		return cmd.serveHTTP(ctx, executor)
	}
	return cmd.serveFiber(ctx, executor)
}

func (cmd *serveCmd) executor(ctx context.Context, g *Globals, logger *slog.Logger) (*httpapi.CommandExecutor, error) {
	sizes, err := g.sizes()
	if err != nil {
		return nil, err
	}
	telemetry := g.telemetry()
	service := layout.NewService(layout.ServiceOptions{
		Store:     layout.NewInMemoryLayoutStore(),
		Sizes:     sizes,
		Telemetry: telemetry,
	})
	for _, path := range cmd.Seed {
		doc, err := layout.ReadDocument(path)
		if err != nil {
			return nil, err
		}
		id := seedID(path)
		if _, err := service.ImportDocument(ctx, id, *doc); err != nil {
			return nil, fmt.Errorf("seed %s: %w", path, err)
		}
		logger.Info("seeded document", "id", id, "source", path)
	}
	return httpapi.NewCommandExecutor(service, telemetry), nil
}

func (cmd *serveCmd) serveFiber(ctx context.Context, executor *httpapi.CommandExecutor) error {
	server := router.NewFiberAdapter()
	if err := gorouter.Register(gorouter.Config[*fiber.App]{
		Router:   server.Router(),
		API:      executor,
		BasePath: cmd.Base,
	}); err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
	return server.Serve(cmd.Addr)
}

func (cmd *serveCmd) serveHTTP(ctx context.Context, executor *httpapi.CommandExecutor) error {
	mux := http.NewServeMux()
	executor.Handlers().Mount(mux, cmd.Base)
	srv := &http.Server{Addr: cmd.Addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func seedID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
