package gorouter

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"

	layout "github.com/goliatone/go-dashboard-layout/components/layout"
	"github.com/goliatone/go-dashboard-layout/components/layout/httpapi"
)

func TestRegisterValidatesConfig(t *testing.T) {
	if err := Register(Config[struct{}]{}); err == nil {
		t.Fatalf("expected error when router missing")
	}
	server := router.NewFiberAdapter()
	if err := Register(Config[*fiber.App]{Router: server.Router()}); err == nil {
		t.Fatalf("expected error when api executor missing")
	}
}

func TestRegisterOnFiberAdapter(t *testing.T) {
	service := layout.NewService(layout.ServiceOptions{Store: layout.NewInMemoryLayoutStore()})
	server := router.NewFiberAdapter()
	err := Register(Config[*fiber.App]{
		Router: server.Router(),
		API:    httpapi.NewCommandExecutor(service, nil),
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
}

func TestDefaultRouteConfig(t *testing.T) {
	routes := defaultRouteConfig(RouteConfig{Rows: "/:id/grid"})
	if routes.Rows != "/:id/grid" {
		t.Fatalf("expected override to survive, got %q", routes.Rows)
	}
	if routes.Resize != "/:id/items/:path/resize" {
		t.Fatalf("unexpected resize route %q", routes.Resize)
	}
	if routes.Documents != "/" {
		t.Fatalf("unexpected documents route %q", routes.Documents)
	}
}
