package layout

import (
	"context"
	"testing"

	core "github.com/goliatone/go-dashboard-layout/components/layout"
)

func TestFacadeProxiesConstructors(t *testing.T) {
	engine := NewEngine(Options{})
	if got := engine.MinWidth(&core.Widget{Type: core.WidgetTypeCustom}, core.ScreenXL); got != core.CustomWidgetMinGridWidth {
		t.Fatalf("expected custom min width %d, got %d", core.CustomWidgetMinGridWidth, got)
	}
	service := NewService(ServiceOptions{})
	if _, err := service.Document(context.Background(), "x"); err == nil {
		t.Fatalf("expected missing store error")
	}
}
