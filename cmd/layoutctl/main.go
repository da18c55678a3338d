package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/goliatone/go-dashboard-layout/components/layout"
)

type cli struct {
	Globals

	Rows        rowsCmd        `cmd:"" help:"Print the rendered grid rows of a container."`
	Constraints constraintsCmd `cmd:"" help:"Print the resize bounds of one item."`
	Normalize   normalizeCmd   `cmd:"" help:"Fit nested items into their containers."`
	Resize      resizeCmd      `cmd:"" help:"Resize one item within its bounds."`
	Unify       unifyCmd       `cmd:"" help:"Equalize ratio heights row by row."`
	Validate    validateCmd    `cmd:"" help:"Validate a layout document."`
	Serve       serveCmd       `cmd:"" help:"Serve the layout JSON API."`
}

// Globals holds flags shared by every subcommand.
type Globals struct {
	Verbose bool   `short:"v" help:"Log sizing events to stderr."`
	Sizes   string `type:"existingfile" help:"YAML file registering custom visualization sizes."`

	Out    io.Writer `kong:"-"`
	ErrOut io.Writer `kong:"-"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "layoutctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	app := cli{Globals: Globals{Out: stdout, ErrOut: stderr}}
	parser, err := kong.New(&app,
		kong.Name("layoutctl"),
		kong.Description("Sizing utility for responsive dashboard layout documents."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run(&app.Globals)
}

func (g *Globals) telemetry() layout.Telemetry {
	if !g.Verbose {
		return nil
	}
	handler := slog.NewTextHandler(g.ErrOut, &slog.HandlerOptions{Level: slog.LevelDebug})
	return layout.NewLogTelemetry(slog.New(handler))
}

func (g *Globals) sizes() (*layout.SizeRegistry, error) {
	registry := layout.NewSizeRegistry()
	if g.Sizes == "" {
		return registry, nil
	}
	if err := registry.LoadFile(g.Sizes); err != nil {
		return nil, err
	}
	return registry, nil
}

func (g *Globals) engine(doc *layout.Document) (*layout.Engine, error) {
	sizes, err := g.sizes()
	if err != nil {
		return nil, err
	}
	return doc.Engine(layout.Options{Sizes: sizes, Telemetry: g.telemetry()}), nil
}
