package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-dashboard-layout/components/layout"
)

// DocumentArg is the positional document path.
type DocumentArg struct {
	File string `arg:"" type:"existingfile" help:"Layout document (YAML or JSON)."`
}

// OutputFlags selects the data encoding.
type OutputFlags struct {
	Format string `enum:"yaml,json" default:"yaml" help:"Output encoding (yaml, json)."`
}

// WriteFlags controls where edited documents go; with neither flag the
// document is printed.
type WriteFlags struct {
	Out   string `type:"path" help:"Write the updated document to this path."`
	Write bool   `short:"w" help:"Rewrite the input document in place."`
}

func (f WriteFlags) destination(source string) string {
	if f.Out != "" {
		return f.Out
	}
	if f.Write {
		return source
	}
	return ""
}

type rowsCmd struct {
	DocumentArg
	OutputFlags
	Path    string `help:"Container item path (e.g. 1_0); empty renders the root."`
	Screen  string `enum:"xl,lg,md,sm,xs" default:"xl" help:"Breakpoint to pack rows for."`
	Preview bool   `help:"Draw the rows as boxes instead of printing data."`
}

type renderedRows struct {
	Source   string                   `json:"source" yaml:"source"`
	Path     string                   `json:"path,omitempty" yaml:"path,omitempty"`
	Screen   layout.ScreenSize        `json:"screen" yaml:"screen"`
	Sections []layout.RenderedSection `json:"sections" yaml:"sections"`
}

func (cmd *rowsCmd) Run(g *Globals) error {
	doc, err := layout.ReadDocument(cmd.File)
	if err != nil {
		return err
	}
	path, err := layout.ParseItemPath(cmd.Path)
	if err != nil {
		return err
	}
	screen, err := layout.ParseScreenSize(cmd.Screen)
	if err != nil {
		return err
	}
	var (
		sections  []layout.RenderedSection
		renderErr error
	)
	if err := layout.Recover(func() {
		sections, renderErr = layout.RenderSections(&doc.Layout, path, screen)
	}); err != nil {
		return err
	}
	if renderErr != nil {
		return renderErr
	}
	if cmd.Preview {
		_, err := fmt.Fprintln(g.Out, renderPreview(sections, screen))
		return err
	}
	return encodeOutput(g.Out, cmd.Format, renderedRows{
		Source:   doc.Source,
		Path:     cmd.Path,
		Screen:   screen,
		Sections: sections,
	})
}

type constraintsCmd struct {
	DocumentArg
	OutputFlags
	Path   string `required:"" help:"Item path (e.g. 0_1 or 1_0-0_2)."`
	Screen string `enum:"xl,lg,md,sm,xs" default:"xl" help:"Breakpoint to evaluate."`
}

func (cmd *constraintsCmd) Run(ctx context.Context, g *Globals) error {
	doc, err := layout.ReadDocument(cmd.File)
	if err != nil {
		return err
	}
	engine, err := g.engine(doc)
	if err != nil {
		return err
	}
	path, err := layout.ParseItemPath(cmd.Path)
	if err != nil {
		return err
	}
	screen, err := layout.ParseScreenSize(cmd.Screen)
	if err != nil {
		return err
	}
	out, err := engine.Constraints(ctx, &doc.Layout, path, screen)
	if err != nil {
		return err
	}
	return encodeOutput(g.Out, cmd.Format, out)
}

type normalizeCmd struct {
	DocumentArg
	WriteFlags
}

func (cmd *normalizeCmd) Run(ctx context.Context, g *Globals) error {
	doc, err := layout.ReadDocument(cmd.File)
	if err != nil {
		return err
	}
	engine, err := g.engine(doc)
	if err != nil {
		return err
	}
	var (
		out     layout.Layout
		changed []layout.ItemPath
		runErr  error
	)
	if err := layout.Recover(func() {
		out, changed, runErr = engine.NormalizeLayout(ctx, doc.Layout)
	}); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if len(changed) == 0 {
		_, err := fmt.Fprintln(g.Out, "already normalized")
		return err
	}
	for _, path := range changed {
		fmt.Fprintf(g.Out, "normalized %s\n", path)
	}
	doc.Layout = out
	return cmd.save(g, doc)
}

type resizeCmd struct {
	DocumentArg
	WriteFlags
	Path   string `required:"" help:"Item path (e.g. 0_1)."`
	Width  int    `required:"" help:"Requested xl width in grid columns."`
	Height int    `help:"Requested xl height in grid rows; 0 keeps the current height."`
}

func (cmd *resizeCmd) Run(ctx context.Context, g *Globals) error {
	doc, err := layout.ReadDocument(cmd.File)
	if err != nil {
		return err
	}
	engine, err := g.engine(doc)
	if err != nil {
		return err
	}
	path, err := layout.ParseItemPath(cmd.Path)
	if err != nil {
		return err
	}
	var height *int
	if cmd.Height > 0 {
		height = &cmd.Height
	}
	var (
		out    layout.Layout
		item   layout.Item
		runErr error
	)
	if err := layout.Recover(func() {
		out, item, runErr = engine.ResizeItem(ctx, doc.Layout, path, cmd.Width, height)
	}); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	size := layout.SizeForScreen(layout.ScreenXL, &item.Size)
	fmt.Fprintf(g.Out, "resized %s to %dx%d\n", path, size.GridWidth, size.GridHeight)
	doc.Layout = out
	return cmd.save(g, doc)
}

type unifyCmd struct {
	DocumentArg
	WriteFlags
}

func (cmd *unifyCmd) Run(g *Globals) error {
	doc, err := layout.ReadDocument(cmd.File)
	if err != nil {
		return err
	}
	var unified layout.Layout
	if err := layout.Recover(func() { unified = layout.UnifyLayoutHeights(doc.Layout) }); err != nil {
		return err
	}
	before, after := layout.PersistedLayout(doc.Layout), layout.PersistedLayout(unified)
	for _, path := range layout.ResizedItemPositions(before, after) {
		fmt.Fprintf(g.Out, "unified %s\n", path)
	}
	doc.Layout = unified
	return cmd.save(g, doc)
}

type validateCmd struct {
	DocumentArg
	Schema string `type:"existingfile" help:"Extra JSON Schema the document must also satisfy."`
}

func (cmd *validateCmd) Run(g *Globals) error {
	doc, err := layout.ReadDocument(cmd.File)
	if err != nil {
		return err
	}
	if cmd.Schema != "" {
		schema, err := os.ReadFile(cmd.Schema)
		if err != nil {
			return fmt.Errorf("read schema: %w", err)
		}
		if err := layout.NewDocumentValidatorWithSchema(schema).Validate(doc); err != nil {
			return err
		}
	}
	count := 0
	layout.WalkItems(&doc.Layout, func(layout.ItemPath, layout.Item) bool {
		count++
		return true
	})
	_, err = fmt.Fprintf(g.Out, "ok: %s (%d items, %d insights)\n", doc.Source, count, len(doc.Insights))
	return err
}

func (f WriteFlags) save(g *Globals, doc *layout.Document) error {
	dest := f.destination(doc.Source)
	if dest == "" {
		return encodeOutput(g.Out, string(layout.FormatYAML), doc.Persisted())
	}
	if err := layout.WriteDocument(dest, *doc); err != nil {
		return err
	}
	_, err := fmt.Fprintf(g.Out, "wrote %s\n", dest)
	return err
}

func encodeOutput(w io.Writer, format string, payload any) error {
	if format == string(layout.FormatJSON) {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(payload)
}
