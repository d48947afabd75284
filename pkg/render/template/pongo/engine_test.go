package pongo_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-floatform/pkg/render/template/pongo"
	"github.com/goliatone/go-floatform/pkg/testsupport"
)

func newEngine(t *testing.T) *pongo.Engine {
	t.Helper()

	engine, err := pongo.New(pongo.WithDir(filepath.Join("..", "testdata", "templates")))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRender(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.Render("hello", map[string]any{"name": "<Ada>", "class": "  greeting "}, w)
	})

	want := "<p class=\"greeting\">Hello &lt;Ada&gt;</p>\n"
	if result != want {
		t.Fatalf("render mismatch\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", want, written)
	}
}

func TestEngineGlobals(t *testing.T) {
	engine, err := pongo.New(
		pongo.WithDir(filepath.Join("..", "testdata", "templates")),
		pongo.WithGlobals(map[string]any{"site": map[string]any{"name": "Acme"}}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.Render("global.tmpl", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<footer>Acme</footer>\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineRegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("floatform_shout", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("floatform_shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	got, err := engine.Render("filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineFSAndDirOverride(t *testing.T) {
	files := fstest.MapFS{
		"hello.tmpl": {Data: []byte("from fs {{ name }}")},
		"only.tmpl":  {Data: []byte("only in fs")},
	}
	engine, err := pongo.New(
		pongo.WithDir(filepath.Join("..", "testdata", "templates")),
		pongo.WithFS(files),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.Render("hello", map[string]any{"name": "Ada", "class": "x"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(got, "<p") {
		t.Fatalf("directory template should win, got %q", got)
	}
	got, err = engine.Render("only", nil)
	if err != nil || got != "only in fs" {
		t.Fatalf("fs fallback = %q, %v", got, err)
	}
}

func TestEngineRenderString(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderString("{{ a }}-{{ b|safe }}", map[string]any{"a": "<b>", "b": "<i>"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "&lt;b&gt;-<i>" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineErrors(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected missing source error")
	}
	engine := newEngine(t)
	if _, err := engine.Render("missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
	if _, err := engine.Render("hello", struct{}{}); err == nil {
		t.Fatalf("expected unsupported data error")
	}
	if _, err := os.Stat(filepath.Join("..", "testdata", "templates", "hello.tmpl")); err != nil {
		t.Fatalf("fixture missing: %v", err)
	}
}
