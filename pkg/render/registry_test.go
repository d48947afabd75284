package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-floatform/pkg/model"
	"github.com/goliatone/go-floatform/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, form model.FormModel, _ render.RenderOptions) ([]byte, error) {
	return []byte(s.name + ":" + form.ID), nil
}

func TestRegistry(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(stubRenderer{name: "floating"})
	reg.MustRegister(stubRenderer{name: "TUI"})

	if err := reg.Register(stubRenderer{name: "tui"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := reg.Register(stubRenderer{name: " "}); err == nil {
		t.Fatalf("expected blank name to fail")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer to fail")
	}

	if diff := cmp.Diff([]string{"floating", "tui"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	def, err := reg.Get("")
	if err != nil || def.Name() != "floating" {
		t.Fatalf("default renderer = %v, %v", def, err)
	}
	if err := reg.SetDefault("tui"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	def, _ = reg.Get("")
	if def.Name() != "TUI" {
		t.Fatalf("expected tui default, got %s", def.Name())
	}
	if _, err := reg.Get("preact"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
	if !reg.Has(" Floating ") {
		t.Fatalf("lookup should ignore case and spaces")
	}
}

func TestRenderOptionsViews(t *testing.T) {
	opts := render.RenderOptions{
		Values: map[string]string{"name": "Ada"},
		Errors: map[string]string{"email": "Please enter a valid email address"},
	}
	views := opts.Views(contactModel())
	if len(views) != 4 {
		t.Fatalf("expected 4 views, got %d", len(views))
	}
	if !views[0].Floated || views[0].Invalid {
		t.Fatalf("unexpected name view: %+v", views[0])
	}
	if !views[1].Invalid || views[1].Floated {
		t.Fatalf("unexpected email view: %+v", views[1])
	}
}
