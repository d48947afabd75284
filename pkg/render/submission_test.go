package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-floatform/pkg/render"
)

func TestMergeHiddenFields(t *testing.T) {
	base := []render.HiddenField{
		{Name: " existing ", Value: "keep"},
		{Name: "", Value: "ignored"},
		{Name: "_csrf", Value: "stale"},
	}

	merged := render.MergeHiddenFields(base, []render.HiddenField{
		render.CSRFToken("_csrf", "token123"),
		render.Hidden(" version ", "4"),
		render.Hidden("  ", "skip"),
	})

	want := []render.HiddenField{
		{Name: "_csrf", Value: "token123"},
		{Name: "existing", Value: "keep"},
		{Name: "version", Value: "4"},
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
}

func TestSortedHiddenFieldsEmpty(t *testing.T) {
	if got := render.SortedHiddenFields(map[string]string{" ": "x"}); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
