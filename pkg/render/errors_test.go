package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-floatform/pkg/model"
	"github.com/goliatone/go-floatform/pkg/render"
	"github.com/goliatone/go-floatform/pkg/validation"
)

func contactModel() model.FormModel {
	return model.FormModel{
		ID: "contact",
		Fields: []model.Field{
			{Name: "name"},
			{Name: "email", Type: "email"},
			{Name: "phone", Type: "tel"},
			{Name: "message", Kind: model.FieldKindTextarea},
		},
	}
}

func TestMapErrorPayload(t *testing.T) {
	payload := map[string][]string{
		"name":                       {"Name is taken", "Second message"},
		"/body/email":                {" Email bounced "},
		"data[phone]":                {"Phone unreachable"},
		"request.payload.message":    {""},
		"non_field_errors":           {"Try again later"},
		"request/body/unknown-field": {"Unknown field"},
		"":                           {"Try again later"},
	}

	mapped := render.MapErrorPayload(contactModel(), payload)

	wantFields := validation.Errors{
		"name":  "Name is taken",
		"email": "Email bounced",
		"phone": "Phone unreachable",
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"Try again later", "Unknown field"}
	if diff := cmp.Diff(wantForm, mapped.Form, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayloadEmpty(t *testing.T) {
	mapped := render.MapErrorPayload(contactModel(), nil)
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", mapped)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}
