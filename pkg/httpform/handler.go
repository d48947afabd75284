// Package httpform serves a form definition over HTTP. GET renders the form
// with its initial values; POST binds the submitted values into a fresh form
// store, validates them and either re-renders the form with messages or
// hands the values to a submit callback.
package httpform

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-floatform/pkg/definition"
	"github.com/goliatone/go-floatform/pkg/form"
	"github.com/goliatone/go-floatform/pkg/model"
	"github.com/goliatone/go-floatform/pkg/render"
	"github.com/goliatone/go-floatform/pkg/render/template/pongo"
	"github.com/goliatone/go-floatform/pkg/validation"
)

//go:embed templates/*.tmpl
var layoutTemplates embed.FS

const defaultMaxBodyBytes = 1 << 20

// Handler is an http.Handler for a single form.
type Handler struct {
	router   chi.Router
	renderer render.Renderer
	model    model.FormModel
	rules    validation.RuleSet
	initial  validation.Values
	customs  *validation.CustomRegistry
	logger   *log.Logger
	layout   bool
	pages    *pongo.Engine

	onSubmit      SubmitFunc
	hidden        []render.HiddenField
	hiddenFunc    HiddenFunc
	successNotice string
	maxBodyBytes  int64
}

// New validates def and builds the handler. The form is served at the root
// of the handler; mount it wherever it belongs.
func New(def definition.Definition, renderer render.Renderer, options ...Option) (*Handler, error) {
	if renderer == nil {
		return nil, errors.New("httpform: renderer is required")
	}
	h := &Handler{
		renderer:      renderer,
		successNotice: DefaultSuccessNotice,
		maxBodyBytes:  defaultMaxBodyBytes,
	}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}
	if h.logger == nil {
		h.logger = log.New(io.Discard)
	}

	if err := def.Validate(h.customs); err != nil {
		return nil, fmt.Errorf("httpform: %w", err)
	}
	rules, err := def.Rules(h.customs)
	if err != nil {
		return nil, fmt.Errorf("httpform: %w", err)
	}
	h.rules = rules
	h.model = def.Model()
	h.initial = def.InitialValues()

	if h.layout {
		sub, err := fs.Sub(layoutTemplates, "templates")
		if err != nil {
			return nil, fmt.Errorf("httpform: layout templates: %w", err)
		}
		pages, err := pongo.New(pongo.WithFS(sub))
		if err != nil {
			return nil, fmt.Errorf("httpform: layout engine: %w", err)
		}
		h.pages = pages
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)
	r.Get("/", h.show)
	r.Post("/", h.submit)
	h.router = r
	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) newStore() *form.Form {
	return form.New(h.initial, form.WithRules(h.rules), form.WithLogger(h.logger))
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	store := h.newStore()
	h.respondForm(w, r, http.StatusOK, store, "", nil)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	submitted, err := h.readValues(w, r)
	if err != nil {
		h.logger.Warn("unreadable submission", "form", h.model.ID, "err", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	store := h.newStore()
	for _, field := range h.model.Fields {
		if field.Disabled {
			continue
		}
		if value, ok := submitted[field.Name]; ok {
			store.SetFieldValue(field.Name, value)
		}
	}

	if !store.Validate() {
		h.logger.Info("submission invalid", "form", h.model.ID, "errors", len(store.Errors()))
		h.respondInvalid(w, r, store, nil)
		return
	}

	values := store.Values()
	if h.onSubmit != nil {
		if err := h.onSubmit(r.Context(), values); err != nil {
			var fieldErrs *FieldErrors
			if errors.As(err, &fieldErrs) {
				mapping := render.MapErrorPayload(h.model, fieldErrs.Fields)
				for name, message := range mapping.Fields {
					store.MarkFieldError(name, message)
				}
				h.logger.Info("submission rejected", "form", h.model.ID, "fields", len(mapping.Fields), "form_errors", len(mapping.Form))
				h.respondInvalid(w, r, store, mapping.Form)
				return
			}
			h.logger.Error("submit callback failed", "form", h.model.ID, "err", err)
			h.respondFailure(w, r, store)
			return
		}
	}

	h.logger.Info("submission accepted", "form", h.model.ID)
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]any{"valid": true, "values": values})
		return
	}
	store.Reset()
	h.respondForm(w, r, http.StatusOK, store, h.successNotice, nil)
}

func (h *Handler) respondInvalid(w http.ResponseWriter, r *http.Request, store *form.Form, formErrors []string) {
	if wantsJSON(r) {
		payload := map[string]any{"valid": false, "errors": store.Errors()}
		if len(formErrors) > 0 {
			payload["form"] = formErrors
		}
		writeJSON(w, http.StatusUnprocessableEntity, payload)
		return
	}
	h.respondForm(w, r, http.StatusUnprocessableEntity, store, "", formErrors)
}

func (h *Handler) respondFailure(w http.ResponseWriter, r *http.Request, store *form.Form) {
	if wantsJSON(r) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"valid": true, "error": DefaultFailureMessage})
		return
	}
	h.respondForm(w, r, http.StatusInternalServerError, store, "", []string{DefaultFailureMessage})
}

func (h *Handler) respondForm(w http.ResponseWriter, r *http.Request, status int, store *form.Form, notice string, formErrors []string) {
	hidden := h.hidden
	if h.hiddenFunc != nil {
		hidden = render.MergeHiddenFields(hidden, h.hiddenFunc(r))
	} else if len(hidden) > 0 {
		hidden = render.MergeHiddenFields(hidden)
	}

	out, err := h.renderer.Render(r.Context(), h.model, render.RenderOptions{
		Values:     store.Values(),
		Errors:     store.Errors(),
		Rules:      h.rules,
		Hidden:     hidden,
		Notice:     notice,
		FormErrors: formErrors,
	})
	if err != nil {
		h.logger.Error("render failed", "form", h.model.ID, "renderer", h.renderer.Name(), "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	contentType := h.renderer.ContentType()
	if h.pages != nil && strings.HasPrefix(contentType, "text/html") {
		title := h.model.Title
		if title == "" {
			title = h.model.ID
		}
		page, err := h.pages.Render("page", map[string]any{"title": title, "form": string(out)})
		if err != nil {
			h.logger.Error("layout failed", "form", h.model.ID, "err", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		out = []byte(page)
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		h.logger.Debug("write response", "err", err)
	}
}

func (h *Handler) readValues(w http.ResponseWriter, r *http.Request) (validation.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		var raw map[string]any
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode json body: %w", err)
		}
		values := make(validation.Values, len(raw))
		for key, value := range raw {
			switch v := value.(type) {
			case string:
				values[key] = v
			case json.Number:
				values[key] = v.String()
			case nil:
				values[key] = ""
			default:
				values[key] = fmt.Sprint(v)
			}
		}
		return values, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(h.maxBodyBytes); err != nil {
			return nil, fmt.Errorf("parse multipart body: %w", err)
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form body: %w", err)
		}
	}

	values := make(validation.Values, len(r.PostForm))
	for key := range r.PostForm {
		values[key] = r.PostForm.Get(key)
	}
	return values, nil
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
