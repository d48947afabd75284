package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-floatform/pkg/definition"
	"github.com/goliatone/go-floatform/pkg/httpform"
	"github.com/goliatone/go-floatform/pkg/validation"
)

const shutdownTimeout = 10 * time.Second

func (a *app) serveCommand() *cobra.Command {
	var (
		definitionPath string
		addr           string
		html           htmlFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a form definition over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := a.loadDefinition(definitionPath)
			if err != nil {
				return err
			}
			handler, err := a.serveHandler(def, html)
			if err != nil {
				return err
			}
			listen := firstNonEmpty(addr, a.cfg.Addr)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.listen(ctx, listen, handler)
		},
	}

	cmd.Flags().StringVarP(&definitionPath, "definition", "d", "", "form definition file (YAML or JSON)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (FLOATFORM_ADDR)")
	html.register(cmd)
	return cmd
}

// serveHandler mounts the form handler next to a health endpoint.
func (a *app) serveHandler(def definition.Definition, html htmlFlags) (http.Handler, error) {
	registry, err := a.registry(html)
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get("floating")
	if err != nil {
		return nil, err
	}

	formHandler, err := httpform.New(def, renderer,
		httpform.WithLogger(a.logger),
		httpform.WithLayout(true),
		httpform.WithOnSubmit(func(_ context.Context, values validation.Values) error {
			fields := make([]any, 0, len(values)*2+2)
			fields = append(fields, "form", def.ID)
			for _, name := range values.Keys() {
				fields = append(fields, name, values[name])
			}
			a.logger.Info("form submitted", fields...)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Mount("/", formHandler)
	return r, nil
}

func (a *app) listen(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
