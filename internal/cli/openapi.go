package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	floatform "github.com/goliatone/go-floatform"
	"github.com/goliatone/go-floatform/pkg/definition"
)

func (a *app) openapiCommand() *cobra.Command {
	var source, operation, output string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Derive a form definition from an OpenAPI operation.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if source == "" {
				return fmt.Errorf("--source is required")
			}
			if operation == "" {
				return fmt.Errorf("--operation is required")
			}
			data, err := readSource(cmd.Context(), source)
			if err != nil {
				return err
			}
			def, err := floatform.DefinitionFromOpenAPI(cmd.Context(), data, operation)
			if err != nil {
				return err
			}
			out, err := definition.MarshalYAML(def)
			if err != nil {
				return err
			}
			a.logger.Debug("derived definition", "operation", operation, "fields", len(def.Fields))
			return a.writeOutput(output, out)
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "OpenAPI document path or URL (YAML or JSON)")
	cmd.Flags().StringVar(&operation, "operation", "", "operationId to convert")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

// readSource loads an OpenAPI document from a file or an http(s) URL.
func readSource(ctx context.Context, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", source, err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", source, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", source, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", source, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", source, err)
	}
	return data, nil
}
