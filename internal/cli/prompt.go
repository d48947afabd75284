package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-floatform/pkg/render"
	"github.com/goliatone/go-floatform/pkg/renderers/tui"
)

func (a *app) promptCommand() *cobra.Command {
	var (
		definitionPath string
		valuesPath     string
		format         string
		output         string
		attempts       int
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in a form definition interactively in the terminal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, ok := tui.ParseOutputFormat(format)
			if !ok {
				return fmt.Errorf("unknown output format %q (json, form, text)", format)
			}
			def, err := a.loadDefinition(definitionPath)
			if err != nil {
				return err
			}
			rules, err := def.Rules(nil)
			if err != nil {
				return err
			}
			values := def.InitialValues()
			if valuesPath != "" {
				loaded, err := loadValues(valuesPath)
				if err != nil {
					return err
				}
				for key, value := range loaded {
					values[key] = value
				}
			}

			registry, err := a.registry(htmlFlags{},
				tui.WithOutputFormat(outputFormat),
				tui.WithMaxAttempts(attempts),
			)
			if err != nil {
				return err
			}
			renderer, err := registry.Get("tui")
			if err != nil {
				return err
			}

			out, err := renderer.Render(cmd.Context(), def.Model(), render.RenderOptions{
				Values: values,
				Rules:  rules,
			})
			if err != nil {
				var invalid *tui.ValidationError
				if errors.As(err, &invalid) {
					a.printErrors(invalid.Errors)
					return errFormInvalid
				}
				return err
			}
			if len(out) > 0 && out[len(out)-1] != '\n' {
				out = append(out, '\n')
			}
			return a.writeOutput(output, out)
		},
	}

	cmd.Flags().StringVarP(&definitionPath, "definition", "d", "", "form definition file (YAML or JSON)")
	cmd.Flags().StringVar(&valuesPath, "values", "", "YAML or JSON file with default values")
	cmd.Flags().StringVarP(&format, "format", "f", string(tui.OutputFormatJSON), "output format (json, form, text)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().IntVar(&attempts, "max-attempts", 3, "prompts per field before giving up")
	return cmd
}
