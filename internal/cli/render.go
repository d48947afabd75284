package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-floatform/pkg/form"
	"github.com/goliatone/go-floatform/pkg/render"
	"github.com/goliatone/go-floatform/pkg/validation"
)

func (a *app) renderCommand() *cobra.Command {
	var (
		definitionPath string
		valuesPath     string
		output         string
		validate       bool
		html           htmlFlags
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a form definition as floating label HTML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := a.loadDefinition(definitionPath)
			if err != nil {
				return err
			}
			store, err := def.NewForm(nil, form.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if valuesPath != "" {
				values, err := loadValues(valuesPath)
				if err != nil {
					return err
				}
				store.SetValues(values)
			}
			if validate {
				store.Validate()
			}

			registry, err := a.registry(html)
			if err != nil {
				return err
			}
			renderer, err := registry.Get("floating")
			if err != nil {
				return err
			}
			out, err := renderer.Render(cmd.Context(), def.Model(), render.RenderOptions{
				Values: store.Values(),
				Errors: store.Errors(),
				Rules:  store.Rules(),
			})
			if err != nil {
				return err
			}
			a.logger.Debug("rendered form", "form", def.ID, "errors", len(store.Errors()))
			return a.writeOutput(output, out)
		},
	}

	cmd.Flags().StringVarP(&definitionPath, "definition", "d", "", "form definition file (YAML or JSON)")
	cmd.Flags().StringVar(&valuesPath, "values", "", "YAML or JSON file with field values")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate the values and render the messages")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	html.register(cmd)
	return cmd
}

func (a *app) validateCommand() *cobra.Command {
	var definitionPath, valuesPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a values file against a form definition.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			ok, errs := validation.ValidateForm(values, rules)
			if !ok {
				a.printErrors(errs)
				return errFormInvalid
			}
			_, err = cmd.OutOrStdout().Write([]byte(okStyle.Render("valid") + "\n"))
			return err
		},
	}

	cmd.Flags().StringVarP(&definitionPath, "definition", "d", "", "form definition file (YAML or JSON)")
	cmd.Flags().StringVar(&valuesPath, "values", "", "YAML or JSON file with field values")
	return cmd
}
