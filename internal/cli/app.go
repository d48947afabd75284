// Package cli implements the floatform command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	floatform "github.com/goliatone/go-floatform"
	"github.com/goliatone/go-floatform/internal/config"
	"github.com/goliatone/go-floatform/internal/logging"
	"github.com/goliatone/go-floatform/pkg/definition"
	"github.com/goliatone/go-floatform/pkg/render"
	"github.com/goliatone/go-floatform/pkg/renderers/floating"
	"github.com/goliatone/go-floatform/pkg/renderers/tui"
	"github.com/goliatone/go-floatform/pkg/validation"
)

// errFormInvalid ends a command with exit status 1 after the validation
// messages have already been printed.
var errFormInvalid = errors.New("form is invalid")

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	fieldStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

type app struct {
	stdout io.Writer
	stderr io.Writer

	envFiles  []string
	logLevel  string
	logFormat string

	cfg    config.Config
	logger *log.Logger

	// driver replaces the survey prompt driver in tests.
	driver tui.PromptDriver
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

// Execute runs the CLI with os.Args and returns the process exit status.
func Execute(ctx context.Context) int {
	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFormInvalid) {
			fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		}
		return 1
	}
	return 0
}

// NewRootCommand builds the command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	return newApp(stdout, stderr).rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "floatform",
		Short:         "Render, prompt, validate and serve floating label forms.",
		Long:          "floatform works with declarative form definitions: render them as HTML, fill them in the terminal, validate value files and serve them over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "load environment from these files (default .env when present)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (text, json, logfmt)")

	root.AddCommand(
		a.renderCommand(),
		a.promptCommand(),
		a.validateCommand(),
		a.serveCommand(),
		a.openapiCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(a.stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// definitionPath prefers the flag and falls back to FLOATFORM_DEFINITION.
func (a *app) definitionPath(flag string) (string, error) {
	path := strings.TrimSpace(flag)
	if path == "" {
		path = strings.TrimSpace(a.cfg.Definition)
	}
	if path == "" {
		return "", errors.New("a definition is required (--definition or FLOATFORM_DEFINITION)")
	}
	return path, nil
}

func (a *app) loadDefinition(flag string) (definition.Definition, error) {
	path, err := a.definitionPath(flag)
	if err != nil {
		return definition.Definition{}, err
	}
	def, err := floatform.LoadDefinition(path)
	if err != nil {
		return definition.Definition{}, err
	}
	a.logger.Debug("loaded definition", "path", path, "form", def.ID, "fields", len(def.Fields))
	return def, nil
}

type htmlFlags struct {
	templatesDir string
	theme        string
	variant      string
}

func (f *htmlFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.templatesDir, "templates", "", "directory with template overrides (FLOATFORM_TEMPLATES_DIR)")
	cmd.Flags().StringVar(&f.theme, "theme", "", "built-in theme name (FLOATFORM_THEME)")
	cmd.Flags().StringVar(&f.variant, "theme-variant", "", "theme variant (FLOATFORM_THEME_VARIANT)")
}

func (a *app) floatingOptions(f htmlFlags) ([]floating.Option, error) {
	dir := firstNonEmpty(f.templatesDir, a.cfg.TemplatesDir)
	themeName := firstNonEmpty(f.theme, a.cfg.Theme)
	variant := firstNonEmpty(f.variant, a.cfg.ThemeVariant)

	opts := []floating.Option{floating.WithLogger(a.logger)}
	if dir != "" {
		opts = append(opts, floating.WithTemplatesDir(dir))
	}
	themeCfg, err := floating.ThemeConfig(themeName, variant)
	if err != nil {
		return nil, err
	}
	if themeCfg != nil {
		opts = append(opts, floating.WithTheme(themeCfg))
	}
	return opts, nil
}

func (a *app) registry(html htmlFlags, tuiOpts ...tui.Option) (*render.Registry, error) {
	floatingOpts, err := a.floatingOptions(html)
	if err != nil {
		return nil, err
	}
	tuiOpts = append(tuiOpts, tui.WithLogger(a.logger))
	if a.driver != nil {
		tuiOpts = append(tuiOpts, tui.WithPromptDriver(a.driver))
	} else {
		tuiOpts = append(tuiOpts, tui.WithPromptDriver(tui.NewSurveyDriver(a.stderr)))
	}
	return floatform.NewRegistry(floatform.RegistryConfig{Floating: floatingOpts, TUI: tuiOpts})
}

// loadValues reads a JSON or YAML object of field values.
func loadValues(path string) (validation.Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read values %s: %w", path, err)
	}
	values := validation.Values{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse values %s: %w", path, err)
	}
	return values, nil
}

func (a *app) writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := a.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	a.logger.Info("wrote output", "path", path, "bytes", len(data))
	return nil
}

func (a *app) printErrors(errs validation.Errors) {
	for _, field := range validation.Values(errs).Keys() {
		fmt.Fprintf(a.stderr, "%s %s\n", fieldStyle.Render(field+":"), errorStyle.Render(errs[field]))
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
