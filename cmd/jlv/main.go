// Command jlv pretty-prints streaming JSON logs.
//
// It reads one JSON record per line on stdin and writes a human-oriented
// rendering of each record to stdout, driven by a small template language.
//
// # Usage
//
//	jlv [flags] [format]
//	jlv expand [variable]
//	jlv list
//
// # Examples
//
//	kubectl logs -f my-pod | jlv
//	jlv '{&log_fmt}' < app.log
//	jlv -c '{message} {..:json,compact}' < app.log
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/jlv/colors"
	"go.jacobcolvin.com/jlv/config"
	"go.jacobcolvin.com/jlv/format"
	"go.jacobcolvin.com/jlv/log"
	"go.jacobcolvin.com/jlv/profile"
	"go.jacobcolvin.com/jlv/stream"
	"go.jacobcolvin.com/jlv/version"
)

const defaultFormat = "{&output}"

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	logCfg    *log.Config
	profCfg   profile.Config
	variables []string
	take      int
	noColor   bool
	compact   bool
	strict    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logCfg: log.NewConfig()}

	cmd := &cobra.Command{
		Use:   "jlv [format]",
		Short: "Pretty-print streaming JSON logs",
		Long: `jlv reads one JSON record per line on stdin and pretty-prints each record
to stdout. A template expression selects the fields to show and how they are
styled; the remaining fields can be emitted as an indented JSON block.

Lines that do not parse pass through unchanged, so jlv is safe to leave in a
pipeline that sometimes carries plain text.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.variables, "variable", "v", nil,
		"add or override a template variable as KEY=VALUE; repeatable")
	flags.BoolVarP(&opts.noColor, "no-color", "n", false,
		"disable ANSI color output (implied when stdout is not a terminal)")
	flags.BoolVarP(&opts.compact, "compact", "c", false,
		"render object and array fields on a single line")
	flags.BoolVarP(&opts.strict, "strict", "s", false,
		"report the first unparseable line and stop, instead of passing it through")
	flags.IntVarP(&opts.take, "take", "t", 0,
		"stop after rendering N records (0 = unlimited)")

	opts.logCfg.RegisterFlags(flags)
	opts.profCfg.RegisterFlags(flags)

	cmd.AddCommand(newExpandCmd(), newListCmd())

	return cmd
}

func runRoot(cmd *cobra.Command, args []string, opts *rootOptions) error {
	logger, err := opts.logCfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}

	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	formatStr := defaultFormat

	switch {
	case len(args) > 0:
		formatStr = args[0]
	case cfg.Format != nil:
		formatStr = *cfg.Format
	}

	compact := flagOrConfig(cmd, "compact", opts.compact, cfg.Compact)
	noColor := flagOrConfig(cmd, "no-color", opts.noColor, cfg.NoColor)
	strict := flagOrConfig(cmd, "strict", opts.strict, cfg.Strict)

	vars := format.DefaultVariables()
	cfg.Apply(vars)
	vars.ApplyAssignments(opts.variables)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		// Nothing is piped in; reading would block on the keyboard.
		return cmd.Help()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}

	expanded, err := format.Expand(formatStr, vars)
	if err != nil {
		return err
	}

	slog.Debug("template expanded", "template", expanded)

	formatter, err := format.Compile(expanded, format.Options{NoColor: noColor, Compact: compact})
	if err != nil {
		return err
	}

	profiler, err := opts.profCfg.Start()
	if err != nil {
		return err
	}

	driver := stream.New(formatter, stream.Config{
		Strict:  strict,
		NoColor: noColor,
		Take:    opts.take,
	})

	runErr := driver.Run(os.Stdin, os.Stdout)

	err = profiler.Stop()
	if runErr != nil {
		return runErr
	}

	return err
}

// flagOrConfig resolves a boolean setting: an explicitly set CLI flag wins,
// then the config file, then the flag default.
func flagOrConfig(cmd *cobra.Command, name string, flagValue bool, configValue *bool) bool {
	if cmd.Flags().Changed(name) || configValue == nil {
		return flagValue
	}

	return *configValue
}

func newExpandCmd() *cobra.Command {
	var variables []string

	cmd := &cobra.Command{
		Use:   "expand [variable]",
		Short: "Print a variable's body with all references expanded",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			vars, err := loadVariables(variables)
			if err != nil {
				return err
			}

			name := "output"
			if len(args) > 0 {
				name = args[0]
			}

			body, ok := vars.Get(name)
			if !ok {
				return fmt.Errorf("%w: %q is not defined", format.ErrInvalidVariable, name)
			}

			expanded, err := format.Expand(body, vars)
			if err != nil {
				return err
			}

			fmt.Println(expanded)

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&variables, "variable", "v", nil,
		"add or override a template variable as KEY=VALUE; repeatable")

	return cmd
}

func newListCmd() *cobra.Command {
	var variables []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all template variables and their bodies",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			vars, err := loadVariables(variables)
			if err != nil {
				return err
			}

			width := 0
			for _, v := range vars.All() {
				width = max(width, len(v.Key))
			}

			keyStyle := colors.NewStyle()
			if term.IsTerminal(int(os.Stdout.Fd())) {
				keyStyle = keyStyle.Bold()
			}

			for _, v := range vars.All() {
				pad := strings.Repeat(" ", width-len(v.Key))
				fmt.Printf("%s%s = %s\n", keyStyle.Paint(v.Key), pad, v.Body)
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&variables, "variable", "v", nil,
		"add or override a template variable as KEY=VALUE; repeatable")

	return cmd
}

// loadVariables builds the effective variables table for the expand and
// list subcommands: built-ins, then config files, then CLI assignments.
func loadVariables(assignments []string) (*format.Variables, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	vars := format.DefaultVariables()
	cfg.Apply(vars)
	vars.ApplyAssignments(assignments)

	return vars, nil
}
