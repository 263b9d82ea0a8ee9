package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"deep-cloner/cloner"
	"deep-cloner/internal/document"
	"deep-cloner/internal/settings"
	"deep-cloner/node"
	"deep-cloner/options"
	"deep-cloner/primitive"
)

var errCouldNotClone = errors.New("value could not be cloned")

type flags struct {
	configPath string
	policy     string
	fallback   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "deepclone",
		Short:         "Rule-driven deep cloning of YAML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&f.configPath, "config", "", "settings file (YAML)")
	root.PersistentFlags().StringVar(&f.policy, "policy", "", "inheritance chain policy: CLONE, REFERENCE or EXCLUDE")
	root.PersistentFlags().StringVar(&f.fallback, "fallback", "", "fallback rule: primitive, record, sequence or a rule id")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "debug logging and detailed diagnostics")

	root.AddCommand(newCloneCmd(f), newRulesCmd(f), newInitCmd(f))

	return root
}

func newCloneCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "clone FILE",
		Short: "Clone a YAML document and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClone(cmd, f, args[0])
		},
	}
}

func newRulesCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "rules FILE",
		Short: "List the rules matching the document root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(cmd, f, args[0])
		},
	}
}

func newInitCmd(f *flags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init FILE",
		Short: "Write a settings file with the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, f, args[0], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, f *flags, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	defaults := cloner.DefaultConfig()
	fallback := settings.RuleRecord
	maxDepth := defaults.MaxDepth

	file := &settings.File{
		Version:                settings.CurrentVersion,
		FallbackRule:           &fallback,
		InheritanceChainPolicy: string(defaults.Policy),
		MaxDepth:               &maxDepth,
	}

	if cmd.Flags().Changed("policy") {
		file.InheritanceChainPolicy = f.policy
	}

	if cmd.Flags().Changed("fallback") {
		file.FallbackRule = &f.fallback
	}

	if problems := settings.Validate(file); len(problems) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), problems.String())
	}

	if err := settings.WriteFile(file, path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

func runClone(cmd *cobra.Command, f *flags, path string) error {
	src, err := loadDocument(path)
	if err != nil {
		return err
	}

	override, err := buildOverride(cmd, f)
	if err != nil {
		return err
	}

	engine := cloner.New(nil, cloner.WithLogger(newLogger(cmd.ErrOrStderr(), f.verbose)))
	res := engine.Clone(src, override)

	if len(res.Problems) > 0 {
		printProblems(cmd.ErrOrStderr(), f, res)
	}

	if res.CouldNotClone {
		return errCouldNotClone
	}

	out, err := document.Encode(res.Cloned)
	if err != nil {
		return fmt.Errorf("failed to render clone: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func runRules(cmd *cobra.Command, f *flags, path string) error {
	src, err := loadDocument(path)
	if err != nil {
		return err
	}

	override, err := buildOverride(cmd, f)
	if err != nil {
		return err
	}

	engine := cloner.New(override, cloner.WithLogger(newLogger(cmd.ErrOrStderr(), f.verbose)))

	w := cmd.OutOrStdout()

	shape := node.Dispatch(src)
	if shape == node.DispatcherPrimitive {
		fmt.Fprintf(w, "shape: %s (%s)\n", shape, primitive.FromValue(src))
	} else {
		fmt.Fprintf(w, "shape: %s\n", shape)
	}

	if shape.IsComposite() {
		fmt.Fprintf(w, "fields: %d\n", len(node.Fields(src)))
	}

	matches := engine.FindMatchingRules(src, nil)
	if len(matches) == 0 {
		fmt.Fprintf(w, "no rule matches, fallback %s applies\n", engine.Config().FallbackRuleID)
		return nil
	}

	for _, r := range matches {
		fmt.Fprintf(w, "%s\tpriority=%d\n", r.ID, r.Priority)
	}

	return nil
}

func loadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	v, err := document.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// buildOverride layers the settings file under explicitly set flags.
func buildOverride(cmd *cobra.Command, f *flags) (*cloner.Override, error) {
	override := cloner.NewOverride()

	if f.configPath != "" {
		file, err := settings.LoadFile(f.configPath)
		if err != nil {
			return nil, err
		}

		if problems := settings.Validate(file); len(problems) > 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), problems.String())
		}

		override, err = file.Override()
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("policy") {
		override.SetPolicy(options.ParsePolicy(f.policy))
	}

	if cmd.Flags().Changed("fallback") {
		override.SetFallback(settings.RuleID(f.fallback))
	}

	return override, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printProblems(w io.Writer, f *flags, res cloner.Result) {
	if f.verbose {
		fmt.Fprint(w, res.Problems.Dump())
		return
	}

	fmt.Fprintln(w, res.Problems.String())
}
