package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/tagly/format/text"
	"github.com/viant/traversal"
	"github.com/viant/traversal/collection"
	"github.com/viant/traversal/internal/config"
	"github.com/viant/traversal/internal/logging"
	"github.com/viant/traversal/strfold"
	"go.uber.org/zap"
)

type flags struct {
	configPath string
	prefix     string
	closing    string
	separator  string
	caseFormat string
	logLevel   string
	asJSON     bool
	skipEmpty  bool
	strict     bool
	limit      int
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "strfold [file|-]",
		Short: "Fold input lines into a delimited string",
		Long: `strfold reads lines from a file or stdin and joins them into one string:
prefix + line1 + separator + line2 + ... + closing.

Examples:
  # (a, b, c)
  printf 'a\nb\nc\n' | strfold --prefix '(' --closing ')' --separator ', '

  # first two elements of a JSON array
  echo '["x","y","z"]' | strfold --json --limit 2 --separator '|'`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "config file (default ~/.config/strfold/config.yaml)")
	fs.StringVar(&f.prefix, "prefix", "", "text the result starts with")
	fs.StringVar(&f.closing, "closing", "", "text the result ends with")
	fs.StringVar(&f.separator, "separator", "", "text put between elements")
	fs.StringVar(&f.caseFormat, "case", "", "case format applied to every element, i.e. lowerUnderscore")
	fs.StringVar(&f.logLevel, "log-level", "", "log level")
	fs.BoolVar(&f.asJSON, "json", false, "read input as a JSON array of strings")
	fs.BoolVar(&f.skipEmpty, "skip-empty", false, "drop blank elements")
	fs.BoolVar(&f.strict, "strict", false, "report an early stop in the traversal outcome")
	fs.IntVar(&f.limit, "limit", 0, "stop after this many elements (0 means all)")
	return cmd
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return reportStartup(cmd, err)
	}
	overrideConfig(cmd, f, cfg)

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return reportStartup(cmd, err)
	}
	defer func() { _ = logger.Sync() }()

	err = fold(cmd, f, cfg, args, logger)
	if err != nil {
		logger.Error("strfold failed", zap.Error(err))
	}
	return err
}

// reportStartup logs err with a console logger when the configured one could not be built
func reportStartup(cmd *cobra.Command, err error) error {
	logger, logErr := logging.New(cmd.ErrOrStderr(), "error", "console")
	if logErr != nil {
		return err
	}
	logger.Error("strfold failed", zap.Error(err))
	_ = logger.Sync()
	return err
}

func overrideConfig(cmd *cobra.Command, f *flags, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("prefix") {
		cfg.Prefix = f.prefix
	}
	if fs.Changed("closing") {
		cfg.Closing = f.closing
	}
	if fs.Changed("separator") {
		cfg.Separator = f.separator
	}
	if fs.Changed("case") {
		cfg.CaseFormat = f.caseFormat
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
}

func fold(cmd *cobra.Command, f *flags, cfg *config.Config, args []string, logger *zap.Logger) error {
	values, err := readInput(cmd, args, f.asJSON)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	opts := []strfold.Option{
		strfold.WithInitial(cfg.Prefix),
		strfold.WithClosing(cfg.Closing),
		strfold.WithSeparator(cfg.Separator),
	}
	if cfg.CaseFormat != "" {
		caseFormat := text.NewCaseFormat(cfg.CaseFormat)
		if !caseFormat.IsDefined() {
			return fmt.Errorf("unsupported case format: %q", cfg.CaseFormat)
		}
		opts = append(opts, strfold.WithCaseFormat(caseFormat))
	}
	visitor := &lineVisitor{Folder: strfold.New[string](opts...), skipEmpty: f.skipEmpty, limit: f.limit}

	policy := traversal.Tolerant
	if f.strict {
		policy = traversal.Strict
	}
	total := len(values)
	result, outcome, err := traversal.Fold[string, string](policy, collection.SliceOf(&values), visitor)
	if err != nil {
		return err
	}
	logger.Debug("folded input",
		zap.Int("elements", total),
		zap.Int("tokens", visitor.Len()),
		zap.Int("removed", visitor.removed),
		zap.Stringer("policy", policy),
		zap.Stringer("outcome", outcome))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}

func readInput(cmd *cobra.Command, args []string, asJSON bool) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}
	if asJSON {
		return readJSON(r)
	}
	return readLines(r)
}
