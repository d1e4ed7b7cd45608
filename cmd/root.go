// Package cmd provides the root command and CLI setup for cooplint.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/cooplint/internal/adapter"
	"github.com/mouse-blink/cooplint/internal/config"
	"github.com/mouse-blink/cooplint/internal/controller"
	"github.com/mouse-blink/cooplint/internal/engine"
	"github.com/mouse-blink/cooplint/internal/logging"
	m "github.com/mouse-blink/cooplint/internal/model"
)

var sourceFS adapter.SourceFSAdapter

// newParser is a seam for tests, which swap in a parser that does not
// need the grammar to be compiled in.
var newParser = func() (adapter.Parser, error) {
	if !adapter.ParserAvailable() {
		return nil, adapter.ErrParserUnavailable
	}

	return adapter.NewKotlinParser(), nil
}

func init() {
	sourceFS = adapter.NewLocalSourceFSAdapter()
}

var configFlag string
var parallelFlag int
var formatFlag string
var failOnFlag string
var disableFlags []string
var logLevelFlag string
var reportsOutputDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cooplint [paths...]",
		Short: "Structured concurrency linter for Kotlin coroutines",
		Long: `Cooplint inspects Kotlin sources for structured-concurrency violations:
unscoped launches, leaked deferreds, blocking calls inside coroutines,
swallowed cancellation and friends.

Supports recursive path patterns:
  - ./...          recursively scan current directory
  - ./app/...      recursively scan app directory
  - ./app ./lib    scan multiple directories`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args)
		},
	}
	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "path to a configuration file (default: .cooplint.* in the working directory)")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 0, "number of files analyzed in parallel (0 = single worker)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output format: table, json or tui")
	cmd.Flags().StringVar(&failOnFlag, "fail-on", "", "exit non-zero when findings reach this severity (error or warning)")
	cmd.Flags().StringArrayVarP(&disableFlags, "disable", "d", nil, "disable a rule by id or name (can be repeated)")
	cmd.Flags().StringVar(&logLevelFlag, "log-level", "", "diagnostic verbosity: debug, info, warn or error")
	cmd.Flags().StringVar(&reportsOutputDirFlag, "reports", adapter.DefaultReportsDir, "directory reports are written to")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

	parser, err := newParser()
	if err != nil {
		return err
	}

	caching, err := adapter.NewCachingParser(parser, adapter.DefaultCacheSize)
	if err != nil {
		return err
	}

	sources, err := sourceFS.Get(parsePaths(args))
	if err != nil {
		return err
	}

	logger.Debug("collected sources", "files", len(sources))

	inputs := make([]engine.Input, 0, len(sources))

	for _, src := range sources {
		file := string(src.Origin)

		data, err := sourceFS.ReadFile(src.Origin)
		if err != nil {
			inputs = append(inputs, engine.Input{File: file, Err: err})

			continue
		}

		tree, err := caching.Parse(cmd.Context(), file, data)
		inputs = append(inputs, engine.Input{File: file, Tree: tree, Err: err})
	}

	report, err := engine.Analyze(cmd.Context(), inputs, engine.Options{
		Threads:       cfg.Threads,
		DisabledRules: cfg.DisabledRules,
		Extensions:    cfg.Extensions,
	})
	if err != nil {
		return err
	}

	if path, err := adapter.NewReportStore(reportsOutputDirFlag).Save(report); err != nil {
		logger.Warn("could not persist report", "error", err)
	} else {
		logger.Debug("report persisted", "path", string(path))
	}

	ui, err := controller.NewUI(cmd, cfg.Format, adapter.IsTTY(os.Stdout))
	if err != nil {
		return err
	}

	if err := ui.Render(report); err != nil {
		return err
	}

	return checkFailOn(report)
}

// loadConfig merges the configuration file with flags; a flag set on
// the command line wins over the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(".", configFlag)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("parallel") {
		cfg.Threads = parallelFlag
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = formatFlag
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}

	cfg.DisabledRules = append(cfg.DisabledRules, disableFlags...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch failOnFlag {
	case "", "error", "warning":
	default:
		return nil, fmt.Errorf("unknown fail-on severity %q", failOnFlag)
	}

	return cfg, nil
}

func checkFailOn(report m.Report) error {
	if failOnFlag == "" {
		return nil
	}

	if report.HasSeverity(m.Severity(failOnFlag)) {
		return fmt.Errorf("findings at or above %s severity", failOnFlag)
	}

	return nil
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
