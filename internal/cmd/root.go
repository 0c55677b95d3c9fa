package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/harrison/linecheck/internal/config"
	"github.com/harrison/linecheck/internal/fileutil"
	"github.com/harrison/linecheck/internal/ignore"
	"github.com/harrison/linecheck/internal/lint"
	"github.com/harrison/linecheck/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for linecheck
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linecheck --files [file...]",
		Short: "Check text files for tabs, trailing whitespace and line ending problems",
		Long: `Linecheck scans text files line by line and reports:
  - TAB characters (first occurrence per file)
  - Trailing whitespace
  - A last line without an end-of-line marker
  - Line endings that do not match the file's convention
    (CRLF for *.bat, LF for everything else; first wrong ending per file)

Every argument after --files is a file to check; a file named before
--files is rejected. Findings are printed to stdout as file:line:char:message.

Exit code: 0 if clean, 1 if findings were reported, 2 on operational errors`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints errors so that findings do not produce an "Error:" line
		SilenceErrors: true,
	}

	files := &filesMarker{flags: cmd.Flags()}
	filesFlag := cmd.Flags().VarPF(files, "files", "", "Check the files that follow (zero or more)")
	filesFlag.NoOptDefVal = "true"
	cmd.Flags().String("ignored-files-list", "", "File with glob patterns of files to skip, one per line")
	cmd.Flags().String("config", "", "Path to a YAML config file; only log_level is read from it")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity on stderr: trace, debug, info, warn, error")
	_ = cmd.MarkFlagRequired("files")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runRoot(cmd, args, files)
	}

	return cmd
}

// filesMarker is the value behind --files. It records how many positional
// arguments had been parsed when the flag first appeared, so that files named
// before --files can be rejected.
type filesMarker struct {
	flags  *pflag.FlagSet
	set    bool
	seen   bool
	before int
}

func (m *filesMarker) String() string { return strconv.FormatBool(m.set) }

func (m *filesMarker) Set(value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	m.set = v
	if !m.seen {
		m.seen = true
		m.before = len(m.flags.Args())
	}
	return nil
}

func (m *filesMarker) Type() string { return "bool" }

// runRoot implements the root command logic
func runRoot(cmd *cobra.Command, args []string, marker *filesMarker) error {
	if !marker.set && len(args) > 0 {
		return fmt.Errorf("unexpected arguments %v: files must follow --files", args)
	}
	if marker.before > 0 {
		return fmt.Errorf("unexpected arguments %v before --files: files must follow --files", args[:marker.before])
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	conventions := lint.DefaultConventions()

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if cfg.Source != "" {
		log.LogDebug(fmt.Sprintf("loaded config from %s", cfg.Source))
	}

	files := args
	ignored := 0
	if cmd.Flags().Changed("ignored-files-list") {
		listFlag, _ := cmd.Flags().GetString("ignored-files-list")
		listPath, err := fileutil.ResolvePath(listFlag)
		if err != nil {
			return err
		}
		files, err = ignore.FilterFile(listPath, args)
		if err != nil {
			return err
		}
		ignored = len(args) - len(files)
		log.LogInfo(fmt.Sprintf("ignored %d of %d files using %s", ignored, len(args), listPath))
	}

	runner := &Runner{
		Out:         cmd.OutOrStdout(),
		ErrOut:      cmd.ErrOrStderr(),
		Logger:      log,
		Conventions: conventions,
	}
	result := runner.Run(files)
	result.Summary.FilesGiven = len(args)
	result.Summary.FilesIgnored = ignored
	log.LogSummary(result.Summary)

	return result.Err()
}

// loadConfig reads the config named by --config, if any, and applies
// --log-level on top. No config file is looked up implicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if cmd.Flags().Changed("config") {
		configFlag, _ := cmd.Flags().GetString("config")
		configPath, err := fileutil.ResolvePath(configFlag)
		if err != nil {
			return nil, err
		}
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	}

	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		cfg.MergeWithFlags(&level)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ExitCode maps the error returned by the root command to a process exit
// status: 0 on success, 1 when findings were reported, 2 for anything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrFindings):
		return 1
	default:
		return 2
	}
}
