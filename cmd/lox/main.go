package main

import (
	"fmt"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lox/internal"
	"lox/internal/config"
)

// Exit codes follow the BSD sysexits convention
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitNoInput  = 66
	exitSoftware = 70
)

var errUsage = errors.New("Usage: lox [script]")

// rootEnv provides the environment shared by every command.
type rootEnv struct {
	flagConfig   string
	flagLogLevel string
	flagNoColor  bool

	cfg      *config.Config
	logger   *logrus.Logger
	printer  stdPrinter
	exitCode int
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	env := &rootEnv{}
	root := env.getRootCmd()
	root.AddCommand(env.getAstCmd(), env.getTokensCmd())
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		if errors.Cause(err) == errUsage {
			fmt.Println(errUsage)
			return exitUsage
		}
		fmt.Fprintln(os.Stderr, err)
		if env.exitCode == exitOK {
			return exitSoftware
		}
	}
	return env.exitCode
}

// getRootCmd returns the command that runs a script or starts the REPL.
func (r *rootEnv) getRootCmd() *cobra.Command {
	ret := &cobra.Command{
		Use:   "lox [script]",
		Short: "Run a lox script, or start a prompt when none is given",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errUsage
			}
			return nil
		},
		PersistentPreRunE: r.setup,
		RunE:              r.runRootCmd,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	ret.PersistentFlags().StringVar(&r.flagConfig, "config", "", "Config file, defaults to ~/"+config.DefaultFileName)
	ret.PersistentFlags().StringVar(&r.flagLogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	ret.PersistentFlags().BoolVar(&r.flagNoColor, "no-color", false, "Disable coloured diagnostics")
	return ret
}

// setup loads the config and applies flag overrides.
func (r *rootEnv) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(r.flagConfig)
	if err != nil {
		r.exitCode = exitNoInput
		return err
	}
	if r.flagLogLevel != "" {
		cfg.LogLevel = r.flagLogLevel
		if err := cfg.Validate(); err != nil {
			r.exitCode = exitUsage
			return err
		}
	}
	if r.flagNoColor {
		cfg.Color = false
	}
	r.cfg = cfg

	r.logger = logrus.New()
	r.logger.SetOutput(os.Stderr)
	r.logger.SetLevel(cfg.Level())

	c := color.New()
	if !cfg.Color {
		c.Disable()
	}
	r.printer = stdPrinter{color: c}

	r.logger.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"color":   cfg.Color,
	}).Debug("driver configured")
	return nil
}

func (r *rootEnv) runRootCmd(cmd *cobra.Command, args []string) error {
	interp := internal.NewInterpreter(r.printer, internal.WithLogger(r.logger))
	if len(args) == 0 {
		return r.runPrompt(interp)
	}
	return r.runFile(interp, args[0])
}

func (r *rootEnv) runFile(interp *internal.Interpreter, path string) error {
	source, err := readSource(path)
	if err != nil {
		r.exitCode = exitNoInput
		return err
	}

	state := interp.Run(source)
	switch {
	case state.HadError():
		r.exitCode = exitDataErr
	case state.HadRuntimeError():
		r.exitCode = exitSoftware
	}
	return nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(b), nil
}
