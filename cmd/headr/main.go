package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/clarabennett2626/headr/internal/config"
	"github.com/clarabennett2626/headr/internal/head"
	"github.com/clarabennett2626/headr/internal/source"
	"github.com/clarabennett2626/headr/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole program minus process plumbing. Only configuration
// errors and output failures produce a non-zero status; unreadable sources
// are reported and skipped.
func run(args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "headr %s (%s) built %s\n", version, commit, date)
		return exitOK
	}

	fail := func(err error) int {
		r := tui.NewRenderer(stderr, tui.RenderConfig{Color: tui.ColorNever})
		fmt.Fprintln(stderr, r.Failure(head.Program, "", err.Error()))
		return exitFailure
	}

	defaults := &config.Defaults{}
	configPath := opts.configPath
	if configPath == "" {
		configPath = getenv(config.EnvDefaultsFile)
	}
	if configPath != "" {
		if defaults, err = config.LoadDefaults(configPath); err != nil {
			return fail(err)
		}
	}

	renderCfg, logLevel, err := resolveSettings(opts, defaults)
	if err != nil {
		return fail(err)
	}
	logger := newLogger(logLevel, stderr)
	logger.Debug("Settings resolved.", "config", configPath, "log_level", logLevel)

	cfg, err := config.New(config.Options{
		Lines:         opts.lines,
		Bytes:         opts.bytes,
		Sources:       opts.sources,
		FallbackLines: defaults.LinesToken(),
	})
	if err != nil {
		return fail(err)
	}

	engine := head.New(stdout, stderr,
		head.WithLogger(logger),
		head.WithRenderConfig(renderCfg),
		head.WithSourceOptions(source.WithStdin(stdin)),
	)
	if _, err := engine.Run(cfg); err != nil {
		return fail(err)
	}
	return exitOK
}

// resolveSettings layers flags over the defaults file over built-in values.
func resolveSettings(opts *cliOptions, d *config.Defaults) (tui.RenderConfig, string, error) {
	pick := func(flagVal, fileVal *string, builtin string) string {
		switch {
		case flagVal != nil:
			return *flagVal
		case fileVal != nil:
			return *fileVal
		}
		return builtin
	}

	rc := tui.DefaultConfig()
	var err error
	if rc.Color, err = tui.ParseColorMode(pick(opts.color, d.Color, "auto")); err != nil {
		return rc, "", err
	}
	if rc.Theme, err = tui.ParseTheme(pick(opts.theme, d.Theme, "dark")); err != nil {
		return rc, "", err
	}
	level := pick(opts.logLevel, d.LogLevel, "warn")
	if !config.ValidLogLevel(level) {
		return rc, "", fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn' or 'error'", level)
	}
	return rc, level, nil
}
