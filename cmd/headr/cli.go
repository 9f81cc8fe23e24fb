package main

import (
	"flag"
	"fmt"
	"io"
)

// cliOptions holds the raw command-line values. Pointers are nil when the
// option was not given so defaults can be layered underneath.
type cliOptions struct {
	lines      *string
	bytes      *string
	color      *string
	theme      *string
	logLevel   *string
	configPath string
	version    bool
	sources    []string
}

// parseArgs processes command-line arguments. It returns flag.ErrHelp when
// help was requested; any other error is a usage error.
func parseArgs(args []string, output io.Writer) (*cliOptions, error) {
	flagSet := flag.NewFlagSet("headr", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
headr - print the first part of files.

Usage:
  headr [options] [FILE]...

With no FILE, or when FILE is -, read standard input. With more than one
FILE, precede each with a header giving the file name.

Options:
`)
		flagSet.PrintDefaults()
	}

	var lines, bytes, color, theme, logLevel string
	opts := &cliOptions{}
	flagSet.StringVar(&lines, "n", "", "Print the first `LINES` lines (default 10).")
	flagSet.StringVar(&lines, "lines", "", "Same as -n.")
	flagSet.StringVar(&bytes, "c", "", "Print the first `BYTES` bytes. Cannot be combined with -n.")
	flagSet.StringVar(&bytes, "bytes", "", "Same as -c.")
	flagSet.StringVar(&color, "color", "", "Style headers: 'auto', 'always' or 'never' (default auto).")
	flagSet.StringVar(&theme, "theme", "", "Header color theme: 'dark' or 'light' (default dark).")
	flagSet.StringVar(&logLevel, "log-level", "", "Diagnostic log level: 'debug', 'info', 'warn', 'error' (default warn).")
	flagSet.StringVar(&opts.configPath, "config", "", "Path to an HCL defaults file (default $HEADR_CONFIG).")
	flagSet.BoolVar(&opts.version, "version", false, "Print version information and exit.")

	// flag stops at the first positional argument, so parse repeatedly to
	// allow options after file names. "--" ends option parsing.
	rest := splitAttached(args)
	for {
		if err := flagSet.Parse(rest); err != nil {
			return nil, err
		}
		remaining := flagSet.Args()
		if consumed := len(rest) - len(remaining); consumed > 0 && rest[consumed-1] == "--" {
			opts.sources = append(opts.sources, remaining...)
			break
		}
		if len(remaining) == 0 {
			break
		}
		opts.sources = append(opts.sources, remaining[0])
		rest = remaining[1:]
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n", "lines":
			opts.lines = &lines
		case "c", "bytes":
			opts.bytes = &bytes
		case "color":
			opts.color = &color
		case "theme":
			opts.theme = &theme
		case "log-level":
			opts.logLevel = &logLevel
		}
	})
	return opts, nil
}

// splitAttached rewrites "-n5" and "-c5" into "-n" "5" and "-c" "5" up to
// the first "--". Only a digit directly after the option letter triggers
// the split, so -color and -config are left alone.
func splitAttached(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if len(arg) > 2 && (arg[:2] == "-n" || arg[:2] == "-c") && arg[2] >= '0' && arg[2] <= '9' {
			out = append(out, arg[:2], arg[2:])
			continue
		}
		out = append(out, arg)
	}
	return out
}
