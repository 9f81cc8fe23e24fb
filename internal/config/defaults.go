package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// EnvDefaultsFile names the environment variable consulted when --config is not given.
const EnvDefaultsFile = "HEADR_CONFIG"

// Defaults holds user defaults read from an HCL (or HCL-JSON) file:
//
//	lines     = 20
//	color     = "never"
//	theme     = "light"
//	log_level = "debug"
//
// A defaults file can only change the default line count; byte mode is
// selected on the command line alone.
type Defaults struct {
	Lines    *int    `hcl:"lines,optional"`
	Color    *string `hcl:"color,optional"`
	Theme    *string `hcl:"theme,optional"`
	LogLevel *string `hcl:"log_level,optional"`
}

var (
	colorModes = []string{"auto", "always", "never"}
	themes     = []string{"dark", "light"}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

// LoadDefaults reads and validates the defaults file at path.
func LoadDefaults(path string) (*Defaults, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading defaults file: %w", err)
	}
	return ParseDefaults(path, src)
}

// ParseDefaults decodes src. The filename extension selects the syntax
// (.hcl or .json) and is used in diagnostics.
func ParseDefaults(filename string, src []byte) (*Defaults, error) {
	var d Defaults
	if err := hclsimple.Decode(filename, src, nil, &d); err != nil {
		return nil, fmt.Errorf("decoding defaults file: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &d, nil
}

func (d *Defaults) validate() error {
	if d.Lines != nil {
		if _, err := parseCount("line", strconv.Itoa(*d.Lines)); err != nil {
			return err
		}
	}
	if err := oneOf("color", d.Color, colorModes); err != nil {
		return err
	}
	if err := oneOf("theme", d.Theme, themes); err != nil {
		return err
	}
	return oneOf("log_level", d.LogLevel, logLevels)
}

// LinesToken returns the default line count as an option token, or "" when unset.
func (d *Defaults) LinesToken() string {
	if d == nil || d.Lines == nil {
		return ""
	}
	return strconv.Itoa(*d.Lines)
}

// ValidLogLevel reports whether s is an accepted --log-level value.
func ValidLogLevel(s string) bool { return slices.Contains(logLevels, s) }

func oneOf(name string, v *string, allowed []string) error {
	if v == nil || slices.Contains(allowed, *v) {
		return nil
	}
	return fmt.Errorf("invalid %s %q: must be one of %v", name, *v, allowed)
}
