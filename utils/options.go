package utils

import (
	"flag"
	"fmt"
	"strings"
)

type options struct {
	mode       string
	domain     string
	widen      bool
	visualize  bool
	output     string
	noColorize bool
	verbose    bool
}

var opts options

func init() {
	flag.StringVar(&(opts.mode), "mode", "sensitive", "analysis mode: insensitive | sensitive")
	flag.StringVar(&(opts.domain), "domain", "interval", "abstract domain: parity | interval")
	flag.BoolVar(&(opts.widen), "widen", true, "use widening instead of plain join in the flow-sensitive engine")
	flag.BoolVar(&(opts.visualize), "visualize", false, "render the residual transition graph")
	flag.StringVar(&(opts.output), "output", "", "output path prefix for rendered graphs")
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "disable colorized output")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")
}

// ParseArgs parses command line flags into the global option set.
func ParseArgs() {
	flag.Parse()
}

// CanColorize wraps a color Sprint function such that colorization
// may be globally disabled with -no-colorize.
func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

type optInterface struct{}

// Opts exposes read access to the global option set.
func Opts() optInterface {
	return optInterface{}
}

func (optInterface) Mode() string {
	return opts.mode
}

func (optInterface) Domain() string {
	return opts.domain
}

func (optInterface) Widen() bool {
	return opts.widen
}

func (optInterface) Visualize() bool {
	return opts.visualize
}

func (optInterface) Output() string {
	return opts.output
}

func (optInterface) Verbose() bool {
	return opts.verbose
}

// VerbosePrint prints only when -verbose is set.
func VerbosePrint(format string, a ...interface{}) (n int, err error) {
	if Opts().Verbose() {
		return fmt.Printf(format, a...)
	}
	return 0, nil
}
