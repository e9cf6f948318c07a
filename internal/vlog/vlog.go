// Package vlog is a package-level verbose logger: a single toggle, checked
// on every call, writing to stderr so a tool's stdout stays reserved for its
// actual output (alignment results, score matrices).
package vlog

import (
	"flag"
	"fmt"
	"os"
)

// Verbose gates every Vprint/Vprintf/Vprintln call. Off by default.
var Verbose = false

func Vprint(s string) {
	if !Verbose {
		return
	}
	fmt.Fprint(os.Stderr, s)
}

func Vprintf(format string, v ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format, v...)
}

func Vprintln(s string) {
	if !Verbose {
		return
	}
	fmt.Fprintln(os.Stderr, s)
}

// PrintFlagDefaults writes every registered flag's name, default value and
// usage string to stdout in a "--name=\"default\"" layout.
func PrintFlagDefaults() {
	flag.VisitAll(func(fg *flag.Flag) {
		fmt.Printf("--%s=%q\n\t%s\n", fg.Name, fg.DefValue, fg.Usage)
	})
}
