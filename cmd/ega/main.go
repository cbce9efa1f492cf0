// Command ega is the EGA command-line front end: a file interpreter when
// given a source file, an interactive shell otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katayama-lang/ega"
)

const version = "ega 0.1.0"

// cli is the top-level command-line interface, parsed by kong.
type cli struct {
	Version kong.VersionFlag `short:"v" help:"Print version and exit."`
	File    string           `arg:"" optional:"" type:"existingfile" help:"EGA source file to run. Omitted: start the interactive shell."`
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("ega"),
		kong.Description("EGA: a small, embeddable expression language."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if c.File == "" {
		runREPL()
		return
	}
	os.Exit(runFile(c.File))
}

// runFile loads and executes a source file, mirroring EGA_file_input: exit
// status is non-zero only when the file itself could not be read, never as
// a result of errors the program raises while running (those are printed
// as "ERROR: ..." by EvalTextEx, and the rest of the file is not run).
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: cannot open file '%s'\n", path)
		return 1
	}

	interp := ega.New()
	interp.EvalTextEx(string(source))
	return 0
}
