/*
Command ufocli inspects UFO font packages.

Usage:

	ufocli [flags] <font.ufo> [command [argument]]

Without a command and without flag --interactive, ufocli prints a summary
of the glyph layer. Commands are the same as in interactive mode; type
"help" at the prompt for a list.

Flags:

	-t, --trace        trace level [Debug|Info|Error] (default "Error")
	-l, --layer        glyph layer directory (default "glyphs")
	-d, --dump         glean all glyphs and write them as JSON to this file
	-i, --interactive  start a REPL
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/ufogleaner/core"
	"github.com/npillmayer/ufogleaner/core/ufo"
	"github.com/npillmayer/ufogleaner/core/ufo/gleaner"
	"github.com/npillmayer/ufogleaner/core/ufo/plist"
	"github.com/npillmayer/ufogleaner/core/ufo/provider"
	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"
)

// tracer traces with key 'tyse.ufo'
func tracer() tracing.Trace {
	return tracing.Select("tyse.ufo")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.StringP("trace", "t", "Error", "Trace level [Debug|Info|Error]")
	layer := flag.StringP("layer", "l", plist.DefaultLayerDir, "Glyph layer directory")
	dump := flag.StringP("dump", "d", "", "Glean all glyphs and write them as JSON to this file")
	interactive := flag.BoolP("interactive", "i", false, "Start interactive mode")
	flag.Parse()
	if err := setupTracing(*tlevel); err != nil {
		fmt.Printf("error configuring tracing: %v\n", err)
		os.Exit(1)
	}
	if flag.NArg() < 1 {
		pterm.Error.Println("no UFO package given")
		flag.Usage()
		os.Exit(2)
	}
	//
	// open the font
	intp, err := newIntp(provider.NewFileProvider(flag.Arg(0)), *layer)
	if err != nil {
		core.UserError(err)
		os.Exit(3)
	}
	if *dump != "" {
		if err := intp.dump(*dump); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
		pterm.Success.Printfln("wrote %s", *dump)
	}
	if flag.NArg() > 1 {
		cmd := parseCommand(strings.Join(flag.Args()[1:], " "))
		if _, err := intp.execute(cmd); err != nil {
			core.UserError(err)
			os.Exit(5)
		}
		return
	}
	if !*interactive {
		if *dump == "" {
			intp.summary()
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("ufo > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(6)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setupTracing routes traces with key 'tyse.ufo' to a Go logger on stderr,
// filtered by level (Debug, Info or Error).
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.root":      "Error",
		"trace.tyse.ufo":  level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	tracer().Infof("trace level is %s", level)
	return nil
}

// Intp is our interpreter object
type Intp struct {
	provider provider.Provider
	layer    string
	font     *ufo.Font
	repl     *readline.Instance
}

func newIntp(p provider.Provider, layer string) (*Intp, error) {
	font, err := ufo.OpenLayer(p, layer)
	if err != nil {
		return nil, err
	}
	return &Intp{provider: p, layer: layer, font: font}, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(parseCommand(line))
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// summary prints meta information and the number of glyphs.
func (intp *Intp) summary() {
	if _, err := intp.execute(&Command{code: INFO}); err != nil {
		pterm.Error.Println(err.Error())
	}
}

// dump gleans all glyphs and writes them to a JSON file.
func (intp *Intp) dump(path string) error {
	g, err := gleaner.NewForLayer(intp.provider, intp.layer)
	if err != nil {
		return err
	}
	return writeDump(path, g.Glean())
}

func usage() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Commands:")
	fmt.Fprintln(&b, "  info              package meta information and layers")
	fmt.Fprintln(&b, "  names [prefix]    list glyph names, optionally filtered by prefix")
	fmt.Fprintln(&b, "  show <glyph>      show the contents of a glyph")
	fmt.Fprintln(&b, "  glean             parse all glyphs and report failures")
	fmt.Fprintln(&b, "  dump <file>       write all glyphs as JSON to file")
	fmt.Fprintln(&b, "  help              this text")
	fmt.Fprintln(&b, "  quit              leave interactive mode")
	return b.String()
}
