// Command hyphdict inspects, checks and preloads hyphenation dictionaries.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/sagerenn/hyphenation/internal/observability"
)

const version = "0.1.0"

var (
	okColor    = color.New(color.FgGreen, color.Bold)
	failColor  = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgCyan)
)

// CLI defines the command-line interface for hyphdict.
type CLI struct {
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level."`
	LogFormat string `name:"log-format" default:"text" enum:"json,text" help:"Log output format."`

	Inspect   InspectCmd   `cmd:"" help:"Decode a dictionary file without checking its language."`
	Check     CheckCmd     `cmd:"" help:"Check that a dictionary file is for the given language."`
	Languages LanguagesCmd `cmd:"" help:"List supported languages or match a BCP 47 tag."`
	Preload   PreloadCmd   `cmd:"" help:"Load every dictionary named in a config file."`
	Version   VersionCmd   `cmd:"" help:"Print version information."`
}

// Globals is passed to every command's Run method.
type Globals struct {
	Out io.Writer
	Log *observability.Logger
}

// extraOptions collects options contributed by optional build features.
var extraOptions []kong.Option

func newParser(cli *CLI, out io.Writer) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name("hyphdict"),
		kong.Description("Inspect and validate hyphenation dictionaries"),
		kong.UsageOnError(),
		kong.Writers(out, out),
	}
	opts = append(opts, extraOptions...)
	return kong.New(cli, opts...)
}

func run(args []string, out io.Writer) error {
	var cli CLI
	parser, err := newParser(&cli, out)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	g := &Globals{
		Out: out,
		Log: observability.NewTo(os.Stderr, cli.LogLevel, cli.LogFormat),
	}
	return ctx.Run(g)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		_, _ = failColor.Fprintln(os.Stderr, "hyphdict: "+err.Error())
		os.Exit(1)
	}
}

type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	_, err := io.WriteString(g.Out, "hyphdict version "+version+"\n")
	return err
}
