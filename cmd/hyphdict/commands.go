package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"

	"github.com/sagerenn/hyphenation/dictionary"
	"github.com/sagerenn/hyphenation/internal/catalog"
	"github.com/sagerenn/hyphenation/internal/config"
	"github.com/sagerenn/hyphenation/internal/observability"
	"github.com/sagerenn/hyphenation/lang"
)

type InspectCmd struct {
	Kind string `name:"kind" short:"k" default:"standard" enum:"standard,extended" help:"Dictionary kind."`
	Path string `arg:"" help:"Dictionary file (.xz compressed files are accepted)."`
}

func (c *InspectCmd) Run(g *Globals) error {
	kind, err := dictionary.ParseKind(c.Kind)
	if err != nil {
		return err
	}
	e, err := catalog.Sniff(c.Path, kind)
	if err != nil {
		return describe(err)
	}
	printEntry(g.Out, e)
	return nil
}

type CheckCmd struct {
	Lang string `name:"lang" short:"l" required:"" help:"Expected language code, e.g. en-us."`
	Kind string `name:"kind" short:"k" default:"standard" enum:"standard,extended" help:"Dictionary kind."`
	Path string `arg:"" help:"Dictionary file."`
}

func (c *CheckCmd) Run(g *Globals) error {
	l, err := lang.Parse(c.Lang)
	if err != nil {
		return err
	}
	switch c.Kind {
	case "extended":
		_, err = dictionary.FromPath[dictionary.Extended](l, c.Path)
	default:
		_, err = dictionary.FromPath[dictionary.Standard](l, c.Path)
	}
	if err != nil {
		return describe(err)
	}
	_, err = okColor.Fprintf(g.Out, "ok: %s is a %s dictionary for %s\n", c.Path, c.Kind, l)
	return err
}

type LanguagesCmd struct {
	Match string `name:"match" help:"Resolve a BCP 47 tag to the closest supported language."`
	In    string `name:"in" default:"en" help:"Display names in this language."`
}

func (c *LanguagesCmd) Run(g *Globals) error {
	in, err := language.Parse(c.In)
	if err != nil {
		return fmt.Errorf("--in: %w", err)
	}
	if c.Match != "" {
		tag, err := language.Parse(c.Match)
		if err != nil {
			return fmt.Errorf("--match: %w", err)
		}
		l, conf := lang.Match(tag)
		if conf == language.No {
			return fmt.Errorf("no hyphenation language matches %s", tag)
		}
		_, err = fmt.Fprintf(g.Out, "%s\t%s\t(%s confidence)\n", l.Code(), l.DisplayName(in), conf)
		return err
	}
	tw := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	for _, l := range lang.All() {
		fmt.Fprintf(tw, "%s\t%s\n", l.Code(), l.DisplayName(in))
	}
	return tw.Flush()
}

type PreloadCmd struct {
	Config string `name:"config" short:"c" required:"" type:"path" help:"Path to the TOML config."`
}

func (c *PreloadCmd) Run(g *Globals) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log := observability.New(cfg.Log.Level, cfg.Log.Format)
	cat, err := catalog.New(cfg, log)
	if err != nil {
		return err
	}
	res := cat.LoadAll(context.Background())
	for _, e := range res.Entries {
		_, _ = okColor.Fprint(g.Out, "loaded ")
		fmt.Fprintf(g.Out, "%s  blake3:%s\n", e.Source, e.Digest)
	}
	for _, err := range res.Errs {
		_, _ = failColor.Fprint(g.Out, "failed ")
		fmt.Fprintln(g.Out, err)
	}
	fmt.Fprintf(g.Out, "%s %s\n", labelColor.Sprint("dict_loads_total"), observability.LoadsTotal.String())
	fmt.Fprintf(g.Out, "%s %s\n", labelColor.Sprint("dict_load_failures"), observability.LoadFailures.String())
	if len(res.Errs) > 0 {
		return fmt.Errorf("%d of %d dictionaries failed to load", len(res.Errs), len(res.Errs)+len(res.Entries))
	}
	return nil
}

func printEntry(w io.Writer, e catalog.Entry) {
	var patterns, exceptions int
	var minima dictionary.Minima
	switch {
	case e.Standard != nil:
		patterns, exceptions, minima = len(e.Standard.Patterns), len(e.Standard.Exceptions), e.Standard.Minima
	case e.Extended != nil:
		patterns, exceptions, minima = len(e.Extended.Patterns), len(e.Extended.Exceptions), e.Extended.Minima
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	row := func(label string, value any) {
		fmt.Fprintf(tw, "%s\t%v\n", labelColor.Sprint(label), value)
	}
	row("language", e.Source.Language.Code())
	row("name", e.Source.Language)
	row("kind", e.Source.Kind)
	row("patterns", patterns)
	row("exceptions", exceptions)
	row("minima", fmt.Sprintf("%d/%d", minima.Left, minima.Right))
	row("blake3", e.Digest)
	_ = tw.Flush()
}

// describe prefixes err with its failure kind.
func describe(err error) error {
	kind, ok := dictionary.KindOf(err)
	if !ok {
		return err
	}
	var mismatch *dictionary.LanguageMismatchError
	if errors.As(err, &mismatch) {
		return fmt.Errorf("%s: expected %s, found %s", kind, mismatch.Expected.Code(), mismatch.Found.Code())
	}
	return fmt.Errorf("%s: %w", kind, err)
}
