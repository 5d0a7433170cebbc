//go:build embed_all

package main

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/sagerenn/hyphenation/dictionary"
	"github.com/sagerenn/hyphenation/internal/catalog"
	"github.com/sagerenn/hyphenation/internal/resources"
	"github.com/sagerenn/hyphenation/lang"
)

type EmbeddedCmd struct {
	Kind string `name:"kind" short:"k" default:"standard" enum:"standard,extended" help:"Dictionary kind."`
	Lang string `arg:"" optional:"" help:"Language code; lists the compiled-in dictionaries when omitted."`
}

func init() {
	extraOptions = append(extraOptions,
		kong.DynamicCommand("embedded", "Load a dictionary compiled into this binary.", "", &EmbeddedCmd{}))
}

func (c *EmbeddedCmd) Run(g *Globals) error {
	if c.Lang == "" {
		for _, name := range resources.Embedded.Names() {
			fmt.Fprintln(g.Out, name)
		}
		return nil
	}
	l, err := lang.Parse(c.Lang)
	if err != nil {
		return err
	}
	e := catalog.Entry{Source: catalog.Source{Language: l, Embedded: true}}
	switch c.Kind {
	case "extended":
		d, err := dictionary.FromEmbedded[dictionary.Extended](l)
		if err != nil {
			return describe(err)
		}
		e.Source.Kind, e.Extended = dictionary.KindExtended, &d
	default:
		d, err := dictionary.FromEmbedded[dictionary.Standard](l)
		if err != nil {
			return describe(err)
		}
		e.Source.Kind, e.Standard = dictionary.KindStandard, &d
	}
	data, _ := resources.Embedded.Lookup(resources.Name(l.Code(), e.Source.Kind.String()))
	if e.Digest, err = catalog.Digest(bytes.NewReader(data)); err != nil {
		return err
	}
	printEntry(g.Out, e)
	return nil
}
