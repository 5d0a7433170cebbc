//go:build embed_all

package dictionary

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/sagerenn/hyphenation/internal/resources"
	"github.com/sagerenn/hyphenation/lang"
)

func TestFromEmbedded(t *testing.T) {
	en, err := FromEmbedded[Standard](lang.EnglishUS)
	if err != nil {
		t.Fatal(err)
	}
	if en.Language != lang.EnglishUS {
		t.Fatalf("got %v", en.Language)
	}
	data, ok := resources.Embedded.Lookup("en-us.standard.bincode")
	if !ok {
		t.Fatal("resource missing")
	}
	viaReader, err := FromReader[Standard](lang.EnglishUS, bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(en, viaReader) {
		t.Fatal("embedded and reader loads differ")
	}

	hu, err := FromEmbedded[Extended](lang.Hungarian)
	if err != nil {
		t.Fatal(err)
	}
	if alt := hu.Patterns["ssz"].Alternative; alt == nil || alt.Substitution != "szsz" {
		t.Fatalf("unexpected alternative %+v", alt)
	}
}

func TestFromEmbeddedMissing(t *testing.T) {
	if _, err := FromEmbedded[Standard](lang.Welsh); !errors.Is(err, ErrResource) {
		t.Fatalf("expected ErrResource, got %v", err)
	}
	if _, err := FromEmbedded[Extended](lang.EnglishUS); !errors.Is(err, ErrResource) {
		t.Fatalf("expected ErrResource, got %v", err)
	}
}

func TestEmbeddedTableIsConsistent(t *testing.T) {
	for _, l := range lang.All() {
		if _, err := FromEmbedded[Standard](l); err != nil && !errors.Is(err, ErrResource) {
			t.Fatalf("%v standard: %v", l, err)
		}
		if _, err := FromEmbedded[Extended](l); err != nil && !errors.Is(err, ErrResource) {
			t.Fatalf("%v extended: %v", l, err)
		}
	}
}
