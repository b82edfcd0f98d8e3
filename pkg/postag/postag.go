package postag

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Tagger extracts nouns from a short piece of text.
type Tagger interface {
	Nouns(text string) []string
}

// ProseTagger tags text with prose's averaged-perceptron model.
type ProseTagger struct{}

// NewProse creates a prose-backed Tagger.
func NewProse() *ProseTagger {
	return &ProseTagger{}
}

// Nouns returns every token tagged NN, NNS, NNP or NNPS, in order.
func (t *ProseTagger) Nouns(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil
	}

	var nouns []string
	for _, tok := range doc.Tokens() {
		if strings.HasPrefix(tok.Tag, "NN") {
			nouns = append(nouns, tok.Text)
		}
	}
	return nouns
}

// Nop never finds a noun.
type Nop struct{}

// Nouns implements Tagger.
func (Nop) Nouns(string) []string { return nil }

// Tagger names accepted by New.
const (
	NameProse = "prose"
	NameNone  = "none"
)

// New returns the named tagger. An empty name selects prose.
func New(name string) (Tagger, error) {
	switch name {
	case "", NameProse:
		return NewProse(), nil
	case NameNone:
		return Nop{}, nil
	}
	return nil, fmt.Errorf("unknown pos tagger %q", name)
}
