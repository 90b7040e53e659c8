package main

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segtag/render"
	sent "github.com/revelaction/segtag/sentence"
)

func showCommand(c *cli.Context, ui UI) error {
	format := c.String("format")
	if format != "json" && !slices.Contains(render.SupportedFormats(), format) {
		return fmt.Errorf("invalid format %q", format)
	}

	id, err := docIdArg(c)
	if err != nil {
		return err
	}

	var p Pool
	defer p.Close()

	repo, err := NewDocRepository(&p, c.String("doc-path"))
	if err != nil {
		return err
	}

	doc, err := repo.Read(id)
	if err != nil {
		return err
	}

	doc.Sentences = window(doc.Sentences, c.Int("start"), c.Int("n"))

	if format == "json" {
		return render.NewJSONRenderer(ui.Out).Render(doc)
	}

	r := render.NewRenderer()
	r.Out = ui.Out
	r.Format = format
	r.Doc(doc)
	return nil
}

// window returns count sentences from start. A negative count means all.
func window(sentences []sent.Sentence, start, count int) []sent.Sentence {
	if start < 0 {
		start = 0
	}
	if start >= len(sentences) {
		return []sent.Sentence{}
	}

	sentences = sentences[start:]
	if count >= 0 && count < len(sentences) {
		sentences = sentences[:count]
	}
	return sentences
}
