package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	sent "github.com/revelaction/segtag/sentence"
	"github.com/revelaction/segtag/tagger"
)

func tagCommand(c *cli.Context, ui UI) error {
	logger, err := newLogger(c, ui)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	tg, _, err := newTagger(c, logger, tagger.WithMetrics(tagger.NewMetrics(reg)))
	if err != nil {
		return err
	}

	var p Pool
	defer p.Close()

	repo, err := NewDocRepository(&p, c.String("doc-path"))
	if err != nil {
		return err
	}

	metas, err := repo.List()
	if err != nil {
		return err
	}

	if id := c.Int("doc"); id >= 0 {
		selected := metas[:0]
		for _, m := range metas {
			if m.Id == id {
				selected = append(selected, m)
			}
		}
		if len(selected) == 0 {
			return fmt.Errorf("doc not found: %d", id)
		}
		metas = selected
	}

	docs := make([]*sent.Doc, 0, len(metas))
	for _, m := range metas {
		doc, err := repo.Read(m.Id)
		if err != nil {
			return err
		}
		docs = append(docs, &doc)
	}

	var bar *uiprogress.Bar
	if !c.Bool("no-progress") && len(docs) > 0 {
		progress := uiprogress.New()
		progress.SetOut(ui.Err)
		progress.Start()
		defer progress.Stop()

		bar = progress.AddBar(len(docs))
		bar.AppendCompleted()
		bar.PrependElapsed()
	}

	failed := 0
	done := func(doc *sent.Doc, tagErr error) {
		if bar != nil {
			bar.Incr()
		}

		if tagErr != nil {
			failed++
			logger.Error("doc not tagged", "doc", doc.Id, "title", doc.Title, "err", tagErr)
			return
		}

		if err := repo.Write(*doc); err != nil {
			failed++
			logger.Error("doc not written", "doc", doc.Id, "title", doc.Title, "err", err)
		}
	}

	if err := tg.TagDocuments(c.Context, docs, c.Int("workers"), done); err != nil {
		return err
	}

	if path := c.String("metrics-file"); path != "" {
		if err := prometheus.WriteToTextfile(path, reg); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d docs failed", failed, len(docs))
	}

	fmt.Fprintf(ui.Out, "Successfully tagged %d docs\n", len(docs))
	return nil
}
