package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/segtag/render"
	"github.com/revelaction/segtag/repl"
)

func replCommand(c *cli.Context, ui UI) error {
	logger, err := newLogger(c, ui)
	if err != nil {
		return err
	}

	tg, mapper, err := newTagger(c, logger)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = true

	return repl.NewHandler(tg, mapper, r).Run()
}
