package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segtag/stat"
)

func statCommand(c *cli.Context, ui UI) error {
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

	hdl := stat.NewHandler()
	hdl.Aggregate(doc)

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens %d, num tokens per sentence %d, untagged %d\n",
		stats.NumSentences, stats.NumTokens, stats.TokensPerSentenceMean, stats.Untagged)

	for _, f := range stats.Sorted() {
		fmt.Fprintf(ui.Out, "%8s %d\n", f.Pos, f.Count)
	}

	return nil
}
