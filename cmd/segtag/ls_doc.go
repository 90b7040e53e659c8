package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

func lsDocCommand(c *cli.Context, ui UI) error {
	var p Pool
	defer p.Close()

	repo, err := NewDocRepository(&p, c.String("doc-path"))
	if err != nil {
		return err
	}

	docs, err := repo.List()
	if err != nil {
		return err
	}

	for _, doc := range docs {
		if len(doc.Labels) == 0 {
			fmt.Fprintf(ui.Out, "📖 %d %s\n", doc.Id, doc.Title)
			continue
		}
		fmt.Fprintf(ui.Out, "📖 %d %s [%s]\n", doc.Id, doc.Title, strings.Join(doc.Labels, ", "))
	}

	return nil
}
