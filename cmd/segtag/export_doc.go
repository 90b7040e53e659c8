package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/segtag/storage/filesystem"
	"github.com/revelaction/segtag/storage/sqlite/zombiezen"
)

func exportDocCommand(from, to string, ui UI) error {
	if _, err := os.Stat(from); err != nil {
		return fmt.Errorf("repository not found: %s", from)
	}

	pool, err := zombiezen.NewPool(from)
	if err != nil {
		return err
	}
	defer pool.Close()
	src := zombiezen.NewDocStore(pool)

	if err := os.MkdirAll(to, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	dst, err := filesystem.NewDocStore(to)
	if err != nil {
		return err
	}

	docs, err := src.List()
	if err != nil {
		return err
	}

	if len(docs) == 0 {
		return fmt.Errorf("no docs found in %s", from)
	}

	progress := uiprogress.New()
	progress.SetOut(ui.Err)
	progress.Start()
	bar := progress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, docMeta := range docs {
		doc, err := src.Read(docMeta.Id)
		if err != nil {
			progress.Stop()
			return fmt.Errorf("failed to read doc %s (id %d): %w", docMeta.Title, docMeta.Id, err)
		}

		if err := dst.Write(doc); err != nil {
			progress.Stop()
			return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
		}
		count++
		bar.Incr()
	}
	progress.Stop()

	fmt.Fprintf(ui.Out, "Successfully exported %d docs from %s to %s\n", count, from, to)
	return nil
}
