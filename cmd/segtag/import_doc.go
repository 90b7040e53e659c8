package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/segtag/storage/filesystem"
	"github.com/revelaction/segtag/storage/sqlite/zombiezen"
)

func importDocCommand(from, to string, ui UI) error {
	src, err := filesystem.NewDocStore(from)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(to)
	if err != nil {
		return err
	}
	defer pool.Close()

	dst := zombiezen.NewDocStore(pool)

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", from)
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
			return fmt.Errorf("failed to read doc %s: %w", docMeta.Title, err)
		}

		if err := dst.Write(doc); err != nil {
			progress.Stop()
			return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
		}
		count++
		bar.Incr()
	}
	progress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, from, to)
	return nil
}
