package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segtag/posmap"
	"github.com/revelaction/segtag/storage"
	"github.com/revelaction/segtag/storage/filesystem"
	"github.com/revelaction/segtag/storage/sqlite/zombiezen"
	"github.com/revelaction/segtag/tagger"
	"github.com/revelaction/segtag/tagger/perceptron"
)

// NewDocRepository opens the docs directory or, for a file, the SQLite
// database at path.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	if path == "" {
		return nil, errors.New("Doc path must be specified via -d or SEGTAG_DOC_PATH")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

// newMapper loads the pos map. A configured path that does not exist
// disables the mapping, with a warning.
func newMapper(c *cli.Context, logger *slog.Logger) (*posmap.Mapper, error) {
	path := c.String("pos-map")

	m, ok, err := posmap.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if !ok && path != "" {
		logger.Warn("pos map not found, tags are not mapped", "path", path)
	}
	if ok {
		logger.Debug("pos map loaded", "path", path, "entries", m.Len())
	}

	return m, nil
}

func newTagger(c *cli.Context, logger *slog.Logger, opts ...tagger.Option) (*tagger.SentenceTagger, *posmap.Mapper, error) {
	mapper, err := newMapper(c, logger)
	if err != nil {
		return nil, nil, err
	}

	model, err := perceptron.Load(c.String("model"))
	if err != nil {
		return nil, nil, err
	}

	opts = append([]tagger.Option{tagger.WithMapper(mapper), tagger.WithLogger(logger)}, opts...)
	return tagger.New(model, opts...), mapper, nil
}

func docIdArg(c *cli.Context) (int, error) {
	if c.NArg() != 1 {
		return 0, fmt.Errorf("%s command needs exactly one argument: <docId>", c.Command.Name)
	}

	id, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return 0, fmt.Errorf("invalid docId: %v", err)
	}

	return id, nil
}
