package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

func mapCommand(c *cli.Context, ui UI) error {
	if c.NArg() == 0 {
		return errors.New("map command needs at least one argument: <tag>")
	}

	logger, err := newLogger(c, ui)
	if err != nil {
		return err
	}

	mapper, err := newMapper(c, logger)
	if err != nil {
		return err
	}

	for _, tag := range c.Args().Slice() {
		res := mapper.Resolve(tag)
		fmt.Fprintf(ui.Out, "%s\t%s\t%s\n", tag, res.Tag, res.Status)
	}

	return nil
}
