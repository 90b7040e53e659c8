package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "segtag: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "segtag",
		Usage:     "tag the words of a sentence corpus with their part of speech",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		// errors are printed by main
		ExitErrHandler:       func(*cli.Context, error) {},
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "doc-path",
				Aliases: []string{"d"},
				Usage:   "Path to docs directory or SQLite file",
				EnvVars: []string{"SEGTAG_DOC_PATH"},
			},
			&cli.StringFlag{
				Name:    "pos-map",
				Aliases: []string{"m"},
				Usage:   "Path to the FINE COARSE tag map. Tags are not mapped when empty or missing",
				EnvVars: []string{"SEGTAG_POS_MAP"},
			},
			&cli.StringFlag{
				Name:    "model",
				Usage:   "Path to a perceptron model (JSON). The embedded English model is used when empty",
				EnvVars: []string{"SEGTAG_MODEL"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"SEGTAG_LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "tag",
				Usage:     "Tag the documents of the repository and write them back",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "doc", Value: -1, Usage: "Only tag the doc with this id"},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Value: runtime.NumCPU(), Usage: "Number of docs tagged concurrently"},
					&cli.StringFlag{Name: "metrics-file", Usage: "Write Prometheus metrics to this file when done"},
					&cli.BoolFlag{Name: "no-progress", Usage: "Do not show the progress bar"},
				},
				Action: func(c *cli.Context) error {
					return tagCommand(c, ui)
				},
			},
			{
				Name:      "show",
				Usage:     "Show the tags of a document",
				ArgsUsage: "<docId>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "pos", Usage: "pos, text, table or json"},
					&cli.IntFlag{Name: "start", Usage: "Index of the first sentence to show"},
					&cli.IntFlag{Name: "n", Value: -1, Usage: "Number of sentences to show (-1 for all)"},
				},
				Action: func(c *cli.Context) error {
					return showCommand(c, ui)
				},
			},
			{
				Name:  "ls",
				Usage: "List the documents of the repository",
				Action: func(c *cli.Context) error {
					return lsDocCommand(c, ui)
				},
			},
			{
				Name:      "stat",
				Usage:     "Show the part of speech distribution of a document",
				ArgsUsage: "<docId>",
				Action: func(c *cli.Context) error {
					return statCommand(c, ui)
				},
			},
			{
				Name:      "map",
				Usage:     "Resolve tags through the pos map",
				ArgsUsage: "<tag> ...",
				Action: func(c *cli.Context) error {
					return mapCommand(c, ui)
				},
			},
			{
				Name:  "repl",
				Usage: "Enter interactive tagging mode",
				Action: func(c *cli.Context) error {
					return replCommand(c, ui)
				},
			},
			{
				Name:  "import",
				Usage: "Copy a directory of JSON docs into a SQLite file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Required: true, Usage: "Source docs directory"},
					&cli.StringFlag{Name: "to", Required: true, Usage: "Target SQLite file"},
				},
				Action: func(c *cli.Context) error {
					return importDocCommand(c.String("from"), c.String("to"), ui)
				},
			},
			{
				Name:  "export",
				Usage: "Copy the docs of a SQLite file into a directory of JSON docs",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Required: true, Usage: "Source SQLite file"},
					&cli.StringFlag{Name: "to", Required: true, Usage: "Target docs directory"},
				},
				Action: func(c *cli.Context) error {
					return exportDocCommand(c.String("from"), c.String("to"), ui)
				},
			},
			{
				Name:  "bash",
				Usage: "Print the bash completion script",
				Action: func(c *cli.Context) error {
					return bashCommand(ui)
				},
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}

func newLogger(c *cli.Context, ui UI) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", c.String("log-level"))
	}

	return slog.New(slog.NewTextHandler(ui.Err, &slog.HandlerOptions{Level: level})), nil
}
