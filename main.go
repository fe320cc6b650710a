// Command tty-fifteen plays the sliding 15-puzzle in a terminal.
//
// It supports two front ends:
//  1. the terminal game (default) – arrow keys or hjkl slide tiles, r restarts, q quits
//  2. "mcp" – serves the same game as MCP tools over stdio for AI agents
//
// Flags control the grid dimensions (2 to 9 in each direction, 4x4 by
// default), debug logging and an optional log file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/tty-fifteen/game/config"
	"github.com/wricardo/tty-fifteen/game/engine"
	"github.com/wricardo/tty-fifteen/game/service"
	"github.com/wricardo/tty-fifteen/transport/mcp"
	"github.com/wricardo/tty-fifteen/transport/tui"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "tty-fifteen"
)

// runFunc starts one front end with validated options
type runFunc func(ctx context.Context, opts config.Options) error

// newCommand builds the command line. play runs the terminal game and
// serve the MCP server; both receive options that already passed validation.
func newCommand(stdout, stderr io.Writer, play, serve runFunc) *cli.Command {
	return &cli.Command{
		Name:      AppName,
		Usage:     "slide the numbered tiles back into order",
		UsageText: AppName + " [--lines N] [--rows N] [command]",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "lines",
				Aliases: []string{"l"},
				Value:   engine.DefaultDimension,
				Usage:   fmt.Sprintf("number of grid lines [%d-%d]", config.MinDimension, config.MaxDimension),
			},
			&cli.IntFlag{
				Name:    "rows",
				Aliases: []string{"r"},
				Value:   engine.DefaultDimension,
				Usage:   fmt.Sprintf("number of tiles per line [%d-%d]", config.MinDimension, config.MaxDimension),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:      "log-file",
				Usage:     "append logs to `FILE`",
				TakesFile: true,
			},
		},
		Action: withOptions(play),
		Commands: []*cli.Command{
			{
				Name:   "mcp",
				Usage:  "serve the puzzle as MCP tools over stdio",
				Action: withOptions(serve),
			},
		},
	}
}

// withOptions reads and validates the flags before handing over to run.
// Invalid dimensions exit with status 1 before any game state exists.
func withOptions(run runFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		opts := config.Options{
			Lines:   int(cmd.Int("lines")),
			Rows:    int(cmd.Int("rows")),
			Debug:   cmd.Bool("debug"),
			LogFile: cmd.String("log-file"),
		}
		if err := opts.Validate(); err != nil {
			return cli.Exit(fmt.Sprintf("%s: %v", AppName, err), 1)
		}
		return run(ctx, opts)
	}
}

// runTerminal plays the game in the terminal. Logs are discarded unless a
// log file is given since the board owns stdout.
func runTerminal(ctx context.Context, opts config.Options) error {
	logger, closeLog, err := config.NewLogger(opts, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.WithFields(opts.Fields()).Info("starting terminal game")

	puzzle, err := engine.NewPuzzle(opts.Lines, opts.Rows, engine.NewRand())
	if err != nil {
		return err
	}

	return tui.Run(ctx, service.NewGameService(puzzle, logger))
}

// runMCP serves the game over stdio; logs go to stderr so stdout stays
// reserved for the protocol.
func runMCP(ctx context.Context, opts config.Options) error {
	logger, closeLog, err := config.NewLogger(opts, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.WithFields(opts.Fields()).Info("starting mcp server")

	puzzle, err := engine.NewPuzzle(opts.Lines, opts.Rows, engine.NewRand())
	if err != nil {
		return err
	}

	gameService := service.NewGameService(puzzle, logger)
	defer gameService.Quit(context.Background())

	return mcp.NewServer(gameService, logger).Serve(ctx, os.Stdin, os.Stdout)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newCommand(os.Stdout, os.Stderr, runTerminal, runMCP)
	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		cancel()
		os.Exit(1)
	}
}
