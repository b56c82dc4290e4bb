package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-board/game"
	"github.com/sheikhrachel/go-gol-board/model"
	"github.com/sheikhrachel/go-gol-board/utils"
)

// run loads the configuration and plays until quit, end of the game, or a signal
func run(configPath string, in io.Reader, out io.Writer) error {
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		return err
	}

	g, err := initializeGame(config, out)
	if err != nil {
		return err
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		commands  = make(chan game.Command)
		lines     = scanLines(in)
	)

	eg.Go(func() error {
		defer stop()
		return g.Run(egCtx, commands)
	})
	eg.Go(func() error {
		return readCommands(egCtx, lines, commands, out)
	})

	return eg.Wait()
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*game.Game, error) {
	glyphs, err := model.LookupGlyphs(config.Glyphs)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}
	renderer := model.NewTerminalRenderer(out, glyphs)

	seeder, err := boardSeeder(config)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}

	g, err := game.New(config, seeder, renderer, out)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}
	return g, nil
}

// boardSeeder seeds random boards, or centers the configured pattern on an
// otherwise dead board
func boardSeeder(config utils.Config) (game.Seeder, error) {
	if config.Pattern == "" {
		return game.Fixed(seedGenerator(config.Seed)), nil
	}

	pattern, err := model.LookupPattern(config.Pattern)
	if err != nil {
		return nil, err
	}
	return func(width, height int) model.CellStateGenerator {
		x, y := model.Centered(pattern, width, height)
		return model.Stamp(model.Constant(model.Dead), pattern, x, y)
	}, nil
}

// seedGenerator returns a reproducible random generator for a non-zero seed,
// or nil for the default clock-seeded one
func seedGenerator(seed int64) model.CellStateGenerator {
	if seed == 0 {
		return nil
	}
	return model.RandomGenerator(rand.New(rand.NewSource(seed)))
}

// scanLines feeds input lines to a channel, closed at end of input. The
// scanner goroutine blocks on the reader and is left behind on shutdown.
func scanLines(in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

// readCommands parses input lines into commands until ctx is done or input
// ends. Unparseable lines are reported and skipped.
func readCommands(ctx context.Context, lines <-chan string, commands chan<- game.Command, out io.Writer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				close(commands)
				return nil
			}
			cmd, err := game.ParseCommand(line)
			if err != nil {
				fmt.Fprintf(out, "%v\n%s\n", err, game.Usage)
				continue
			}
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
