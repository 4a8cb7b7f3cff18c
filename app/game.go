package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tiggercwh/stone-paper-scissors/banner"
	"github.com/tiggercwh/stone-paper-scissors/config"
	"github.com/tiggercwh/stone-paper-scissors/console"
	"github.com/tiggercwh/stone-paper-scissors/engine"
	"github.com/tiggercwh/stone-paper-scissors/gameModel"
)

// Banner renders the final result message.
type Banner interface {
	Render(ctx context.Context, message string) error
}

type MoveGenerator interface {
	Next() gameModel.Move
}

// Game drives a single best-of series from setup to the final banner.
type Game struct {
	reader    *console.Reader
	presenter *console.Presenter
	moves     MoveGenerator
	banner    Banner
	logger    *slog.Logger
	errOut    io.Writer

	cfg   gameModel.SeriesConfig
	state gameModel.SeriesState
}

func NewGame(reader *console.Reader, presenter *console.Presenter, moves MoveGenerator, b Banner, logger *slog.Logger, errOut io.Writer) *Game {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return &Game{
		reader:    reader,
		presenter: presenter,
		moves:     moves,
		banner:    b,
		logger:    logger,
		errOut:    errOut,
	}
}

func (g *Game) Config() gameModel.SeriesConfig { return g.cfg }

func (g *Game) State() gameModel.SeriesState { return g.state }

// Play runs the series. Any returned error is terminal for the process.
func (g *Game) Play(ctx context.Context) error {
	g.state = gameModel.SeriesState{Phase: gameModel.Setup}

	if err := g.setup(ctx); err != nil {
		return g.fail(err)
	}
	g.logger.Info("series started", "player", g.cfg.PlayerName, "best_of", g.cfg.BestOf, "wins_needed", g.cfg.WinsNeeded())

	g.state.Phase = gameModel.RoundInProgress
	for !g.state.Over(g.cfg) {
		if err := g.playRound(ctx); err != nil {
			return g.fail(err)
		}
	}
	return g.finish(ctx)
}

func (g *Game) setup(ctx context.Context) error {
	name, err := g.reader.ReadPlayerName(ctx)
	if err != nil {
		return err
	}
	bestOf, err := g.reader.ReadBestOf(ctx)
	if err != nil {
		return err
	}
	g.cfg, err = gameModel.NewSeriesConfig(name, bestOf)
	return err
}

func (g *Game) playRound(ctx context.Context) error {
	player, err := g.reader.ReadPlayerMove(ctx)
	if err != nil {
		return err
	}
	computer := g.moves.Next()
	outcome := engine.Resolve(player, computer)
	if err := g.state.Record(g.cfg, outcome); err != nil {
		return err
	}
	g.logger.Debug("round resolved",
		"round", g.state.Rounds,
		"player_move", player.String(),
		"computer_move", computer.String(),
		"winner", outcome.String(),
	)

	if err := g.presenter.RenderRound(ctx, player, computer); err != nil {
		return err
	}
	if g.state.Over(g.cfg) {
		return nil
	}
	return g.presenter.Score(ctx, g.cfg.PlayerName, g.state)
}

func (g *Game) finish(ctx context.Context) error {
	g.state.Phase = gameModel.SeriesComplete
	g.logger.Info("series complete",
		"winner", g.state.Winner(g.cfg),
		"player_wins", g.state.PlayerWins,
		"computer_wins", g.state.ComputerWins,
		"rounds", g.state.Rounds,
	)

	if err := g.presenter.Suspense(ctx); err != nil {
		return g.fail(err)
	}
	if err := g.banner.Render(ctx, console.FinalMessage(g.cfg, g.state)); err != nil {
		return g.fail(err)
	}
	return nil
}

// fail reports err to the user the way each failure class expects and
// hands it back.
func (g *Game) fail(err error) error {
	if g.state.Phase != gameModel.SeriesComplete {
		g.state.Phase = gameModel.Aborted
	}

	var (
		inputErr  *gameModel.InputError
		bannerErr *banner.Error
	)
	switch {
	case errors.As(err, &inputErr) && inputErr.Reason == gameModel.NotAnInteger:
		g.presenter.Notice("Invalid input...\n\n")
	case errors.As(err, &inputErr):
		g.presenter.Notice("\nOnly positive odd integers are valid...\n\n")
	case errors.Is(err, gameModel.ErrExhaustedRetries):
		g.presenter.Notice("Too many invalid inputs...\n")
	case errors.As(err, &bannerErr):
		fmt.Fprintln(g.errOut, bannerErr.Error())
	default:
		fmt.Fprintf(g.errOut, "Error: %v\n", err)
	}
	g.logger.Debug("series aborted", "phase", g.state.Phase.String(), "error", err)
	return err
}

// Run wires a Game from cfg and plays one series on the given streams.
func Run(ctx context.Context, cfg config.Config, in io.Reader, out, errOut io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	pacer := cfg.Pacer()
	runner := banner.NewRunner(cfg.BannerCmd, cfg.BannerWidth)
	runner.Stdout, runner.Stderr = out, errOut

	game := NewGame(
		console.NewReader(in, out, pacer, cfg.MaxAttempts),
		console.NewPresenter(out, pacer),
		engine.NewSeededGenerator(uint64(time.Now().UnixNano())),
		runner,
		config.NewLogger(errOut, cfg.LogLevel),
		errOut,
	)
	return game.Play(ctx)
}
