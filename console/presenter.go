package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tiggercwh/stone-paper-scissors/gameModel"
)

// Final message buffer size, terminator included.
const maxFinalMessage = 120

type Presenter struct {
	out   io.Writer
	pacer Pacer
}

func NewPresenter(out io.Writer, pacer Pacer) *Presenter {
	return &Presenter{out: out, pacer: pacer}
}

// RenderRound prints the player's art, the VS art and the computer's art
// side by side, one line at a time.
func (p *Presenter) RenderRound(ctx context.Context, player, computer gameModel.Move) error {
	left, right := moveArt[player], moveArt[computer]
	for i := 0; i < artHeight; i++ {
		fmt.Fprintf(p.out, "%s%s%s\n", left[i], versusArt[i], right[i])
		if err := p.pacer.Pause(ctx, p.pacer.Short); err != nil {
			return err
		}
	}
	return nil
}

// Score prints the running score between rounds.
func (p *Presenter) Score(ctx context.Context, name string, state gameModel.SeriesState) error {
	fmt.Fprint(p.out, "\n")
	if err := p.pacer.Pause(ctx, p.pacer.Short); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "%s : %d | %s : %d", name, state.PlayerWins, gameModel.ComputerLabel, state.ComputerWins)
	if err := p.pacer.Pause(ctx, p.pacer.Short); err != nil {
		return err
	}
	fmt.Fprint(p.out, "\n")
	return p.pacer.Pause(ctx, p.pacer.Short)
}

// Suspense prints the dotted countdown before the result.
func (p *Presenter) Suspense(ctx context.Context) error {
	steps := []struct {
		text  string
		delay time.Duration
	}{
		{"\n", p.pacer.Medium},
		{".\n", p.pacer.Long},
		{"..\n", p.pacer.Long},
		{"...\n", p.pacer.Long},
		{"\n", p.pacer.Medium},
	}
	for _, s := range steps {
		fmt.Fprint(p.out, s.text)
		if err := p.pacer.Pause(ctx, s.delay); err != nil {
			return err
		}
	}
	return nil
}

// Notice writes a diagnostic line as-is.
func (p *Presenter) Notice(text string) {
	fmt.Fprint(p.out, text)
}

// FinalMessage builds the two-line banner text for a decided series.
func FinalMessage(cfg gameModel.SeriesConfig, state gameModel.SeriesState) string {
	msg := fmt.Sprintf("%s  :  %d        |        %s  :  %d\n%s   wins !",
		cfg.PlayerName, state.PlayerWins, gameModel.ComputerLabel, state.ComputerWins, state.Winner(cfg))
	return truncate(msg, maxFinalMessage-1)
}
