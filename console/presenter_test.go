package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiggercwh/stone-paper-scissors/gameModel"
)

func TestArtDimensions(t *testing.T) {
	for name, art := range map[string][]string{
		"stone":    stoneArt,
		"paper":    paperArt,
		"scissors": scissorsArt,
		"vs":       versusArt,
	} {
		require.Len(t, art, artHeight, name)
		for i, line := range art {
			assert.Len(t, line, artWidth, "%s line %d", name, i)
		}
	}
}

func TestRenderRoundSideBySide(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(&out, NoDelay)

	require.NoError(t, p.RenderRound(context.Background(), gameModel.Paper, gameModel.Stone))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, artHeight)
	for i, line := range lines {
		want := paperArt[i] + versusArt[i] + stoneArt[i]
		if diff := cmp.Diff(want, line); diff != "" {
			t.Fatalf("line %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestScoreLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(&out, NoDelay)

	err := p.Score(context.Background(), "Ada", gameModel.SeriesState{PlayerWins: 1, ComputerWins: 2})
	require.NoError(t, err)
	assert.Equal(t, "\nAda : 1 | Computer : 2\n", out.String())
}

func TestSuspense(t *testing.T) {
	var out bytes.Buffer
	p := NewPresenter(&out, NoDelay)

	require.NoError(t, p.Suspense(context.Background()))
	assert.Equal(t, "\n.\n..\n...\n\n", out.String())
}

func TestFinalMessage(t *testing.T) {
	cfg := gameModel.SeriesConfig{PlayerName: "Ada", BestOf: 3}

	tests := []struct {
		name  string
		state gameModel.SeriesState
		want  string
	}{
		{
			name:  "player wins",
			state: gameModel.SeriesState{PlayerWins: 2, ComputerWins: 1},
			want:  "Ada  :  2        |        Computer  :  1\nAda   wins !",
		},
		{
			name:  "computer wins",
			state: gameModel.SeriesState{PlayerWins: 0, ComputerWins: 2},
			want:  "Ada  :  0        |        Computer  :  2\nComputer   wins !",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, FinalMessage(cfg, tt.state)); diff != "" {
				t.Errorf("FinalMessage mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFinalMessageBounded(t *testing.T) {
	cfg := gameModel.SeriesConfig{PlayerName: strings.Repeat("n", 19), BestOf: 1 << 30}
	state := gameModel.SeriesState{PlayerWins: 1 << 29, ComputerWins: 1<<29 - 1}

	assert.LessOrEqual(t, len(FinalMessage(cfg, state)), maxFinalMessage-1)
}
