package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiggercwh/stone-paper-scissors/gameModel"
)

func TestResolveTable(t *testing.T) {
	tests := []struct {
		player, computer gameModel.Move
		want             gameModel.RoundOutcome
	}{
		{gameModel.Stone, gameModel.Stone, gameModel.Tie},
		{gameModel.Stone, gameModel.Paper, gameModel.ComputerWin},
		{gameModel.Stone, gameModel.Scissors, gameModel.PlayerWin},
		{gameModel.Paper, gameModel.Stone, gameModel.PlayerWin},
		{gameModel.Paper, gameModel.Paper, gameModel.Tie},
		{gameModel.Paper, gameModel.Scissors, gameModel.ComputerWin},
		{gameModel.Scissors, gameModel.Stone, gameModel.ComputerWin},
		{gameModel.Scissors, gameModel.Paper, gameModel.PlayerWin},
		{gameModel.Scissors, gameModel.Scissors, gameModel.Tie},
	}

	for _, tt := range tests {
		t.Run(tt.player.String()+"_vs_"+tt.computer.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.player, tt.computer))
		})
	}
}

func TestResolveIsAntisymmetric(t *testing.T) {
	opposite := map[gameModel.RoundOutcome]gameModel.RoundOutcome{
		gameModel.PlayerWin:   gameModel.ComputerWin,
		gameModel.ComputerWin: gameModel.PlayerWin,
	}

	for _, a := range gameModel.Moves {
		require.Equal(t, gameModel.Tie, Resolve(a, a), "%v vs itself", a)
		for _, b := range gameModel.Moves {
			if a == b {
				continue
			}
			ab, ba := Resolve(a, b), Resolve(b, a)
			require.NotEqual(t, gameModel.Tie, ab)
			require.Equal(t, opposite[ab], ba, "%v vs %v", a, b)
		}
	}
}
