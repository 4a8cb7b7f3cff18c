package engine

import "github.com/tiggercwh/stone-paper-scissors/gameModel"

// beats maps each move to the one it defeats.
var beats = map[gameModel.Move]gameModel.Move{
	gameModel.Stone:    gameModel.Scissors,
	gameModel.Scissors: gameModel.Paper,
	gameModel.Paper:    gameModel.Stone,
}

func Resolve(player, computer gameModel.Move) gameModel.RoundOutcome {
	switch {
	case player == computer:
		return gameModel.Tie
	case beats[player] == computer:
		return gameModel.PlayerWin
	default:
		return gameModel.ComputerWin
	}
}
