package gameModel

import "errors"

type Move int

const (
	Stone Move = iota + 1
	Paper
	Scissors
)

// Moves lists every move in canonical order.
var Moves = []Move{Stone, Paper, Scissors}

func (m Move) String() string {
	switch m {
	case Stone:
		return "Stone"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return "Unknown"
}

// ParseMove matches an already lowercased word against the three move names.
func ParseMove(word string) (Move, bool) {
	switch word {
	case "stone":
		return Stone, true
	case "paper":
		return Paper, true
	case "scissors":
		return Scissors, true
	}
	return 0, false
}

type RoundOutcome int

const (
	Tie RoundOutcome = iota
	PlayerWin
	ComputerWin
)

func (o RoundOutcome) String() string {
	switch o {
	case PlayerWin:
		return "player"
	case ComputerWin:
		return "computer"
	}
	return "tie"
}

type Phase int

const (
	Setup Phase = iota
	RoundInProgress
	SeriesComplete
	Aborted
)

func (p Phase) String() string {
	switch p {
	case Setup:
		return "setup"
	case RoundInProgress:
		return "round"
	case SeriesComplete:
		return "complete"
	}
	return "aborted"
}

const ComputerLabel = "Computer"

type SeriesConfig struct {
	PlayerName string
	BestOf     int
}

// NewSeriesConfig accepts only positive odd series lengths.
func NewSeriesConfig(name string, bestOf int) (SeriesConfig, error) {
	if bestOf%2 == 0 || bestOf < 0 {
		return SeriesConfig{}, &InputError{Reason: InvalidBestOf}
	}
	return SeriesConfig{PlayerName: name, BestOf: bestOf}, nil
}

func (c SeriesConfig) WinsNeeded() int {
	return (c.BestOf + 1) / 2
}

var ErrSeriesOver = errors.New("series already decided")

type SeriesState struct {
	PlayerWins   int
	ComputerWins int
	Rounds       int
	Phase        Phase
}

// Record applies one round verdict. Ties only advance the round count.
func (s *SeriesState) Record(cfg SeriesConfig, outcome RoundOutcome) error {
	if s.Over(cfg) {
		return ErrSeriesOver
	}
	s.Rounds++
	switch outcome {
	case PlayerWin:
		s.PlayerWins++
	case ComputerWin:
		s.ComputerWins++
	}
	return nil
}

func (s SeriesState) Over(cfg SeriesConfig) bool {
	n := cfg.WinsNeeded()
	return s.PlayerWins >= n || s.ComputerWins >= n
}

// Winner returns the label of the side that reached the quorum, or "" while
// the series is still running.
func (s SeriesState) Winner(cfg SeriesConfig) string {
	switch n := cfg.WinsNeeded(); {
	case s.PlayerWins >= n:
		return cfg.PlayerName
	case s.ComputerWins >= n:
		return ComputerLabel
	}
	return ""
}
