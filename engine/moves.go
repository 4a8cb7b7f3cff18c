package engine

import (
	"math/rand/v2"

	"github.com/tiggercwh/stone-paper-scissors/gameModel"
)

// MoveSource yields integers in [0, n).
type MoveSource interface {
	IntN(n int) int
}

type Generator struct {
	src MoveSource
}

func NewGenerator(src MoveSource) *Generator {
	return &Generator{src: src}
}

// NewSeededGenerator seeds a PCG source once; callers pass a time-varying
// seed so separate runs draw different sequences.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (g *Generator) Next() gameModel.Move {
	return gameModel.Moves[g.src.IntN(len(gameModel.Moves))]
}
