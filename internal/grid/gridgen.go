package grid

import (
	"automata/internal/core"
	pcore "automata/pkg/core"
)

// InitializeRandomBalanced fills g with cells that are Active or Passive with
// equal probability.
func InitializeRandomBalanced(g *Grid[core.Cell], dims core.Dimensions, r pcore.Source) {
	g.Initialize(dims, func() core.Cell { return core.Balanced(r) })
}

// InitializeRandomSkewed fills g with cells drawn by core.Skewed.
func InitializeRandomSkewed(g *Grid[core.Cell], dims core.Dimensions, r pcore.Source, skew core.Skew, bias int) error {
	// Validate once so a bad skew never leaves a half-built grid behind.
	if _, err := core.Skewed(r, skew, bias); err != nil {
		return err
	}
	g.Initialize(dims, func() core.Cell {
		c, _ := core.Skewed(r, skew, bias)
		return c
	})
	return nil
}

// InitializeEmpty fills g with Passive cells.
func InitializeEmpty(g *Grid[core.Cell], dims core.Dimensions) {
	g.Initialize(dims, func() core.Cell { return core.Passive })
}
