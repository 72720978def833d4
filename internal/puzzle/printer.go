package puzzle

import (
	"fmt"

	"github.com/fatih/color"
)

const (
	borderTop    = "┌───┬───┬───╥───┬───┬───╥───┬───┬───┐"
	borderBot    = "└───┴───┴───╨───┴───┴───╨───┴───┴───┘"
	dividerMinor = "├───┼───┼───╫───┼───┼───╫───┼───┼───┤"
	dividerMajor = "╞═══╪═══╪═══╬═══╪═══╪═══╬═══╪═══╪═══╡"
	edgeMinor    = "│"
	edgeMajor    = "║"
)

var (
	givenValueColor  = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
	placedValueColor = color.New(color.Bold, color.FgHiWhite)
	blankCellColor   = color.New(color.FgHiBlack)
)

// Print renders the grid to stdout as a bordered 9x9 table, distinguishing
// given digits from digits the solver placed.
func (p *Puzzle) Print() {
	color.HiWhite(borderTop)
	for r, row := range p.Grid {
		if r != 0 {
			if r%3 == 0 {
				color.HiWhite(dividerMajor)
			} else {
				color.HiWhite(dividerMinor)
			}
		}
		printRow(row)
	}
	color.HiWhite(borderBot)
}

func (p *Puzzle) PrintUnsolvedCounts() {
	color.HiWhite("Unsolved Digits:")
	for digit := 1; digit <= 9; digit++ {
		if !p.IsDigitSolved(digit) {
			fmt.Printf("%d: %d remaining\n", digit, p.unsolvedCounts[digit])
		} else {
			fmt.Printf("%d: complete\n", digit)
		}
	}
	fmt.Printf("\n%s %d\n",
		color.HiWhiteString("Total Unsolved Cells:"),
		p.unsolvedCounts[0])
}

func printRow(row [9]*Cell) {
	for c, cell := range row {
		if c != 0 && c%3 == 0 {
			fmt.Print(color.HiWhiteString(edgeMajor))
		} else {
			fmt.Print(color.HiWhiteString(edgeMinor))
		}
		cell.print()
	}
	color.HiWhite(edgeMinor)
}

func (c *Cell) print() {
	switch {
	case !c.IsSolved():
		blankCellColor.Print(" . ")
	case c.IsGiven:
		givenValueColor.Printf(" %d ", c.Value())
	default:
		placedValueColor.Printf(" %d ", c.Value())
	}
}
