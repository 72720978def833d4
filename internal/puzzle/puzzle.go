package puzzle

import (
	"fmt"
)

type Puzzle struct {
	Grid [9][9]*Cell

	// Holds counts of how many of each digit still needs to be placed.  If the
	// count for a digit reaches 0, then that digit is completely solved.
	// Index 0 holds the total count of unsolved grid cells.  When this value
	// reaches 0, the puzzle is completely solved.
	unsolvedCounts [10]int
}

func NewPuzzle() *Puzzle {
	p := &Puzzle{}
	for r := range 9 {
		for c := range 9 {
			p.Grid[r][c] = NewCell(r, c)
		}
	}

	for digit := range 10 {
		if digit == 0 {
			// Digit 0 represents the total count of unsolved cells.
			p.unsolvedCounts[digit] = 9 * 9
		} else {
			p.unsolvedCounts[digit] = 9
		}
	}

	return p
}

func (p *Puzzle) IsSolved() bool {
	return p.unsolvedCounts[0] == 0
}

func (p *Puzzle) IsDigitSolved(digit int) bool {
	return p.unsolvedCounts[digit] == 0
}

func (p *Puzzle) GivenValue(r, c int, val int) {
	p.Grid[r][c].GivenValue(val)
	p.updateUnsolvedCounts(r, c, val)
}

func (p *Puzzle) PlaceValue(r, c int, val int) bool {
	cell := p.Grid[r][c]
	if cell.IsSolved() {
		if cell.Value() != val {
			puzzleStateError(fmt.Sprintf("conflicting cell values %d and %d at (%d,%d)",
				cell.Value(), val, r+1, c+1))
		}
		return false
	}

	cell.PlaceValue(val)
	p.updateUnsolvedCounts(r, c, val)
	return true
}

func (p *Puzzle) updateUnsolvedCounts(r, c int, val int) {
	p.unsolvedCounts[0] = p.unsolvedCounts[0] - 1
	p.unsolvedCounts[val] = p.unsolvedCounts[val] - 1
	if p.unsolvedCounts[val] < 0 {
		puzzleStateError(fmt.Sprintf("too many instances of digit %d when placing cell (%d,%d)", val, r, c))
	}
}

// Line renders the puzzle as a single 81-character string, row-major, with
// '0' for unsolved cells — the single-line format read back by ParseLine.
func (p *Puzzle) Line() string {
	buf := make([]byte, 0, 81)
	for r := range 9 {
		for c := range 9 {
			buf = append(buf, byte('0'+p.Grid[r][c].Value()))
		}
	}
	return string(buf)
}

// ParseLine parses a single 81-character line, row-major, digits '1'-'9' for
// given values and '.' or '0' for blanks, into a new Puzzle. Any other
// character is malformed input and produces an error, as does a line of the
// wrong length or one that gives any digit more than nine times. ParseLine returns an error instead of exiting, since callers
// driving a line-oriented loop need to keep going past a malformed line.
func ParseLine(line string) (*Puzzle, error) {
	if len(line) != 81 {
		return nil, fmt.Errorf("expected 81 characters, got %d", len(line))
	}

	p := NewPuzzle()
	for i := 0; i < 81; i++ {
		ch := line[i]
		if ch == '.' {
			continue
		}
		if ch < '0' || ch > '9' {
			return nil, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
		val := int(ch - '0')
		if val == 0 {
			continue
		}
		if p.IsDigitSolved(val) {
			return nil, fmt.Errorf("digit %d given more than nine times", val)
		}
		r, c := i/9, i%9
		p.GivenValue(r, c, val)
	}
	return p, nil
}
