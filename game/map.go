package game

import (
	"fmt"
	"strings"
)

const (
	wallChar    = '%'
	foodChar    = '.'
	capsuleChar = 'o'
)

// Layout represents the static board: walls and the initial placement of
// food, capsules and agents.
type Layout struct {
	Width    int
	Height   int
	walls    [][]bool // Indexed [x][y]
	Food     []Cell
	Capsules []Cell
	Starts   []Cell // Start cell per agent index
}

// IsWall reports whether c is a wall or outside the board.
func (l *Layout) IsWall(c Cell) bool {
	if c.X < 0 || c.Y < 0 || c.X >= l.Width || c.Y >= l.Height {
		return true
	}
	return l.walls[c.X][c.Y]
}

// OpenCells returns every non-wall cell, column by column.
func (l *Layout) OpenCells() []Cell {
	var cells []Cell
	for x := 0; x < l.Width; x++ {
		for y := 0; y < l.Height; y++ {
			if !l.walls[x][y] {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// ParseLayout reads a board drawn as text. The first line is the top row.
// Digits 1-4 mark agent starts for agent indices 0-3.
func ParseLayout(text string) (*Layout, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	height := len(lines)
	if height == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("empty layout")
	}
	width := len(lines[0])

	l := &Layout{Width: width, Height: height, walls: make([][]bool, width)}
	for x := range l.walls {
		l.walls[x] = make([]bool, height)
	}

	starts := map[int]Cell{}
	for row, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("row %d has width %d, expected %d", row, len(line), width)
		}
		y := height - 1 - row
		for x, ch := range line {
			cell := Cell{X: x, Y: y}
			switch {
			case ch == wallChar:
				l.walls[x][y] = true
			case ch == foodChar:
				l.Food = append(l.Food, cell)
			case ch == capsuleChar:
				l.Capsules = append(l.Capsules, cell)
			case ch >= '1' && ch <= '4':
				starts[int(ch-'1')] = cell
			case ch == ' ':
			default:
				return nil, fmt.Errorf("unexpected character %q at row %d column %d", ch, row, x)
			}
		}
	}

	if len(starts) < 2 {
		return nil, fmt.Errorf("layout needs at least 2 agents, found %d", len(starts))
	}
	for i := 0; i < len(starts); i++ {
		cell, ok := starts[i]
		if !ok {
			return nil, fmt.Errorf("missing start for agent %d", i+1)
		}
		l.Starts = append(l.Starts, cell)
	}
	return l, nil
}

// DefaultLayout is a small mirrored capture board with two agents a side.
const DefaultLayout = `
%%%%%%%%%%%%%%%%%%%%
%3  .  . .. .  .  4%
% %% %%% .. %%% %% %
% .   o  ..  o   . %
%  %% .%    %. %%  %
% .    % .. %    . %
% %% %%% .. %%% %% %
%1  .  . .. .  .  2%
%%%%%%%%%%%%%%%%%%%%
`

// CreateLayout returns the parsed DefaultLayout.
func CreateLayout() *Layout {
	l, err := ParseLayout(DefaultLayout)
	if err != nil {
		panic(fmt.Sprintf("default layout is invalid: %v", err))
	}
	return l
}
