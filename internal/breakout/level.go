package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Brick grid geometry.
const (
	BrickHeight   = 28.0
	brickMarginX  = 16.0 // Total horizontal margin shared by both sides
	brickOffset   = 8.0  // Inset of the grid from the playfield origin
	fallbackCols  = 12
	fallbackLevel = 1
)

// LevelSet holds the ordered brick layouts of a game. Levels are addressed
// with 1-based indices throughout.
type LevelSet struct {
	layouts [][]string
}

// NewLevelSet creates a level set from layout rows. Each layout is a slice
// of strings; each rune maps to a brick symbol or empty space.
func NewLevelSet(layouts [][]string) *LevelSet {
	return &LevelSet{layouts: layouts}
}

// DefaultLayouts returns the built-in three-level campaign.
func DefaultLayouts() [][]string {
	return [][]string{
		// Level 1: simple pattern
		{
			"@@@@@@@@@@@@",
			"@#@#@#@#@#@#",
			"@@@@@***@@@@",
		},
		// Level 2: more rows, strategic indestructible placement
		{
			"@@@***@@@***",
			"@#@#@#@#@#@#",
			"@@@@@@@@@@@@",
			"@#@#@#@#@#@#",
			"@@@***@@@***",
		},
		// Level 3: complex pattern with walls
		{
			"*@@@@@@@@@@*",
			"@#########@",
			"@@@@@@@@@@@@",
			"@##*##*##*@",
			"*@@@@@@@@@@*",
		},
	}
}

// Count returns the number of levels.
func (ls *LevelSet) Count() int {
	return len(ls.layouts)
}

// HasLevel reports whether a 1-based level index exists.
func (ls *LevelSet) HasLevel(index int) bool {
	zeroBased := index - 1
	return zeroBased >= 0 && zeroBased < len(ls.layouts)
}

// MaxColumns returns the widest row of the level, or 0 for an unknown level.
func (ls *LevelSet) MaxColumns(index int) int {
	if !ls.HasLevel(index) {
		return 0
	}
	maxCols := 0
	for _, row := range ls.layouts[index-1] {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	return maxCols
}

// Build instantiates the bricks of a level. Each row r, column c gets a
// brick of brickWidth by brickHeight at the grid offset; spaces and unknown
// symbols produce no brick. An unknown level yields an empty slice.
func (ls *LevelSet) Build(index int, brickWidth, brickHeight, offsetX, offsetY float64) []Brick {
	var bricks []Brick
	if !ls.HasLevel(index) {
		return bricks
	}

	for r, row := range ls.layouts[index-1] {
		for c, symbol := range row {
			bounds := core.RectF{
				X: offsetX + float64(c)*brickWidth,
				Y: offsetY + float64(r)*brickHeight,
				W: brickWidth,
				H: brickHeight,
			}
			if brick, ok := BrickFromSymbol(symbol, bounds); ok {
				bricks = append(bricks, brick)
			}
		}
	}
	return bricks
}
