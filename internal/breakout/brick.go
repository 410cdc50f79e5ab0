package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickKind tags the brick variants. Bricks are plain value records kept in
// a dense slice; destruction is a soft-delete flag so the slice layout is
// stable until the next level rebuild.
type BrickKind int

const (
	BrickNormal         BrickKind = iota // Destroyed in one hit
	BrickDurable                         // Requires multiple hits (default 2)
	BrickIndestructible                  // Never destroyed
)

// Layout symbols for the level contract.
const (
	SymbolNormal         = '@'
	SymbolDurable        = '#'
	SymbolIndestructible = '*'
	SymbolEmpty          = ' '
)

// DurableHits is the default hit count of a durable brick.
const DurableHits = 2

// IndestructibleHits is the sentinel hit count of an indestructible brick.
// It never changes, no matter how many hits the brick takes.
const IndestructibleHits = math.MaxInt32

// String returns the layout symbol for the brick kind.
func (k BrickKind) String() string {
	switch k {
	case BrickDurable:
		return string(SymbolDurable)
	case BrickIndestructible:
		return string(SymbolIndestructible)
	default:
		return string(SymbolNormal)
	}
}

// Brick is a single brick in the playfield.
type Brick struct {
	Kind      BrickKind
	Bounds    core.RectF
	Hits      int         // Hits remaining until destruction
	Destroyed bool        // Soft-delete flag; set exactly once per level
	Powerup   PowerupKind // Specific powerup dropped on destruction, or PowerupNone
}

// NewBrick creates a brick of the given kind covering bounds.
func NewBrick(kind BrickKind, bounds core.RectF) Brick {
	b := Brick{Kind: kind, Bounds: bounds, Powerup: PowerupNone}
	switch kind {
	case BrickDurable:
		b.Hits = DurableHits
	case BrickIndestructible:
		b.Hits = IndestructibleHits
	default:
		b.Hits = 1
	}
	return b
}

// BrickFromSymbol maps a layout symbol to a brick. Unknown symbols (and
// empty cells) yield no brick.
func BrickFromSymbol(symbol rune, bounds core.RectF) (Brick, bool) {
	switch symbol {
	case SymbolNormal:
		return NewBrick(BrickNormal, bounds), true
	case SymbolDurable:
		return NewBrick(BrickDurable, bounds), true
	case SymbolIndestructible:
		return NewBrick(BrickIndestructible, bounds), true
	default:
		return Brick{}, false
	}
}

// Breakable reports whether the brick can ever be destroyed.
func (b *Brick) Breakable() bool {
	return b.Kind != BrickIndestructible
}

// ApplyHit applies one hit and returns true when the hit destroys the
// brick. Indestructible bricks ignore hits entirely; already-destroyed
// bricks stay destroyed.
func (b *Brick) ApplyHit() bool {
	if !b.Breakable() {
		return false
	}
	if b.Destroyed {
		return false
	}
	if b.Hits > 0 {
		b.Hits--
	}
	if b.Hits <= 0 {
		b.Destroyed = true
		return true
	}
	return false
}
