package game

import "errors"

// ErrCellOccupied is returned when a move targets a cell that already
// holds a mark.
var ErrCellOccupied = errors.New("cell is already occupied")

// Board is the sparse game board: a mapping from packed coordinate to the
// player occupying that cell. Absent keys are empty cells. Marks are never
// overwritten or removed individually; only Clear discards them, and it
// discards all of them at once.
type Board struct {
	cells map[uint64]Player
}

func NewBoard() *Board {
	return &Board{cells: make(map[uint64]Player)}
}

// At returns the occupant of c, or (PlayerNone, false) for an empty cell.
func (b *Board) At(c Coord) (Player, bool) {
	p, ok := b.cells[c.Key()]
	return p, ok
}

// Place puts owner's mark at c. Occupied cells are rejected, never merged.
func (b *Board) Place(c Coord, owner Player) error {
	k := c.Key()
	if _, ok := b.cells[k]; ok {
		return ErrCellOccupied
	}
	b.cells[k] = owner
	return nil
}

// Size returns the number of occupied cells.
func (b *Board) Size() int {
	return len(b.cells)
}

// Clear empties the board.
func (b *Board) Clear() {
	b.cells = make(map[uint64]Player)
}

// Each calls fn for every occupied cell, in no particular order.
func (b *Board) Each(fn func(Coord, Player)) {
	for k, p := range b.cells {
		fn(coordFromKey(k), p)
	}
}

// Bounds returns the bounding box of all occupied cells. ok is false when
// the board is empty.
func (b *Board) Bounds() (min, max Coord, ok bool) {
	for k := range b.cells {
		c := coordFromKey(k)
		if !ok {
			min, max, ok = c, c, true
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return min, max, ok
}
