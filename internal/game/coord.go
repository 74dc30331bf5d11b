package game

// Coord is a cell position on the unbounded board. Cells are unit squares
// on an integer grid; there is no minimum or maximum coordinate.
type Coord struct {
	X int
	Y int
}

// Key packs the coordinate into a single map key. The two components are
// truncated to 32 bits each, which keeps the packing injective for any
// position a game could plausibly reach.
func (c Coord) Key() uint64 {
	return uint64(uint32(c.X))<<32 | uint64(uint32(c.Y))
}

// coordFromKey is the exact inverse of Key.
func coordFromKey(k uint64) Coord {
	return Coord{
		X: int(int32(k >> 32)),
		Y: int(int32(k & 0xffffffff)),
	}
}

func (c Coord) add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Coord) neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}
