package game

// winLength is the run length that ends the game.
const winLength = 5

// lineDirections are the four axes a line can form along, in the order they
// are checked. When one move completes lines on more than one axis the first
// axis in this table decides which line gets reported (and highlighted);
// the win itself is the same either way.
var lineDirections = [4]Coord{
	{X: 1, Y: 0},  // horizontal
	{X: 0, Y: 1},  // vertical
	{X: 1, Y: 1},  // diagonal down-right
	{X: 1, Y: -1}, // diagonal up-right
}

// findWinningLine reports the line completed by placing owner's mark at
// last, or nil if the move completes no line. The returned line contains
// exactly winLength cells including last, ordered ascending along the
// direction vector — the minimal winning line, not the full run. The walk
// is bounded by winLength, so detection cost never depends on board size.
func findWinningLine(b *Board, last Coord, owner Player) []Coord {
	for _, dir := range lineDirections {
		forward := walkRun(b, last, dir, owner, winLength-1)
		backward := walkRun(b, last, dir.neg(), owner, winLength-1-len(forward))
		if 1+len(forward)+len(backward) < winLength {
			continue
		}
		line := make([]Coord, 0, winLength)
		for i := len(backward) - 1; i >= 0; i-- {
			line = append(line, backward[i])
		}
		line = append(line, last)
		line = append(line, forward...)
		return line
	}
	return nil
}

// walkRun collects up to limit consecutive cells owned by owner, starting
// one step from from along dir.
func walkRun(b *Board, from, dir Coord, owner Player, limit int) []Coord {
	var run []Coord
	next := from.add(dir)
	for len(run) < limit {
		p, ok := b.At(next)
		if !ok || p != owner {
			break
		}
		run = append(run, next)
		next = next.add(dir)
	}
	return run
}
