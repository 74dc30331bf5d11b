package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"

	"gridfive/internal/game"
)

// runResult captures one finished self-play game.
type runResult struct {
	runIndex  int
	seed      int64
	winner    game.Player
	moves     int
	direction string
	rejected  int // moves that targeted an occupied cell
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var maxMoves int
	var arena int

	flag.IntVar(&runs, "runs", 20, "number of self-play games")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&maxMoves, "max-moves", 400, "abandon a game after this many moves")
	flag.IntVar(&arena, "arena", 5, "half-width of the random play area")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if arena <= 0 {
		fmt.Println("error: -arena must be > 0")
		return
	}

	results := make([]runResult, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		results = append(results, playOne(i+1, seed, maxMoves, arena))
	}
	printReport(results, maxMoves)
}

// playOne runs a single game of uniformly random legal moves inside the
// arena square. Both players share the same policy, so the report mostly
// shows the first-move advantage and typical game lengths.
func playOne(runIndex int, seed int64, maxMoves, arena int) runResult {
	rng := rand.New(rand.NewSource(seed))
	session := game.NewSession()
	res := runResult{runIndex: runIndex, seed: seed}

	// A full arena with no winner must terminate too.
	cells := (2*arena + 1) * (2*arena + 1)
	limit := maxMoves
	if cells < limit {
		limit = cells
	}

	for {
		cell := game.Coord{
			X: rng.Intn(2*arena+1) - arena,
			Y: rng.Intn(2*arena+1) - arena,
		}
		view, err := session.ApplyMove(cell)
		if err != nil {
			if errors.Is(err, game.ErrCellOccupied) {
				res.rejected++
				continue
			}
			break
		}
		if view.State == game.StateWon {
			res.winner = view.Winner
			res.moves = view.MoveCount
			res.direction = lineDirection(view.WinningLine)
			return res
		}
		if view.MoveCount >= limit {
			res.moves = view.MoveCount
			return res
		}
	}
	return res
}

// lineDirection names the axis of a winning line from its first step.
func lineDirection(line []game.Coord) string {
	if len(line) < 2 {
		return "unknown"
	}
	dx := line[1].X - line[0].X
	dy := line[1].Y - line[0].Y
	switch {
	case dx == 1 && dy == 0:
		return "horizontal"
	case dx == 0 && dy == 1:
		return "vertical"
	case dx == 1 && dy == 1:
		return "diagonal-down"
	case dx == 1 && dy == -1:
		return "diagonal-up"
	default:
		return "unknown"
	}
}

func printReport(results []runResult, maxMoves int) {
	winsA, winsB, unfinished := 0, 0, 0
	totalMoves, minMoves, maxSeen := 0, 0, 0
	rejected := 0
	dirCounts := map[string]int{}

	for _, r := range results {
		rejected += r.rejected
		switch r.winner {
		case game.PlayerA:
			winsA++
		case game.PlayerB:
			winsB++
		default:
			unfinished++
			continue
		}
		totalMoves += r.moves
		if minMoves == 0 || r.moves < minMoves {
			minMoves = r.moves
		}
		if r.moves > maxSeen {
			maxSeen = r.moves
		}
		dirCounts[r.direction]++
	}

	fmt.Printf("self-play report: %d runs\n", len(results))
	fmt.Printf("  wins A: %d  wins B: %d  unfinished (>%d moves): %d\n",
		winsA, winsB, maxMoves, unfinished)
	if decided := winsA + winsB; decided > 0 {
		fmt.Printf("  moves to win: avg %.1f  min %d  max %d\n",
			float64(totalMoves)/float64(decided), minMoves, maxSeen)
	}
	for _, dir := range []string{"horizontal", "vertical", "diagonal-down", "diagonal-up"} {
		if n := dirCounts[dir]; n > 0 {
			fmt.Printf("  %-14s %d\n", dir, n)
		}
	}
	fmt.Printf("  occupied-cell retries: %d\n", rejected)
	fmt.Println()
	for _, r := range results {
		outcome := "unfinished"
		if r.winner != game.PlayerNone {
			outcome = fmt.Sprintf("%s in %d (%s)", r.winner, r.moves, r.direction)
		}
		fmt.Printf("  run %2d seed %4d: %s\n", r.runIndex, r.seed, outcome)
	}
}
