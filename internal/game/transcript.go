package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// Transcript renders the accepted moves as plain text, one per line, with
// a result line at the end once the game is won.
func (s *Session) Transcript() string {
	var b strings.Builder
	fmt.Fprintf(&b, "gridfive — %d moves\n", s.moveCount)
	for i, m := range s.moves {
		fmt.Fprintf(&b, "%3d. %s (%d,%d)\n", i+1, m.Player, m.Cell.X, m.Cell.Y)
	}
	if s.state == StateWon {
		first := s.winningLine[0]
		last := s.winningLine[len(s.winningLine)-1]
		fmt.Fprintf(&b, "winner: %s, line (%d,%d)-(%d,%d)\n",
			s.winner, first.X, first.Y, last.X, last.Y)
	}
	return b.String()
}

// CopyTranscript puts the transcript on the system clipboard.
func (s *Session) CopyTranscript() error {
	return clipboard.WriteAll(s.Transcript())
}
