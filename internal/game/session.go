package game

import "errors"

var (
	// ErrGameFinished is returned for moves attempted after a win.
	ErrGameFinished = errors.New("game is already finished")
	// ErrMoveInFlight is returned when ApplyMove re-enters while another
	// move is still being applied on the same session.
	ErrMoveInFlight = errors.New("another move is being applied")
)

// Player identifies a mark owner.
type Player uint8

const (
	PlayerNone Player = iota
	PlayerA           // crosses, moves first
	PlayerB           // rings
)

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "-"
	}
}

func (p Player) opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// SessionState is the session lifecycle state.
type SessionState uint8

const (
	StateInProgress SessionState = iota
	StateWon
)

// MoveRecord is one accepted move, kept for the transcript.
type MoveRecord struct {
	Player Player
	Cell   Coord
}

// Session owns the board and the turn/terminal state. All moves flow
// through ApplyMove; nothing outside the session mutates the board.
type Session struct {
	board       *Board
	turn        Player
	winner      Player
	winningLine []Coord
	moveCount   int
	state       SessionState
	moves       []MoveRecord
	applying    bool
}

func NewSession() *Session {
	return &Session{
		board: NewBoard(),
		turn:  PlayerA,
		state: StateInProgress,
	}
}

// View is an immutable snapshot of the session, safe to hold across
// subsequent moves. The shell renders from views only.
type View struct {
	Cells       map[Coord]Player
	Turn        Player
	Winner      Player
	WinningLine []Coord
	MoveCount   int
	State       SessionState
}

// View returns a snapshot of the current state.
func (s *Session) View() View {
	cells := make(map[Coord]Player, s.board.Size())
	s.board.Each(func(c Coord, p Player) {
		cells[c] = p
	})
	var line []Coord
	if s.winningLine != nil {
		line = append(line, s.winningLine...)
	}
	return View{
		Cells:       cells,
		Turn:        s.turn,
		Winner:      s.winner,
		WinningLine: line,
		MoveCount:   s.moveCount,
		State:       s.state,
	}
}

// ApplyMove places the current player's mark at c. Rejected moves (terminal
// state, occupied cell, re-entrant call) leave every field untouched and
// return the unchanged view alongside the error. On a win the turn is
// frozen; otherwise it flips to the other player.
func (s *Session) ApplyMove(c Coord) (View, error) {
	if s.applying {
		return s.View(), ErrMoveInFlight
	}
	s.applying = true
	defer func() { s.applying = false }()

	if s.state == StateWon {
		return s.View(), ErrGameFinished
	}
	if err := s.board.Place(c, s.turn); err != nil {
		return s.View(), err
	}

	s.moveCount++
	s.moves = append(s.moves, MoveRecord{Player: s.turn, Cell: c})

	if line := findWinningLine(s.board, c, s.turn); line != nil {
		s.state = StateWon
		s.winner = s.turn
		s.winningLine = line
	} else {
		s.turn = s.turn.opponent()
	}
	return s.View(), nil
}

// Reset rebuilds the session from scratch. The old board is abandoned, not
// cleared in place, so views taken before the reset stay valid.
func (s *Session) Reset() View {
	s.board = NewBoard()
	s.turn = PlayerA
	s.winner = PlayerNone
	s.winningLine = nil
	s.moveCount = 0
	s.state = StateInProgress
	s.moves = nil
	return s.View()
}

// Bounds exposes the occupied-cell bounding box for viewport centering.
func (s *Session) Bounds() (min, max Coord, ok bool) {
	return s.board.Bounds()
}
