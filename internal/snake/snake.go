package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is the player's body and movement state. Only the Game mutates it.
type Snake struct {
	body         []core.Point // Head at index 0
	direction    Direction    // Committed direction
	pending      Direction    // Requested since the last tick
	hasPending   bool
	targetLength int
	color        core.Color
}

// NewSnake creates a snake in its starting state on the given board.
func NewSnake(board Board, color core.Color) *Snake {
	s := &Snake{color: color}
	s.Reset(board)
	return s
}

// Reset puts the snake back to its starting state: a single segment at the
// board center heading right, nothing pending, target length 1.
func (s *Snake) Reset(board Board) {
	s.body = append(s.body[:0], board.Center())
	s.direction = DirRight
	s.pending = DirRight
	s.hasPending = false
	s.targetLength = 1
}

// RequestTurn buffers d for the next Advance unless d reverses the committed
// direction. A later accepted request replaces an earlier one.
func (s *Snake) RequestTurn(d Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.pending = d
	s.hasPending = true
	return true
}

// Advance commits the pending direction and moves the head one cell,
// dropping the tail once the body exceeds the target length.
func (s *Snake) Advance(board Board) {
	if s.hasPending {
		s.direction = s.pending
		s.hasPending = false
	}

	head := board.Wrap(s.Head(), s.direction.Delta())
	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if len(s.body) > s.targetLength {
		s.body = s.body[:s.targetLength]
	}
}

// Grow raises the target length by one; the body lengthens on the next Advance.
func (s *Snake) Grow() {
	s.targetLength++
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// SelfCollision reports whether the head overlaps any other segment.
func (s *Snake) SelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment lies on p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// TargetLength returns the length the body grows to.
func (s *Snake) TargetLength() int {
	return s.targetLength
}

// Direction returns the committed direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Pending returns the buffered direction, if any.
func (s *Snake) Pending() (Direction, bool) {
	return s.pending, s.hasPending
}

// ID implements core.Drawable.
func (s *Snake) ID() string { return "snake" }

// Positions implements core.Drawable.
func (s *Snake) Positions() []core.Point { return s.Body() }

// Color implements core.Drawable.
func (s *Snake) Color() core.Color { return s.color }

// Glyph implements core.Drawable.
func (s *Snake) Glyph(i int) rune {
	if i == 0 {
		return 'O'
	}
	return 'o'
}
