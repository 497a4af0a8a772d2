package race

// Side tags which operand of a race resolved.
type Side uint8

const (
	SideLeft Side = iota + 1
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Either holds the output of whichever race operand finished first.
type Either[L, R any] struct {
	side  Side
	left  L
	right R
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{side: SideLeft, left: v}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{side: SideRight, right: v}
}

func (e Either[L, R]) Side() Side {
	return e.side
}

func (e Either[L, R]) IsLeft() bool {
	return e.side == SideLeft
}

func (e Either[L, R]) IsRight() bool {
	return e.side == SideRight
}

func (e Either[L, R]) LeftValue() (L, bool) {
	return e.left, e.side == SideLeft
}

func (e Either[L, R]) RightValue() (R, bool) {
	return e.right, e.side == SideRight
}
