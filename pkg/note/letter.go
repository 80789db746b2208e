package note

import "fmt"

// Letter is a natural note name
type Letter uint8

// Letters in musical order
const (
	A Letter = iota
	B
	C
	D
	E
	F
	G
)

// Letters returns every letter from A to G
func Letters() []Letter {
	return []Letter{A, B, C, D, E, F, G}
}

// Byte returns the uppercase ASCII letter
func (l Letter) Byte() byte {
	switch l {
	case A:
		return 'A'
	case B:
		return 'B'
	case C:
		return 'C'
	case D:
		return 'D'
	case E:
		return 'E'
	case F:
		return 'F'
	case G:
		return 'G'
	}
	panic(fmt.Sprintf("note: unknown letter %d", uint8(l)))
}

func (l Letter) String() string {
	return string(l.Byte())
}

// Semitone returns the pitch class of the natural letter, C = 0
func (l Letter) Semitone() int {
	switch l {
	case C:
		return 0
	case D:
		return 2
	case E:
		return 4
	case F:
		return 5
	case G:
		return 7
	case A:
		return 9
	case B:
		return 11
	}
	panic(fmt.Sprintf("note: unknown letter %d", uint8(l)))
}

// Next returns the following letter, wrapping G to A
func (l Letter) Next() Letter {
	return (l + 1) % 7
}

// Add moves n letters forward (or backward when negative)
func (l Letter) Add(n int) Letter {
	return Letter(((int(l)+n)%7 + 7) % 7)
}

func letterFromByte(b byte) (Letter, bool) {
	switch b {
	case 'A':
		return A, true
	case 'B':
		return B, true
	case 'C':
		return C, true
	case 'D':
		return D, true
	case 'E':
		return E, true
	case 'F':
		return F, true
	case 'G':
		return G, true
	}
	return 0, false
}
