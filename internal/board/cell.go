package board

import "fmt"

type CellValue int8

const (
	Empty CellValue = iota
	Mine
)

func (v CellValue) String() string {
	switch v {
	case Mine:
		return "mine"
	default:
		return "empty"
	}
}

// [CellValue] implements [encoding.TextMarshaler]
func (v CellValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

type CellState int8

const (
	Closed CellState = iota
	Flagged
	Revealed
)

func (s CellState) String() string {
	switch s {
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "closed"
	}
}

// [CellState] implements [encoding.TextMarshaler]
func (s CellState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// [CellState] implements [encoding.TextUnmarshaler]
func (s *CellState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "closed":
		*s = Closed
	case "flagged":
		*s = Flagged
	case "revealed":
		*s = Revealed
	default:
		return fmt.Errorf("invalid cell state %q", b)
	}
	return nil
}

type cell struct {
	value CellValue
	state CellState
}

// symbol is the rendering projection of a single cell. mineCount is consulted
// lazily so that closed and flagged cells never trigger a neighbor scan.
func (c cell) symbol(mineCount func() int) string {
	switch c.state {
	case Revealed:
		if c.value == Mine {
			return "*"
		}
		n := mineCount()
		if n < 0 || n > 8 {
			return "!"
		}
		return string(rune('0' + n))
	case Flagged:
		return "F"
	default:
		return "#"
	}
}

// CellView is an owned snapshot of a single cell, safe to hand across a host
// boundary. Mine and MineCount carry information only for revealed cells; a
// closed or flagged cell discloses nothing but its state.
type CellView struct {
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	State     CellState `json:"state"`
	Mine      bool      `json:"mine,omitempty"`
	MineCount int       `json:"mine_count,omitempty"`
}
