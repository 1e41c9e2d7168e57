package types

import "fmt"

// CellIndex identifies one cell of the logical grid. Row 0 is the top row.
type CellIndex struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c CellIndex) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

type Player uint8

const (
	PlayerFirst Player = iota
	PlayerSecond
)

func (p Player) String() string {
	switch p {
	case PlayerFirst:
		return "X"
	case PlayerSecond:
		return "O"
	}
	return "Unknown"
}

// MarshalText encodes the player as its symbol.
func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a symbol written by MarshalText.
func (p *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "X":
		*p = PlayerFirst
	case "O":
		*p = PlayerSecond
	default:
		return fmt.Errorf("unknown player %q", string(text))
	}
	return nil
}

// Other returns the player whose turn follows p.
func (p Player) Other() Player {
	if p == PlayerFirst {
		return PlayerSecond
	}
	return PlayerFirst
}

type TurnState struct {
	Active Player `json:"active"`
}

// Mark is a placed symbol. Marks are never removed during a game session.
type Mark struct {
	Cell  CellIndex `json:"cell"`
	Owner Player    `json:"owner"`
}
