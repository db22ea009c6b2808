package models

// Position is a player's place in the pyramid
type Position struct {
	// Row is the rank level, 0 is the champion row
	Row int

	// Slot is the left-to-right position within the row
	Slot int
}

// Player represents a participant in a league
type Player struct {
	// Name is the unique, case-sensitive player name
	Name string

	// Position is derived from where the player sits in the rows
	Position Position
}
