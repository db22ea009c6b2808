package models

import (
	"time"
)

// League is a snapshot of a session's pyramid
type League struct {
	// SessionID is the unique identifier of the session owning the league
	SessionID string

	// Rows holds player names, top row first
	Rows [][]string

	// Players lists every player with their position, top to bottom
	Players []Player

	// Champion is the occupant of row 0, empty when there is none
	Champion string

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the league last changed
	UpdatedAt time.Time
}
