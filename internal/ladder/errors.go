package ladder

import "fmt"

// InvalidNameError is returned when a player name contains characters
// outside of the allowed set
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("Player name %s contains invalid characters", e.Name)
}

// DuplicatePlayerError is returned when a player is added twice
type DuplicatePlayerError struct {
	Name string
}

func (e *DuplicatePlayerError) Error() string {
	return fmt.Sprintf("Player '%s' is already in the game", e.Name)
}

// PlayerNotFoundError is returned when a referenced player is not in the league
type PlayerNotFoundError struct {
	Name string
}

func (e *PlayerNotFoundError) Error() string {
	return fmt.Sprintf("Player '%s' is not in the game", e.Name)
}

// InvalidMatchError is returned when the winner is not exactly one row
// below the loser
type InvalidMatchError struct {
	Winner string
	Loser  string
}

func (e *InvalidMatchError) Error() string {
	return fmt.Sprintf("Cannot record match result. Winner '%s' must be one row below loser '%s'", e.Winner, e.Loser)
}

// MalformedLeagueError is returned when imported rows do not form a pyramid
type MalformedLeagueError struct {
	Row    int
	Reason string
}

func (e *MalformedLeagueError) Error() string {
	return fmt.Sprintf("Malformed league: row %d %s", e.Row, e.Reason)
}
