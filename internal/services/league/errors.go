package league

import "fmt"

// LeagueError is a custom error type for session configuration errors
type LeagueError string

// Error implements the error interface
func (e LeagueError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     LeagueError = "config cannot be nil"
	ErrNilRepository LeagueError = "league repository cannot be nil"
	ErrNilInput      LeagueError = "input cannot be nil"
)

// UnknownCommandError is returned for text that is not a known command
type UnknownCommandError struct {
	Input string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command \"%s\"", e.Input)
}
