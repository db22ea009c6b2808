package league

import "errors"

// ErrLeagueNotFound is returned when nothing is stored at a path
var ErrLeagueNotFound = errors.New("league not found")

// ErrPathOutsideBaseDir is returned by a file repository with a base
// directory when a path is absolute or climbs out of it
var ErrPathOutsideBaseDir = errors.New("league path must stay inside the data directory")

type SaveLeagueInput struct {
	Path string
	Rows [][]string
}

type LoadLeagueInput struct {
	Path string
}

type LoadLeagueOutput struct {
	Rows [][]string
}

type ListLeaguesInput struct {
}

type ListLeaguesOutput struct {
	Paths []string
}
