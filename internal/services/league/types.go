package league

import (
	"github.com/KirkDiggler/ladder/internal/common/clock"
	"github.com/KirkDiggler/ladder/internal/common/uuid"
	leagueRepo "github.com/KirkDiggler/ladder/internal/repositories/league"
)

// CommandType identifies a parsed command
type CommandType string

const (
	// CommandAddPlayer adds a player to the pyramid
	CommandAddPlayer CommandType = "add_player"

	// CommandRecordWin records a match result
	CommandRecordWin CommandType = "record_win"

	// CommandPrint renders the pyramid
	CommandPrint CommandType = "print"

	// CommandWinner returns the champion
	CommandWinner CommandType = "winner"

	// CommandLoad replaces the league with a saved one
	CommandLoad CommandType = "load"

	// CommandSave writes the league
	CommandSave CommandType = "save"

	// CommandHelp lists the commands
	CommandHelp CommandType = "help"
)

// Command is a parsed command line
type Command struct {
	Type CommandType

	// Player is set for add player
	Player string

	// Winner and Loser are set for record win
	Winner string
	Loser  string

	// Path is set for load and save
	Path string
}

// Config holds configuration for a league session
type Config struct {
	// Repository used by load and save
	Repository leagueRepo.Repository

	// Rows optionally seeds the league, top row first
	Rows [][]string

	// Service dependencies, defaults are used when nil
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// ExecuteInput contains the command line to run
type ExecuteInput struct {
	// Line is the raw command text
	Line string
}

// ExecuteOutput contains the result of a command
type ExecuteOutput struct {
	// Command is the parsed command, nil when parsing failed
	Command *Command

	// Reply is the text returned to the user
	Reply string

	// HasReply is false when the command produced nothing, e.g. winner
	// on a league without a champion
	HasReply bool

	// Err is the rejected command's error, its text is also the Reply
	Err error
}
