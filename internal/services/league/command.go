package league

import (
	"strings"
)

// ParseCommand turns a line of text into a Command. Anything that does not
// match a known command exactly yields an UnknownCommandError echoing the line.
func ParseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	unknown := &UnknownCommandError{Input: line}

	if len(fields) == 0 {
		return nil, unknown
	}

	switch fields[0] {
	case "add":
		if len(fields) != 3 || fields[1] != "player" {
			return nil, unknown
		}
		return &Command{Type: CommandAddPlayer, Player: fields[2]}, nil
	case "record":
		if len(fields) != 4 || fields[1] != "win" {
			return nil, unknown
		}
		return &Command{Type: CommandRecordWin, Winner: fields[2], Loser: fields[3]}, nil
	case "print":
		if len(fields) != 1 {
			return nil, unknown
		}
		return &Command{Type: CommandPrint}, nil
	case "winner":
		if len(fields) != 1 {
			return nil, unknown
		}
		return &Command{Type: CommandWinner}, nil
	case "load", "save":
		if len(fields) != 2 {
			return nil, unknown
		}
		return &Command{Type: CommandType(fields[0]), Path: fields[1]}, nil
	case "help":
		if len(fields) != 1 {
			return nil, unknown
		}
		return &Command{Type: CommandHelp}, nil
	}

	return nil, unknown
}

// String renders the command back to its text form
func (c *Command) String() string {
	switch c.Type {
	case CommandAddPlayer:
		return "add player " + c.Player
	case CommandRecordWin:
		return "record win " + c.Winner + " " + c.Loser
	case CommandLoad, CommandSave:
		return string(c.Type) + " " + c.Path
	default:
		return string(c.Type)
	}
}
