package ladder

import (
	"regexp"

	"github.com/KirkDiggler/ladder/internal/models"
)

var validName = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// League is a pyramid ranking. Row 0 holds the champion and row k holds
// up to k+1 players, filled left to right.
type League struct {
	rows [][]string
}

// New creates an empty league
func New() *League {
	return &League{}
}

// FromRows builds a league from persisted rows, top row first
func FromRows(rows [][]string) (*League, error) {
	l := New()
	seen := make(map[string]bool)

	for i, row := range rows {
		if len(row) == 0 {
			return nil, &MalformedLeagueError{Row: i, Reason: "is empty"}
		}
		if len(row) > RowCapacity(i) {
			return nil, &MalformedLeagueError{Row: i, Reason: "exceeds its capacity"}
		}
		if len(row) < RowCapacity(i) && i != len(rows)-1 {
			return nil, &MalformedLeagueError{Row: i, Reason: "is not full but is followed by another row"}
		}

		copied := make([]string, 0, RowCapacity(i))
		for _, name := range row {
			if !ValidName(name) {
				return nil, &InvalidNameError{Name: name}
			}
			if seen[name] {
				return nil, &DuplicatePlayerError{Name: name}
			}
			seen[name] = true
			copied = append(copied, name)
		}
		l.rows = append(l.rows, copied)
	}

	return l, nil
}

// RowCapacity returns how many players fit in the given row
func RowCapacity(row int) int {
	return row + 1
}

// ValidName reports whether name only uses allowed characters
func ValidName(name string) bool {
	return validName.MatchString(name)
}

// AddPlayer places a player in the first row with a free slot
func (l *League) AddPlayer(name string) error {
	if !ValidName(name) {
		return &InvalidNameError{Name: name}
	}

	if _, ok := l.FindPlayer(name); ok {
		return &DuplicatePlayerError{Name: name}
	}

	for i, row := range l.rows {
		if len(row) < RowCapacity(i) {
			l.rows[i] = append(row, name)
			return nil
		}
	}

	row := make([]string, 0, RowCapacity(len(l.rows)))
	l.rows = append(l.rows, append(row, name))

	return nil
}

// FindPlayer returns the position of the named player
func (l *League) FindPlayer(name string) (models.Position, bool) {
	for i, row := range l.rows {
		for j, player := range row {
			if player == name {
				return models.Position{Row: i, Slot: j}, true
			}
		}
	}

	return models.Position{}, false
}

// RecordWin swaps the winner and loser when the winner sits exactly one
// row below the loser. No other player moves.
func (l *League) RecordWin(winner, loser string) error {
	winnerPos, ok := l.FindPlayer(winner)
	if !ok {
		return &PlayerNotFoundError{Name: winner}
	}

	loserPos, ok := l.FindPlayer(loser)
	if !ok {
		return &PlayerNotFoundError{Name: loser}
	}

	if winnerPos.Row != loserPos.Row+1 {
		return &InvalidMatchError{Winner: winner, Loser: loser}
	}

	l.rows[winnerPos.Row][winnerPos.Slot] = loser
	l.rows[loserPos.Row][loserPos.Slot] = winner

	return nil
}

// Winner returns the player in the top row, if any
func (l *League) Winner() (string, bool) {
	if len(l.rows) == 0 || len(l.rows[0]) == 0 {
		return "", false
	}

	return l.rows[0][0], true
}

// Rows returns a copy of the rows, top row first
func (l *League) Rows() [][]string {
	rows := make([][]string, len(l.rows))
	for i, row := range l.rows {
		rows[i] = append([]string(nil), row...)
	}

	return rows
}

// Len returns the number of players in the league
func (l *League) Len() int {
	n := 0
	for _, row := range l.rows {
		n += len(row)
	}

	return n
}

// Render draws the league as an ASCII pyramid
func (l *League) Render() string {
	return Render(l.rows)
}

// Players lists every player with their position, top row first
func (l *League) Players() []models.Player {
	players := make([]models.Player, 0, l.Len())
	for i, row := range l.rows {
		for j, name := range row {
			players = append(players, models.Player{
				Name:     name,
				Position: models.Position{Row: i, Slot: j},
			})
		}
	}

	return players
}
