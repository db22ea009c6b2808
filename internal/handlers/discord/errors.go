package discord

import (
	"fmt"
	"regexp"
)

// leagueNamePattern allows plain file names such as weekly or weekly.json
var leagueNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)*$`)

// InvalidLeagueNameError is returned when a load or save names something
// other than a plain league name
type InvalidLeagueNameError struct {
	Name string
}

func (e *InvalidLeagueNameError) Error() string {
	return fmt.Sprintf("League name '%s' may only use letters, digits, '-', '_' and '.'", e.Name)
}

// ValidLeagueName reports whether name can be used with /ladder load and save
func ValidLeagueName(name string) bool {
	return leagueNamePattern.MatchString(name)
}
