package scoreboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors returned when parsing input from text surfaces.
var (
	ErrUnknownTeam      = errors.New("unknown team")
	ErrInvalidIncrement = errors.New("invalid increment")
)

// Team identifies one side of the scoreboard.
type Team string

const (
	Home Team = "home"
	Away Team = "away"
)

// Teams returns both teams in display order.
func Teams() []Team {
	return []Team{Home, Away}
}

// Label returns the default display label for the team.
func (t Team) Label() string {
	switch t {
	case Home:
		return "Home"
	case Away:
		return "Away"
	default:
		return string(t)
	}
}

// Valid reports whether t is Home or Away.
func (t Team) Valid() bool {
	return t == Home || t == Away
}

// ParseTeam converts a case-insensitive team name into a Team.
func ParseTeam(s string) (Team, error) {
	switch Team(strings.ToLower(strings.TrimSpace(s))) {
	case Home:
		return Home, nil
	case Away:
		return Away, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTeam, s)
}

// Increment is one of the fixed amounts a control can add to a score.
// Values outside One..Three are never produced by this package.
type Increment int

const (
	One   Increment = 1
	Two   Increment = 2
	Three Increment = 3
)

// Increments returns the available increments in ascending order.
func Increments() []Increment {
	return []Increment{One, Two, Three}
}

// Label returns the control caption, e.g. "+2".
func (i Increment) Label() string {
	return "+" + strconv.Itoa(int(i))
}

// Valid reports whether i is one of the fixed increments.
func (i Increment) Valid() bool {
	return i >= One && i <= Three
}

// ParseIncrement converts text such as "2" or "+2" into an Increment.
func ParseIncrement(s string) (Increment, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "+"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIncrement, s)
	}
	inc := Increment(n)
	if !inc.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIncrement, n)
	}
	return inc, nil
}

// Snapshot is an immutable copy of both scores.
type Snapshot struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Score returns the value for one team.
func (s Snapshot) Score(t Team) int {
	if t == Away {
		return s.Away
	}
	return s.Home
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%d - %d", s.Home, s.Away)
}
