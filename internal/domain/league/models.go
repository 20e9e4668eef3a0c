package league

// Division partitions teams into competitive tiers.
type Division string

const (
	DivisionNorth Division = "NORTH"
	DivisionSouth Division = "SOUTH"
	DivisionEast  Division = "EAST"
	DivisionWest  Division = "WEST"
)

// Divisions lists every known division in a stable order.
func Divisions() []Division {
	return []Division{DivisionNorth, DivisionSouth, DivisionEast, DivisionWest}
}

// Valid reports whether d is one of the known divisions.
func (d Division) Valid() bool {
	switch d {
	case DivisionNorth, DivisionSouth, DivisionEast, DivisionWest:
		return true
	}
	return false
}

// ParseDivision matches a raw tag (case-sensitive) against the known divisions.
func ParseDivision(raw string) (Division, bool) {
	d := Division(raw)
	return d, d.Valid()
}

// Player represents one season's line for a rostered player.
type Player struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Goals     int     `json:"goals"`
	SkillRate float64 `json:"skillRate"`
}

// Team is a season standing row plus its roster.
type Team struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Division      Division `json:"division"`
	CurrentPoints int      `json:"currentPoints"`
	Wins          int      `json:"wins"`
	Loses         int      `json:"loses"`
	Players       []Player `json:"players"`
}

// TotalGoals sums the goals scored by the whole roster.
func (t Team) TotalGoals() int {
	total := 0
	for _, p := range t.Players {
		total += p.Goals
	}
	return total
}

// BestPlayer returns the first rostered player with the maximum goal count.
// The second return is false when the roster is empty.
func (t Team) BestPlayer() (Player, bool) {
	if len(t.Players) == 0 {
		return Player{}, false
	}
	best := t.Players[0]
	for _, p := range t.Players[1:] {
		if p.Goals > best.Goals {
			best = p
		}
	}
	return best, true
}
